package imguibackend

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/inkyblackness/imgui-go/v4"
)

// Platform drives an imgui context from a GLFW window. It owns the context,
// installs the input callbacks, and pushes display size, time step and mouse
// state into the library at the start of every frame.
type Platform struct {
	window  *glfw.Window
	context *imgui.Context
	io      imgui.IO

	time             float64
	mouseJustPressed [3]bool
}

// NewPlatform creates an imgui context wired to the given window.
// Call Destroy when done with it.
func NewPlatform(window *glfw.Window) *Platform {
	p := &Platform{
		window:  window,
		context: imgui.CreateContext(nil),
	}
	p.io = imgui.CurrentIO()
	p.io.SetClipboard(clipboard{window: window})

	p.setKeyMapping()

	// Setup callbacks
	window.SetKeyCallback(p.keyCallback)
	window.SetCharCallback(p.charCallback)
	window.SetMouseButtonCallback(p.mouseButtonCallback)
	window.SetScrollCallback(p.scrollCallback)

	return p
}

// Destroy releases the imgui context.
func (p *Platform) Destroy() {
	p.context.Destroy()
}

// DisplaySize returns the window size in logical pixels.
func (p *Platform) DisplaySize() [2]float32 {
	w, h := p.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the framebuffer size in physical pixels. It
// differs from DisplaySize on high-DPI displays.
func (p *Platform) FramebufferSize() [2]float32 {
	w, h := p.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// NewFrame forwards the current window state to imgui and starts a frame.
// Call it once per loop iteration, after polling events.
func (p *Platform) NewFrame() {
	// Display size every frame to accommodate resizing.
	displaySize := p.DisplaySize()
	p.io.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	now := glfw.GetTime()
	if p.time > 0 {
		p.io.SetDeltaTime(float32(now - p.time))
	}
	p.time = now

	x, y := p.window.GetCursorPos()
	p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})

	for i := 0; i < len(p.mouseJustPressed); i++ {
		// A press and release inside one poll interval still counts as
		// a click, so the callback flag is ORed with the live state.
		down := p.mouseJustPressed[i] || p.window.GetMouseButton(mouseButtonByIndex[i]) == glfw.Press
		p.io.SetMouseButtonDown(i, down)
		p.mouseJustPressed[i] = false
	}

	imgui.NewFrame()
}

// mouseButtonByIndex maps imgui mouse button indices to GLFW buttons.
var mouseButtonByIndex = [3]glfw.MouseButton{
	glfw.MouseButtonLeft,
	glfw.MouseButtonRight,
	glfw.MouseButtonMiddle,
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		p.io.KeyPress(int(key))
	case glfw.Release:
		p.io.KeyRelease(int(key))
	}

	// Modifier flags from the event are not reliable across systems, so
	// they are derived from the key-down state instead.
	p.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	p.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	p.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
}

func (p *Platform) charCallback(w *glfw.Window, char rune) {
	p.io.AddInputCharacters(string(char))
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	for i, b := range mouseButtonByIndex {
		if b == button {
			p.mouseJustPressed[i] = true
		}
	}
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	p.io.AddMouseWheelDelta(float32(xoff), float32(yoff))
}

// setKeyMapping tells imgui which indices of its key-down array the GLFW
// key callbacks write to.
func (p *Platform) setKeyMapping() {
	p.io.KeyMap(imgui.KeyTab, int(glfw.KeyTab))
	p.io.KeyMap(imgui.KeyLeftArrow, int(glfw.KeyLeft))
	p.io.KeyMap(imgui.KeyRightArrow, int(glfw.KeyRight))
	p.io.KeyMap(imgui.KeyUpArrow, int(glfw.KeyUp))
	p.io.KeyMap(imgui.KeyDownArrow, int(glfw.KeyDown))
	p.io.KeyMap(imgui.KeyPageUp, int(glfw.KeyPageUp))
	p.io.KeyMap(imgui.KeyPageDown, int(glfw.KeyPageDown))
	p.io.KeyMap(imgui.KeyHome, int(glfw.KeyHome))
	p.io.KeyMap(imgui.KeyEnd, int(glfw.KeyEnd))
	p.io.KeyMap(imgui.KeyInsert, int(glfw.KeyInsert))
	p.io.KeyMap(imgui.KeyDelete, int(glfw.KeyDelete))
	p.io.KeyMap(imgui.KeyBackspace, int(glfw.KeyBackspace))
	p.io.KeyMap(imgui.KeySpace, int(glfw.KeySpace))
	p.io.KeyMap(imgui.KeyEnter, int(glfw.KeyEnter))
	p.io.KeyMap(imgui.KeyEscape, int(glfw.KeyEscape))
	p.io.KeyMap(imgui.KeyA, int(glfw.KeyA))
	p.io.KeyMap(imgui.KeyC, int(glfw.KeyC))
	p.io.KeyMap(imgui.KeyV, int(glfw.KeyV))
	p.io.KeyMap(imgui.KeyX, int(glfw.KeyX))
	p.io.KeyMap(imgui.KeyY, int(glfw.KeyY))
	p.io.KeyMap(imgui.KeyZ, int(glfw.KeyZ))
}
