// Command gen renders each section family with sample data, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/sugar"
	"github.com/go-theft-auto/sugar/backend/imguibackend"
)

const (
	shotWidth  = 640
	shotHeight = 420
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single section-family screenshot to capture.
type screenshot struct {
	name   string                                   // filename without extension
	draw   func(*sugar.UI, *imguibackend.Backend)   // frame builder
	frames int                                      // extra frames to render (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(shotWidth, shotHeight, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	platform := imguibackend.NewPlatform(window)
	defer platform.Destroy()

	renderer, err := imguibackend.NewRenderer()
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	backend := imguibackend.New()
	ui := sugar.New(backend)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(platform, renderer, ui, backend, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg\n", s.name)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(platform *imguibackend.Platform, renderer *imguibackend.Renderer, ui *sugar.UI, backend *imguibackend.Backend, s screenshot, outDir string) error {
	// Auto-sized windows settle over a couple of frames, so each capture
	// renders a few before reading the framebuffer back.
	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		platform.NewFrame()
		s.draw(ui, backend)

		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Render(platform.DisplaySize(), platform.FramebufferSize())
	}
	gl.Finish()

	fb := platform.FramebufferSize()
	return writeJPEG(filepath.Join(outDir, s.name+".jpg"), int(fb[0]), int(fb[1]))
}

// writeJPEG reads the framebuffer back and encodes it.
func writeJPEG(path string, width, height int) error {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left).
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of section screenshots to generate.
func buildScreenshots() []screenshot {
	autoSize := sugar.WithWindowFlags(sugar.WindowFlagsAlwaysAutoResize)
	vehicles := []string{"Infernus", "Banshee", "Sultan", "Cheetah"}

	return []screenshot{
		{
			name: "window",
			draw: func(ui *sugar.UI, _ *imguibackend.Backend) {
				ui.Window("Trainer", autoSize)(func() {
					imgui.Text("Scope-guarded window body")
					imgui.Separator()
					imgui.Button("Apply")
				})
			},
		},
		{
			name: "tabs",
			draw: func(ui *sugar.UI, _ *imguibackend.Backend) {
				ui.Window("Tabs", autoSize)(func() {
					ui.TabBar("sections")(func() {
						ui.TabItem("Vehicles")(func() {
							imgui.Text("Vehicle options")
						})
						ui.TabItem("Missions")(func() {
							imgui.Text("Mission options")
						})
						ui.TabItem("Settings")(func() {
							imgui.Text("Settings")
						})
					})
				})
			},
		},
		{
			name: "table",
			draw: func(ui *sugar.UI, _ *imguibackend.Backend) {
				ui.Window("Garage", autoSize)(func() {
					ui.Table("cars", 2, sugar.WithTableFlags(sugar.TableFlagsBorders|sugar.TableFlagsRowBg))(func() {
						imgui.TableSetupColumn("Vehicle")
						imgui.TableSetupColumn("Top Speed")
						imgui.TableHeadersRow()
						for i, name := range vehicles {
							imgui.TableNextRow()
							imgui.TableNextColumn()
							imgui.Text(name)
							imgui.TableNextColumn()
							imgui.Text(fmt.Sprintf("%d km/h", 220+10*i))
						}
					})
				})
			},
		},
		{
			name: "tree",
			draw: func(ui *sugar.UI, _ *imguibackend.Backend) {
				ui.Window("World", autoSize)(func() {
					ui.TreeNode("Los Santos", sugar.WithTreeNodeFlags(sugar.TreeNodeFlagsDefaultOpen))(func() {
						imgui.Text("Grove Street")
						ui.TreeNode("Interiors")(func() {
							imgui.Text("CJ's house")
						})
					})
					ui.CollapsingHeader("San Fierro")
				})
			},
		},
		{
			name: "list",
			draw: func(ui *sugar.UI, _ *imguibackend.Backend) {
				ui.Window("Spawner", autoSize)(func() {
					ui.Combo("Vehicle", vehicles[0])(func() {})
					ui.ListBox("Garage", sugar.WithSize(sugar.Vec2{X: 220, Y: 90}))(func() {
						for i, name := range vehicles {
							imgui.SelectableV(name, i == 1, 0, imgui.Vec2{})
						}
					})
				})
			},
		},
		{
			name: "popup_modal", frames: 3,
			draw: func(ui *sugar.UI, backend *imguibackend.Backend) {
				backend.OpenPopup("Confirm")
				ui.PopupModal("Confirm")(func() {
					imgui.Text("Overwrite save slot 3?")
					imgui.Separator()
					imgui.Button("Overwrite")
					imgui.SameLine()
					imgui.Button("Cancel")
				})
			},
		},
		{
			name: "styles",
			draw: func(ui *sugar.UI, _ *imguibackend.Backend) {
				ui.Window("Styles", autoSize)(func() {
					ui.StyleColor(sugar.StyleColorText, sugar.Vec4{X: 1, Y: 0.8, Z: 0.2, W: 1})(func() {
						imgui.Text("Pushed text color")
					})
					ui.StyleVar(sugar.StyleVarFrameRounding, 8)(func() {
						imgui.Button("Rounded button")
					})
				})
			},
		},
		{
			name: "menu",
			draw: func(ui *sugar.UI, _ *imguibackend.Backend) {
				ui.Window("Menus", sugar.WithWindowFlags(sugar.WindowFlagsMenuBar|sugar.WindowFlagsAlwaysAutoResize))(func() {
					ui.MenuBar()(func() {
						ui.Menu("File")(func() {
							imgui.MenuItem("Load")
							imgui.MenuItem("Save")
						})
						ui.Menu("Edit")(func() {
							imgui.MenuItem("Undo")
						})
					})
					imgui.Text("Window with a menu bar")
				})
			},
		},
	}
}
