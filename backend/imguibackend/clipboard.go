package imguibackend

import "github.com/go-gl/glfw/v3.3/glfw"

// clipboard forwards imgui clipboard requests to the GLFW window, so text
// widgets support system-wide cut, copy and paste.
type clipboard struct {
	window *glfw.Window
}

// Text retrieves text from the system clipboard. GLFW reports an empty
// string when the clipboard is empty or holds non-text data.
func (c clipboard) Text() (string, error) {
	return c.window.GetClipboardString(), nil
}

// SetText copies text to the system clipboard.
func (c clipboard) SetText(value string) {
	c.window.SetClipboardString(value)
}
