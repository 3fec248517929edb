package sugar

// WindowFlags control window and child region behavior.
type WindowFlags uint32

const (
	WindowFlagsNone WindowFlags = 0

	WindowFlagsNoTitleBar                WindowFlags = 1 << 0  // Disable the title bar
	WindowFlagsNoResize                  WindowFlags = 1 << 1  // Disable resizing with the lower-right grip
	WindowFlagsNoMove                    WindowFlags = 1 << 2  // Disable moving the window
	WindowFlagsNoScrollbar               WindowFlags = 1 << 3  // Disable scrollbars (mouse wheel still scrolls)
	WindowFlagsNoScrollWithMouse         WindowFlags = 1 << 4  // Disable catching the mouse wheel
	WindowFlagsNoCollapse                WindowFlags = 1 << 5  // Disable collapsing via the title bar
	WindowFlagsAlwaysAutoResize          WindowFlags = 1 << 6  // Resize the window to its content every frame
	WindowFlagsNoBackground              WindowFlags = 1 << 7  // Skip drawing background and outer border
	WindowFlagsNoSavedSettings           WindowFlags = 1 << 8  // Never load or save window settings
	WindowFlagsNoMouseInputs             WindowFlags = 1 << 9  // Pass mouse events through to what's behind
	WindowFlagsMenuBar                   WindowFlags = 1 << 10 // Reserve space for a menu bar
	WindowFlagsHorizontalScrollbar       WindowFlags = 1 << 11 // Allow horizontal scrolling
	WindowFlagsNoFocusOnAppearing        WindowFlags = 1 << 12 // Don't take focus when appearing
	WindowFlagsNoBringToFrontOnFocus     WindowFlags = 1 << 13 // Don't raise the window when focused
	WindowFlagsAlwaysVerticalScrollbar   WindowFlags = 1 << 14 // Always show the vertical scrollbar
	WindowFlagsAlwaysHorizontalScrollbar WindowFlags = 1 << 15 // Always show the horizontal scrollbar
	WindowFlagsAlwaysUseWindowPadding    WindowFlags = 1 << 16 // Pad borderless child regions too
	WindowFlagsNoNavInputs               WindowFlags = 1 << 18 // Ignore gamepad/keyboard navigation inside
	WindowFlagsNoNavFocus                WindowFlags = 1 << 19 // Unreachable by gamepad/keyboard navigation
	WindowFlagsUnsavedDocument           WindowFlags = 1 << 20 // Show a dot next to the title

	// Convenience
	WindowFlagsNoNav        = WindowFlagsNoNavInputs | WindowFlagsNoNavFocus
	WindowFlagsNoDecoration = WindowFlagsNoTitleBar | WindowFlagsNoResize | WindowFlagsNoScrollbar | WindowFlagsNoCollapse
	WindowFlagsNoInputs     = WindowFlagsNoMouseInputs | WindowFlagsNoNavInputs | WindowFlagsNoNavFocus
)

// Window opens a top-level window and returns a function that runs the
// window body. The matching end call runs when that function returns, on
// every exit path, even while the window is collapsed (the wrapped library
// requires the end call for windows unconditionally). The body itself is
// skipped while collapsed.
//
// Usage:
//
//	ui.Window("Vehicle Spawner", sugar.Open(&spawnerVisible))(func() {
//	    // window content
//	})
//
// Returns whether the body ran.
func (ui *UI) Window(title string, opts ...Option) func(func()) bool {
	return func(body func()) bool {
		o := applyOptions(opts)
		s := ScopeAlways(
			ui.backend.BeginWindow(title, GetOpt(o, OptOpen), GetOpt(o, OptWindowFlags)),
			ui.backend.EndWindow,
		)
		return ui.run("Window", s, body)
	}
}

// Child opens a scrollable embedded region inside the current window. Size
// defaults to the remaining content area; WithSize and Bordered override.
// Like Window, the end call is unconditional.
func (ui *UI) Child(id string, opts ...Option) func(func()) bool {
	return func(body func()) bool {
		o := applyOptions(opts)
		s := ScopeAlways(
			ui.backend.BeginChild(id, GetOpt(o, OptSize), GetOpt(o, OptBorder), GetOpt(o, OptWindowFlags)),
			ui.backend.EndChild,
		)
		return ui.run("Child", s, body)
	}
}

// ChildFrame opens a child region styled like a framed widget background.
func (ui *UI) ChildFrame(id string, size Vec2, opts ...Option) func(func()) bool {
	return func(body func()) bool {
		s := ScopeAlways(
			ui.backend.BeginChildFrame(id, size, ApplyAndGet(opts, OptWindowFlags)),
			ui.backend.EndChildFrame,
		)
		return ui.run("ChildFrame", s, body)
	}
}
