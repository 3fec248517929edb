package sugar

// MenuBar attaches a menu bar to the current window, which must have been
// opened with WindowFlagsMenuBar. The body and the end call both run only
// when the bar is actually visible.
//
// Usage:
//
//	ui.Window("Editor", sugar.WithWindowFlags(sugar.WindowFlagsMenuBar))(func() {
//	    ui.MenuBar()(func() {
//	        ui.Menu("File")(func() {
//	            // menu items
//	        })
//	    })
//	})
func (ui *UI) MenuBar() func(func()) bool {
	return func(body func()) bool {
		s := ScopeIf(ui.backend.BeginMenuBar(), ui.backend.EndMenuBar)
		return ui.run("MenuBar", s, body)
	}
}

// MainMenuBar opens the full-width menu bar at the top of the screen.
func (ui *UI) MainMenuBar() func(func()) bool {
	return func(body func()) bool {
		s := ScopeIf(ui.backend.BeginMainMenuBar(), ui.backend.EndMainMenuBar)
		return ui.run("MainMenuBar", s, body)
	}
}

// Menu opens a sub-menu entry inside a menu bar or another menu. The body
// runs only while the menu is open. Enabled(false) renders it grayed out.
func (ui *UI) Menu(label string, opts ...Option) func(func()) bool {
	return func(body func()) bool {
		s := ScopeIf(
			ui.backend.BeginMenu(label, ApplyAndGet(opts, OptEnabled)),
			ui.backend.EndMenu,
		)
		return ui.run("Menu", s, body)
	}
}
