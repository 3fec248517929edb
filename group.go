package sugar

// Group captures the items submitted by the body into a single logical item,
// so the whole block can be sized, aligned, and hover-queried as one. Groups
// cannot fail to open; the body and end call always run.
func (ui *UI) Group() func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(ui.backend.BeginGroup, ui.backend.EndGroup)
		return ui.run("Group", s, body)
	}
}

// Tooltip shows the body in a tooltip window at the mouse position. The
// caller decides when to submit it, typically behind the wrapped library's
// item-hovered query:
//
//	if hovered {
//	    ui.Tooltip()(func() {
//	        // explanation text
//	    })
//	}
func (ui *UI) Tooltip() func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(ui.backend.BeginTooltip, ui.backend.EndTooltip)
		return ui.run("Tooltip", s, body)
	}
}
