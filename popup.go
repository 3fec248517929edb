package sugar

// PopupFlags control popup opening behavior. The low bits select which mouse
// button opens context popups.
type PopupFlags uint32

const (
	PopupFlagsNone              PopupFlags = 0
	PopupFlagsMouseButtonLeft   PopupFlags = 0 // Context popups open on left click
	PopupFlagsMouseButtonRight  PopupFlags = 1 // Context popups open on right click (default)
	PopupFlagsMouseButtonMiddle PopupFlags = 2 // Context popups open on middle click

	PopupFlagsNoOpenOverExistingPopup PopupFlags = 1 << 5 // Don't open while another popup is open at the same level
	PopupFlagsNoOpenOverItems         PopupFlags = 1 << 6 // Don't open while hovering an item (context window popups)
	PopupFlagsAnyPopupID              PopupFlags = 1 << 7 // Match any popup ID in open-state queries
	PopupFlagsAnyPopupLevel           PopupFlags = 1 << 8 // Match any popup level in open-state queries
	PopupFlagsAnyPopup                           = PopupFlagsAnyPopupID | PopupFlagsAnyPopupLevel
)

// Popup runs its body while the popup with the given ID is open. Opening is
// triggered elsewhere through the backend (the wrapped library's OpenPopup).
// The end call runs only when the popup was open, matching the wrapped
// library's contract for popups. Popups are windows, so WithWindowFlags
// styles them; popup flags only apply to the context variants.
func (ui *UI) Popup(id string, opts ...Option) func(func()) bool {
	return func(body func()) bool {
		s := ScopeIf(
			ui.backend.BeginPopup(id, ApplyAndGet(opts, OptWindowFlags)),
			ui.backend.EndPopup,
		)
		return ui.run("Popup", s, body)
	}
}

// PopupModal runs its body while the modal with the given title is open.
// Modals block interaction with everything behind them; Open supplies the
// close-button state.
func (ui *UI) PopupModal(title string, opts ...Option) func(func()) bool {
	return func(body func()) bool {
		o := applyOptions(opts)
		s := ScopeIf(
			ui.backend.BeginPopupModal(title, GetOpt(o, OptOpen), GetOpt(o, OptWindowFlags)),
			ui.backend.EndPopup,
		)
		return ui.run("PopupModal", s, body)
	}
}

// contextPopupFlags returns the flags for context popups, which default to
// opening on right click when no flags were given.
func contextPopupFlags(o options) PopupFlags {
	if !HasOpt(o, OptPopupFlags) {
		return PopupFlagsMouseButtonRight
	}
	return GetOpt(o, OptPopupFlags)
}

// PopupContextItem opens a context popup when the last item is clicked.
// WithContextID overrides the ID derived from that item.
//
// Usage:
//
//	ui.CollapsingHeader("Missions")
//	ui.PopupContextItem()(func() {
//	    // right-click menu for the header
//	})
func (ui *UI) PopupContextItem(opts ...Option) func(func()) bool {
	return func(body func()) bool {
		o := applyOptions(opts)
		s := ScopeIf(
			ui.backend.BeginPopupContextItem(GetOpt(o, OptContextID), contextPopupFlags(o)),
			ui.backend.EndPopup,
		)
		return ui.run("PopupContextItem", s, body)
	}
}

// PopupContextWindow opens a context popup when the current window is
// clicked. Add PopupFlagsNoOpenOverItems to ignore clicks landing on items.
func (ui *UI) PopupContextWindow(opts ...Option) func(func()) bool {
	return func(body func()) bool {
		o := applyOptions(opts)
		s := ScopeIf(
			ui.backend.BeginPopupContextWindow(GetOpt(o, OptContextID), contextPopupFlags(o)),
			ui.backend.EndPopup,
		)
		return ui.run("PopupContextWindow", s, body)
	}
}

// PopupContextVoid opens a context popup when empty space outside any window
// is clicked.
func (ui *UI) PopupContextVoid(opts ...Option) func(func()) bool {
	return func(body func()) bool {
		o := applyOptions(opts)
		s := ScopeIf(
			ui.backend.BeginPopupContextVoid(GetOpt(o, OptContextID), contextPopupFlags(o)),
			ui.backend.EndPopup,
		)
		return ui.run("PopupContextVoid", s, body)
	}
}
