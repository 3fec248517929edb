package sugar

// ComboFlags control combo box behavior.
type ComboFlags uint32

const (
	ComboFlagsNone ComboFlags = 0

	ComboFlagsPopupAlignLeft ComboFlags = 1 << 0 // Align the popup to the left of the preview
	ComboFlagsHeightSmall    ComboFlags = 1 << 1 // Show at most ~4 items
	ComboFlagsHeightRegular  ComboFlags = 1 << 2 // Show at most ~8 items (default)
	ComboFlagsHeightLarge    ComboFlags = 1 << 3 // Show at most ~20 items
	ComboFlagsHeightLargest  ComboFlags = 1 << 4 // Show as many items as fit
	ComboFlagsNoArrowButton  ComboFlags = 1 << 5 // Hide the arrow button
	ComboFlagsNoPreview      ComboFlags = 1 << 6 // Hide the preview field
)

// Combo opens a combo box showing the given preview text. The body runs only
// while the dropdown is open and typically submits one selectable per entry.
//
// Usage:
//
//	ui.Combo("Weather", current)(func() {
//	    // selectables writing back the choice
//	})
func (ui *UI) Combo(label, preview string, opts ...Option) func(func()) bool {
	return func(body func()) bool {
		s := ScopeIf(
			ui.backend.BeginCombo(label, preview, ApplyAndGet(opts, OptComboFlags)),
			ui.backend.EndCombo,
		)
		return ui.run("Combo", s, body)
	}
}

// ListBox opens a scrolling multi-line selection box. WithSize overrides the
// default height of roughly seven items.
func (ui *UI) ListBox(label string, opts ...Option) func(func()) bool {
	return func(body func()) bool {
		s := ScopeIf(
			ui.backend.BeginListBox(label, ApplyAndGet(opts, OptSize)),
			ui.backend.EndListBox,
		)
		return ui.run("ListBox", s, body)
	}
}
