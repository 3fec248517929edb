package sugar

// DragDropFlags control drag-and-drop sources and accept behavior.
type DragDropFlags uint32

const (
	DragDropFlagsNone DragDropFlags = 0

	// Sources
	DragDropFlagsSourceNoPreviewTooltip   DragDropFlags = 1 << 0 // No tooltip preview while dragging
	DragDropFlagsSourceNoDisableHover     DragDropFlags = 1 << 1 // Keep hover state on the source while dragging
	DragDropFlagsSourceNoHoldToOpenOthers DragDropFlags = 1 << 2 // Holding over the source doesn't open tree nodes
	DragDropFlagsSourceAllowNullID        DragDropFlags = 1 << 3 // Allow items without an ID as sources
	DragDropFlagsSourceExtern             DragDropFlags = 1 << 4 // Source is outside the GUI (e.g. OS drag)
	DragDropFlagsSourceAutoExpirePayload  DragDropFlags = 1 << 5 // Expire the payload if the source stops submitting

	// Accept targets
	DragDropFlagsAcceptBeforeDelivery    DragDropFlags = 1 << 10 // Accept before the mouse button is released
	DragDropFlagsAcceptNoDrawDefaultRect DragDropFlags = 1 << 11 // Don't draw the default highlight rect
	DragDropFlagsAcceptNoPreviewTooltip  DragDropFlags = 1 << 12 // Hide the drag preview over the target

	// Convenience
	DragDropFlagsAcceptPeekOnly = DragDropFlagsAcceptBeforeDelivery | DragDropFlagsAcceptNoDrawDefaultRect
)

// DragDropSource marks the last submitted item as a drag source. The body
// runs while a drag is in flight from it, sets the payload through the
// backend, and usually draws the drag preview.
func (ui *UI) DragDropSource(opts ...Option) func(func()) bool {
	return func(body func()) bool {
		s := ScopeIf(
			ui.backend.BeginDragDropSource(ApplyAndGet(opts, OptDragDropFlags)),
			ui.backend.EndDragDropSource,
		)
		return ui.run("DragDropSource", s, body)
	}
}

// DragDropTarget marks the last submitted item as a drop target. The body
// runs while a compatible drag hovers it and accepts the payload through
// the backend.
func (ui *UI) DragDropTarget() func(func()) bool {
	return func(body func()) bool {
		s := ScopeIf(ui.backend.BeginDragDropTarget(), ui.backend.EndDragDropTarget)
		return ui.run("DragDropTarget", s, body)
	}
}
