package sugar

// TreeNodeFlags control tree node and collapsing header behavior.
type TreeNodeFlags uint32

const (
	TreeNodeFlagsNone TreeNodeFlags = 0

	TreeNodeFlagsSelected             TreeNodeFlags = 1 << 0  // Draw as selected
	TreeNodeFlagsFramed               TreeNodeFlags = 1 << 1  // Draw with a header-style frame
	TreeNodeFlagsAllowItemOverlap     TreeNodeFlags = 1 << 2  // Hit testing allows overlapping siblings
	TreeNodeFlagsNoTreePushOnOpen     TreeNodeFlags = 1 << 3  // Opening doesn't indent or push the ID stack
	TreeNodeFlagsNoAutoOpenOnLog      TreeNodeFlags = 1 << 4  // Don't auto-open when logging text
	TreeNodeFlagsDefaultOpen          TreeNodeFlags = 1 << 5  // Start open
	TreeNodeFlagsOpenOnDoubleClick    TreeNodeFlags = 1 << 6  // Need double-click to open
	TreeNodeFlagsOpenOnArrow          TreeNodeFlags = 1 << 7  // Only the arrow opens (combines with double-click)
	TreeNodeFlagsLeaf                 TreeNodeFlags = 1 << 8  // No arrow, cannot collapse
	TreeNodeFlagsBullet               TreeNodeFlags = 1 << 9  // Show a bullet instead of the arrow
	TreeNodeFlagsFramePadding         TreeNodeFlags = 1 << 10 // Use frame padding for vertical alignment
	TreeNodeFlagsSpanAvailWidth       TreeNodeFlags = 1 << 11 // Hit box spans the remaining row width
	TreeNodeFlagsSpanFullWidth        TreeNodeFlags = 1 << 12 // Hit box spans the full row width
	TreeNodeFlagsNavLeftJumpsBackHere TreeNodeFlags = 1 << 13 // Left navigation from a child lands here

	// Convenience
	TreeNodeFlagsCollapsingHeader = TreeNodeFlagsFramed | TreeNodeFlagsNoTreePushOnOpen | TreeNodeFlagsNoAutoOpenOnLog
)

// TreeNode opens a collapsible tree entry. While open, the body runs
// indented and the matching pop fires afterwards; while closed, neither
// does (the wrapped library only requires the pop for opened nodes).
//
// Usage:
//
//	ui.TreeNode("Gangs")(func() {
//	    ui.TreeNode("Ballas", sugar.WithTreeNodeFlags(sugar.TreeNodeFlagsLeaf))(nil)
//	})
func (ui *UI) TreeNode(label string, opts ...Option) func(func()) bool {
	return func(body func()) bool {
		s := ScopeIf(
			ui.backend.TreeNode(label, ApplyAndGet(opts, OptTreeNodeFlags)),
			ui.backend.TreePop,
		)
		return ui.run("TreeNode", s, body)
	}
}

// CollapsingHeader submits a framed header row and reports whether its
// section is expanded. Unlike the other sections there is no matching end
// call, so no guard is involved; this exists alongside TreeNode for call
// sites that want a plain conditional.
func (ui *UI) CollapsingHeader(label string, opts ...Option) bool {
	return ui.backend.CollapsingHeader(label, ApplyAndGet(opts, OptTreeNodeFlags))
}
