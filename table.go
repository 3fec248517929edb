package sugar

// TableFlags control table features, borders, sizing, and scrolling.
type TableFlags uint32

const (
	TableFlagsNone TableFlags = 0

	// Features
	TableFlagsResizable         TableFlags = 1 << 0 // Enable column resizing
	TableFlagsReorderable       TableFlags = 1 << 1 // Enable column reordering by dragging headers
	TableFlagsHideable          TableFlags = 1 << 2 // Enable hiding columns via the context menu
	TableFlagsSortable          TableFlags = 1 << 3 // Enable sorting (shows sort indicators)
	TableFlagsNoSavedSettings   TableFlags = 1 << 4 // Never load/save column state
	TableFlagsContextMenuInBody TableFlags = 1 << 5 // Right-click over body opens the column menu too

	// Decorations
	TableFlagsRowBg         TableFlags = 1 << 6  // Alternate row background colors
	TableFlagsBordersInnerH TableFlags = 1 << 7  // Horizontal borders between rows
	TableFlagsBordersOuterH TableFlags = 1 << 8  // Horizontal border on top/bottom
	TableFlagsBordersInnerV TableFlags = 1 << 9  // Vertical borders between columns
	TableFlagsBordersOuterV TableFlags = 1 << 10 // Vertical border on left/right

	// Convenience
	TableFlagsBordersH     = TableFlagsBordersInnerH | TableFlagsBordersOuterH
	TableFlagsBordersV     = TableFlagsBordersInnerV | TableFlagsBordersOuterV
	TableFlagsBordersInner = TableFlagsBordersInnerV | TableFlagsBordersInnerH
	TableFlagsBordersOuter = TableFlagsBordersOuterV | TableFlagsBordersOuterH
	TableFlagsBorders      = TableFlagsBordersInner | TableFlagsBordersOuter

	TableFlagsNoBordersInBody            TableFlags = 1 << 11 // Hide vertical borders in the body
	TableFlagsNoBordersInBodyUntilResize TableFlags = 1 << 12 // Hide them except while resizing

	// Sizing policy
	TableFlagsSizingFixedFit    TableFlags = 1 << 13 // Columns default to content width
	TableFlagsSizingFixedSame   TableFlags = 2 << 13 // Columns default to the widest content width
	TableFlagsSizingStretchProp TableFlags = 3 << 13 // Columns stretch proportionally to content
	TableFlagsSizingStretchSame TableFlags = 4 << 13 // Columns stretch equally

	// Sizing extras
	TableFlagsNoHostExtendX        TableFlags = 1 << 16 // Don't extend past the outer width
	TableFlagsNoHostExtendY        TableFlags = 1 << 17 // Don't extend past the outer height
	TableFlagsNoKeepColumnsVisible TableFlags = 1 << 18 // Allow columns to shrink out of view
	TableFlagsPreciseWidths        TableFlags = 1 << 19 // Distribute remainder pixels precisely
	TableFlagsNoClip               TableFlags = 1 << 20 // Disable per-column clipping

	// Padding
	TableFlagsPadOuterX   TableFlags = 1 << 21 // Pad outer columns
	TableFlagsNoPadOuterX TableFlags = 1 << 22 // Never pad outer columns
	TableFlagsNoPadInnerX TableFlags = 1 << 23 // No padding between columns

	// Scrolling
	TableFlagsScrollX TableFlags = 1 << 24 // Horizontal scrolling (needs an outer size)
	TableFlagsScrollY TableFlags = 1 << 25 // Vertical scrolling (needs an outer size)

	// Sorting
	TableFlagsSortMulti    TableFlags = 1 << 26 // Sort on multiple columns
	TableFlagsSortTristate TableFlags = 1 << 27 // Allow no-sort state
)

// Table opens a table with the given number of columns. The body submits
// rows and cells through the backend; the end call runs only when the table
// is actually visible, matching the wrapped library's contract.
//
// Usage:
//
//	ui.Table("pedstats", 3, sugar.WithTableFlags(sugar.TableFlagsBorders|sugar.TableFlagsRowBg))(func() {
//	    // header row + cell rows
//	})
func (ui *UI) Table(id string, columns int, opts ...Option) func(func()) bool {
	return func(body func()) bool {
		o := applyOptions(opts)
		s := ScopeIf(
			ui.backend.BeginTable(id, columns,
				GetOpt(o, OptTableFlags), GetOpt(o, OptOuterSize), GetOpt(o, OptInnerWidth)),
			ui.backend.EndTable,
		)
		return ui.run("Table", s, body)
	}
}
