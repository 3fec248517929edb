package sugar

// TabBarFlags control tab bar behavior.
type TabBarFlags uint32

const (
	TabBarFlagsNone TabBarFlags = 0

	TabBarFlagsReorderable                  TabBarFlags = 1 << 0 // Allow dragging tabs to reorder
	TabBarFlagsAutoSelectNewTabs            TabBarFlags = 1 << 1 // Select tabs when they first appear
	TabBarFlagsTabListPopupButton           TabBarFlags = 1 << 2 // Show a popup button listing all tabs
	TabBarFlagsNoCloseWithMiddleMouseButton TabBarFlags = 1 << 3 // Don't close on middle click
	TabBarFlagsNoTabListScrollingButtons    TabBarFlags = 1 << 4 // Hide scrolling buttons
	TabBarFlagsNoTooltip                    TabBarFlags = 1 << 5 // No tooltip on hover
	TabBarFlagsFittingPolicyResizeDown      TabBarFlags = 1 << 6 // Shrink tabs when they don't fit
	TabBarFlagsFittingPolicyScroll          TabBarFlags = 1 << 7 // Add scroll buttons when tabs don't fit
)

// TabItemFlags control individual tab behavior.
type TabItemFlags uint32

const (
	TabItemFlagsNone TabItemFlags = 0

	TabItemFlagsUnsavedDocument              TabItemFlags = 1 << 0 // Show a dot instead of the close button
	TabItemFlagsSetSelected                  TabItemFlags = 1 << 1 // Select this tab programmatically
	TabItemFlagsNoCloseWithMiddleMouseButton TabItemFlags = 1 << 2 // Don't close on middle click
	TabItemFlagsNoPushID                     TabItemFlags = 1 << 3 // Don't scope IDs to the tab label
	TabItemFlagsNoTooltip                    TabItemFlags = 1 << 4 // No tooltip on hover
	TabItemFlagsNoReorder                    TabItemFlags = 1 << 5 // Keep this tab in place
	TabItemFlagsLeading                      TabItemFlags = 1 << 6 // Pin to the left of the bar
	TabItemFlagsTrailing                     TabItemFlags = 1 << 7 // Pin to the right of the bar
)

// TabBar opens a tab bar. The body submits TabItem sections; the end call
// runs only when the bar is visible.
func (ui *UI) TabBar(id string, opts ...Option) func(func()) bool {
	return func(body func()) bool {
		s := ScopeIf(
			ui.backend.BeginTabBar(id, ApplyAndGet(opts, OptTabBarFlags)),
			ui.backend.EndTabBar,
		)
		return ui.run("TabBar", s, body)
	}
}

// TabItem opens one tab inside the enclosing TabBar. The body runs only
// while the tab is selected. Open adds a close button writing through the
// pointer.
//
// Usage:
//
//	ui.TabBar("views")(func() {
//	    ui.TabItem("Map")(func() { /* map view */ })
//	    ui.TabItem("Garage")(func() { /* garage view */ })
//	})
func (ui *UI) TabItem(label string, opts ...Option) func(func()) bool {
	return func(body func()) bool {
		o := applyOptions(opts)
		s := ScopeIf(
			ui.backend.BeginTabItem(label, GetOpt(o, OptOpen), GetOpt(o, OptTabItemFlags)),
			ui.backend.EndTabItem,
		)
		return ui.run("TabItem", s, body)
	}
}
