package sugar

// Backend is the surface this package consumes from an immediate-mode GUI
// library: every paired begin/end and push/pop call that the scope methods
// wrap, plus the header passthrough. The production implementation lives in
// backend/imguibackend; tests substitute a recording fake.
//
// Begin methods returning bool report whether the opened section should be
// populated. End methods take no arguments, except the two counted pops,
// which the scope methods always invoke with a count of 1.
type Backend interface {
	// --- Windows ---

	// BeginWindow opens a window. Its end call is required even when the
	// window is collapsed and false is returned. open may be nil; when
	// set, the window shows a close button writing through the pointer.
	BeginWindow(title string, open *bool, flags WindowFlags) bool
	EndWindow()

	// BeginChild opens an embedded region inside the current window.
	// Like BeginWindow, the end call is unconditional.
	BeginChild(id string, size Vec2, border bool, flags WindowFlags) bool
	EndChild()

	// BeginChildFrame opens a child region styled like a framed widget.
	BeginChildFrame(id string, size Vec2, flags WindowFlags) bool
	EndChildFrame()

	// --- Conditionally closed sections ---
	// The end call must run only when the begin returned true.

	BeginCombo(label, preview string, flags ComboFlags) bool
	EndCombo()

	BeginListBox(label string, size Vec2) bool
	EndListBox()

	BeginMenuBar() bool
	EndMenuBar()

	BeginMainMenuBar() bool
	EndMainMenuBar()

	BeginMenu(label string, enabled bool) bool
	EndMenu()

	// The popup variants share one end call. Plain popups and modals take
	// window styling flags; the context variants take popup flags, which
	// select the triggering mouse button.
	BeginPopup(id string, flags WindowFlags) bool
	BeginPopupModal(title string, open *bool, flags WindowFlags) bool
	BeginPopupContextItem(id string, flags PopupFlags) bool
	BeginPopupContextWindow(id string, flags PopupFlags) bool
	BeginPopupContextVoid(id string, flags PopupFlags) bool
	EndPopup()

	BeginTable(id string, columns int, flags TableFlags, outerSize Vec2, innerWidth float32) bool
	EndTable()

	BeginTabBar(id string, flags TabBarFlags) bool
	EndTabBar()

	BeginTabItem(label string, open *bool, flags TabItemFlags) bool
	EndTabItem()

	BeginDragDropSource(flags DragDropFlags) bool
	EndDragDropSource()

	BeginDragDropTarget() bool
	EndDragDropTarget()

	// TreeNode's matching close is TreePop, required only when the node
	// is open.
	TreeNode(label string, flags TreeNodeFlags) bool
	TreePop()

	// CollapsingHeader has no close call at all.
	CollapsingHeader(label string, flags TreeNodeFlags) bool

	// --- Unconditional void sections ---

	BeginGroup()
	EndGroup()

	BeginTooltip()
	EndTooltip()

	// --- Push/pop stacks ---
	// Every push requires its pop unconditionally.

	PushFont(f Font)
	PopFont()

	PushAllowKeyboardFocus(allow bool)
	PopAllowKeyboardFocus()

	PushButtonRepeat(repeat bool)
	PopButtonRepeat()

	PushItemWidth(width float32)
	PopItemWidth()

	PushTextWrapPos(wrapX float32)
	PopTextWrapPos()

	PushID(id string)
	PushIDInt(id int)
	PopID()

	PushClipRect(min, max Vec2, intersect bool)
	PopClipRect()

	PushTextureID(tex TextureID)
	PopTextureID()

	// The two counted pops. Scope methods pop one entry at a time.
	PushStyleColor(id StyleColorID, color Vec4)
	PopStyleColor(count int)

	PushStyleVarFloat(id StyleVarID, value float32)
	PushStyleVarVec2(id StyleVarID, value Vec2)
	PopStyleVar(count int)
}
