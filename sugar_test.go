package sugar_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/sugar"
)

// recordingBackend captures backend calls in order. Tests choose which begin
// calls report their section as open via the open map; unlisted begins
// report open.
type recordingBackend struct {
	calls []string
	open  map[string]bool
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{open: make(map[string]bool)}
}

func (r *recordingBackend) record(call string) {
	r.calls = append(r.calls, call)
}

func (r *recordingBackend) begin(method, call string) bool {
	r.record(call)
	if open, ok := r.open[method]; ok {
		return open
	}
	return true
}

func (r *recordingBackend) BeginWindow(title string, open *bool, flags sugar.WindowFlags) bool {
	call := "BeginWindow(" + title
	if open != nil {
		call += ", open"
	}
	if flags != 0 {
		call += fmt.Sprintf(", flags=%d", flags)
	}
	return r.begin("BeginWindow", call+")")
}

func (r *recordingBackend) EndWindow() { r.record("EndWindow") }

func (r *recordingBackend) BeginChild(id string, size sugar.Vec2, border bool, flags sugar.WindowFlags) bool {
	call := "BeginChild(" + id
	if size != (sugar.Vec2{}) {
		call += fmt.Sprintf(", size=%v", size)
	}
	if border {
		call += ", border"
	}
	if flags != 0 {
		call += fmt.Sprintf(", flags=%d", flags)
	}
	return r.begin("BeginChild", call+")")
}

func (r *recordingBackend) EndChild() { r.record("EndChild") }

func (r *recordingBackend) BeginChildFrame(id string, size sugar.Vec2, flags sugar.WindowFlags) bool {
	call := fmt.Sprintf("BeginChildFrame(%s, size=%v", id, size)
	if flags != 0 {
		call += fmt.Sprintf(", flags=%d", flags)
	}
	return r.begin("BeginChildFrame", call+")")
}

func (r *recordingBackend) EndChildFrame() { r.record("EndChildFrame") }

func (r *recordingBackend) BeginCombo(label, preview string, flags sugar.ComboFlags) bool {
	call := fmt.Sprintf("BeginCombo(%s, %s", label, preview)
	if flags != 0 {
		call += fmt.Sprintf(", flags=%d", flags)
	}
	return r.begin("BeginCombo", call+")")
}

func (r *recordingBackend) EndCombo() { r.record("EndCombo") }

func (r *recordingBackend) BeginListBox(label string, size sugar.Vec2) bool {
	call := "BeginListBox(" + label
	if size != (sugar.Vec2{}) {
		call += fmt.Sprintf(", size=%v", size)
	}
	return r.begin("BeginListBox", call+")")
}

func (r *recordingBackend) EndListBox() { r.record("EndListBox") }

func (r *recordingBackend) BeginMenuBar() bool { return r.begin("BeginMenuBar", "BeginMenuBar") }

func (r *recordingBackend) EndMenuBar() { r.record("EndMenuBar") }

func (r *recordingBackend) BeginMainMenuBar() bool {
	return r.begin("BeginMainMenuBar", "BeginMainMenuBar")
}

func (r *recordingBackend) EndMainMenuBar() { r.record("EndMainMenuBar") }

func (r *recordingBackend) BeginMenu(label string, enabled bool) bool {
	call := "BeginMenu(" + label
	if !enabled {
		call += ", disabled"
	}
	return r.begin("BeginMenu", call+")")
}

func (r *recordingBackend) EndMenu() { r.record("EndMenu") }

func (r *recordingBackend) BeginPopup(id string, flags sugar.WindowFlags) bool {
	call := "BeginPopup(" + id
	if flags != 0 {
		call += fmt.Sprintf(", flags=%d", flags)
	}
	return r.begin("BeginPopup", call+")")
}

func (r *recordingBackend) BeginPopupModal(title string, open *bool, flags sugar.WindowFlags) bool {
	call := "BeginPopupModal(" + title
	if open != nil {
		call += ", open"
	}
	if flags != 0 {
		call += fmt.Sprintf(", flags=%d", flags)
	}
	return r.begin("BeginPopupModal", call+")")
}

// The context popups always record their flags so tests can check the
// default mouse button.

func (r *recordingBackend) BeginPopupContextItem(id string, flags sugar.PopupFlags) bool {
	call := "BeginPopupContextItem("
	if id != "" {
		call += "id=" + id + ", "
	}
	return r.begin("BeginPopupContextItem", call+fmt.Sprintf("flags=%d)", flags))
}

func (r *recordingBackend) BeginPopupContextWindow(id string, flags sugar.PopupFlags) bool {
	call := "BeginPopupContextWindow("
	if id != "" {
		call += "id=" + id + ", "
	}
	return r.begin("BeginPopupContextWindow", call+fmt.Sprintf("flags=%d)", flags))
}

func (r *recordingBackend) BeginPopupContextVoid(id string, flags sugar.PopupFlags) bool {
	call := "BeginPopupContextVoid("
	if id != "" {
		call += "id=" + id + ", "
	}
	return r.begin("BeginPopupContextVoid", call+fmt.Sprintf("flags=%d)", flags))
}

func (r *recordingBackend) EndPopup() { r.record("EndPopup") }

func (r *recordingBackend) BeginTable(id string, columns int, flags sugar.TableFlags, outerSize sugar.Vec2, innerWidth float32) bool {
	call := fmt.Sprintf("BeginTable(%s, %d", id, columns)
	if flags != 0 {
		call += fmt.Sprintf(", flags=%d", flags)
	}
	if outerSize != (sugar.Vec2{}) {
		call += fmt.Sprintf(", outer=%v", outerSize)
	}
	if innerWidth != 0 {
		call += fmt.Sprintf(", inner=%g", innerWidth)
	}
	return r.begin("BeginTable", call+")")
}

func (r *recordingBackend) EndTable() { r.record("EndTable") }

func (r *recordingBackend) BeginTabBar(id string, flags sugar.TabBarFlags) bool {
	call := "BeginTabBar(" + id
	if flags != 0 {
		call += fmt.Sprintf(", flags=%d", flags)
	}
	return r.begin("BeginTabBar", call+")")
}

func (r *recordingBackend) EndTabBar() { r.record("EndTabBar") }

func (r *recordingBackend) BeginTabItem(label string, open *bool, flags sugar.TabItemFlags) bool {
	call := "BeginTabItem(" + label
	if open != nil {
		call += ", open"
	}
	if flags != 0 {
		call += fmt.Sprintf(", flags=%d", flags)
	}
	return r.begin("BeginTabItem", call+")")
}

func (r *recordingBackend) EndTabItem() { r.record("EndTabItem") }

func (r *recordingBackend) BeginDragDropSource(flags sugar.DragDropFlags) bool {
	call := "BeginDragDropSource"
	if flags != 0 {
		call += fmt.Sprintf("(flags=%d)", flags)
	}
	return r.begin("BeginDragDropSource", call)
}

func (r *recordingBackend) EndDragDropSource() { r.record("EndDragDropSource") }

func (r *recordingBackend) BeginDragDropTarget() bool {
	return r.begin("BeginDragDropTarget", "BeginDragDropTarget")
}

func (r *recordingBackend) EndDragDropTarget() { r.record("EndDragDropTarget") }

func (r *recordingBackend) TreeNode(label string, flags sugar.TreeNodeFlags) bool {
	call := "TreeNode(" + label
	if flags != 0 {
		call += fmt.Sprintf(", flags=%d", flags)
	}
	return r.begin("TreeNode", call+")")
}

func (r *recordingBackend) TreePop() { r.record("TreePop") }

func (r *recordingBackend) CollapsingHeader(label string, flags sugar.TreeNodeFlags) bool {
	call := "CollapsingHeader(" + label
	if flags != 0 {
		call += fmt.Sprintf(", flags=%d", flags)
	}
	return r.begin("CollapsingHeader", call+")")
}

func (r *recordingBackend) BeginGroup() { r.record("BeginGroup") }

func (r *recordingBackend) EndGroup() { r.record("EndGroup") }

func (r *recordingBackend) BeginTooltip() { r.record("BeginTooltip") }

func (r *recordingBackend) EndTooltip() { r.record("EndTooltip") }

func (r *recordingBackend) PushFont(f sugar.Font) { r.record(fmt.Sprintf("PushFont(%d)", f)) }

func (r *recordingBackend) PopFont() { r.record("PopFont") }

func (r *recordingBackend) PushAllowKeyboardFocus(allow bool) {
	r.record(fmt.Sprintf("PushAllowKeyboardFocus(%t)", allow))
}

func (r *recordingBackend) PopAllowKeyboardFocus() { r.record("PopAllowKeyboardFocus") }

func (r *recordingBackend) PushButtonRepeat(repeat bool) {
	r.record(fmt.Sprintf("PushButtonRepeat(%t)", repeat))
}

func (r *recordingBackend) PopButtonRepeat() { r.record("PopButtonRepeat") }

func (r *recordingBackend) PushItemWidth(width float32) {
	r.record(fmt.Sprintf("PushItemWidth(%g)", width))
}

func (r *recordingBackend) PopItemWidth() { r.record("PopItemWidth") }

func (r *recordingBackend) PushTextWrapPos(wrapX float32) {
	r.record(fmt.Sprintf("PushTextWrapPos(%g)", wrapX))
}

func (r *recordingBackend) PopTextWrapPos() { r.record("PopTextWrapPos") }

func (r *recordingBackend) PushID(id string) { r.record("PushID(" + id + ")") }

func (r *recordingBackend) PushIDInt(id int) { r.record(fmt.Sprintf("PushIDInt(%d)", id)) }

func (r *recordingBackend) PopID() { r.record("PopID") }

func (r *recordingBackend) PushClipRect(min, max sugar.Vec2, intersect bool) {
	r.record(fmt.Sprintf("PushClipRect(%v, %v, intersect=%t)", min, max, intersect))
}

func (r *recordingBackend) PopClipRect() { r.record("PopClipRect") }

func (r *recordingBackend) PushTextureID(tex sugar.TextureID) {
	r.record(fmt.Sprintf("PushTextureID(%d)", tex))
}

func (r *recordingBackend) PopTextureID() { r.record("PopTextureID") }

func (r *recordingBackend) PushStyleColor(id sugar.StyleColorID, color sugar.Vec4) {
	r.record(fmt.Sprintf("PushStyleColor(%d, %v)", id, color))
}

func (r *recordingBackend) PopStyleColor(count int) {
	r.record(fmt.Sprintf("PopStyleColor(%d)", count))
}

func (r *recordingBackend) PushStyleVarFloat(id sugar.StyleVarID, value float32) {
	r.record(fmt.Sprintf("PushStyleVarFloat(%d, %g)", id, value))
}

func (r *recordingBackend) PushStyleVarVec2(id sugar.StyleVarID, value sugar.Vec2) {
	r.record(fmt.Sprintf("PushStyleVarVec2(%d, %v)", id, value))
}

func (r *recordingBackend) PopStyleVar(count int) {
	r.record(fmt.Sprintf("PopStyleVar(%d)", count))
}

func TestWindow_BodyBetweenBeginAndEnd(t *testing.T) {
	rec := newRecordingBackend()
	ui := sugar.New(rec)

	ran := ui.Window("Trainer")(func() { rec.record("body") })
	if !ran {
		t.Error("expected body to run for an open window")
	}

	want := []string{"BeginWindow(Trainer)", "body", "EndWindow"}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("call sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestAlwaysClosedSections_EndDespiteCollapse(t *testing.T) {
	cases := []struct {
		name      string
		section   func(*sugar.UI) func(func()) bool
		method    string
		beginCall string
		endCall   string
	}{
		{
			"Window",
			func(ui *sugar.UI) func(func()) bool { return ui.Window("W") },
			"BeginWindow", "BeginWindow(W)", "EndWindow",
		},
		{
			"Child",
			func(ui *sugar.UI) func(func()) bool { return ui.Child("pane") },
			"BeginChild", "BeginChild(pane)", "EndChild",
		},
		{
			"ChildFrame",
			func(ui *sugar.UI) func(func()) bool {
				return ui.ChildFrame("frame", sugar.Vec2{X: 100, Y: 80})
			},
			"BeginChildFrame", "BeginChildFrame(frame, size={100 80})", "EndChildFrame",
		},
	}

	for _, tc := range cases {
		// Collapsed: body skipped, end still called.
		rec := newRecordingBackend()
		rec.open[tc.method] = false
		ui := sugar.New(rec)

		ran := tc.section(ui)(func() { rec.record("body") })
		if ran {
			t.Errorf("%s: expected body to be skipped when collapsed", tc.name)
		}
		want := []string{tc.beginCall, tc.endCall}
		if diff := cmp.Diff(want, rec.calls); diff != "" {
			t.Errorf("%s: collapsed call sequence mismatch (-want +got):\n%s", tc.name, diff)
		}

		// Open: body runs between begin and end.
		rec = newRecordingBackend()
		ui = sugar.New(rec)

		ran = tc.section(ui)(func() { rec.record("body") })
		if !ran {
			t.Errorf("%s: expected body to run when open", tc.name)
		}
		want = []string{tc.beginCall, "body", tc.endCall}
		if diff := cmp.Diff(want, rec.calls); diff != "" {
			t.Errorf("%s: open call sequence mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestConditionalSections_EndOnlyWhenOpen(t *testing.T) {
	cases := []struct {
		name      string
		section   func(*sugar.UI) func(func()) bool
		method    string
		beginCall string
		endCall   string
	}{
		{
			"Combo",
			func(ui *sugar.UI) func(func()) bool { return ui.Combo("fruit", "apple") },
			"BeginCombo", "BeginCombo(fruit, apple)", "EndCombo",
		},
		{
			"ListBox",
			func(ui *sugar.UI) func(func()) bool { return ui.ListBox("files") },
			"BeginListBox", "BeginListBox(files)", "EndListBox",
		},
		{
			"MenuBar",
			func(ui *sugar.UI) func(func()) bool { return ui.MenuBar() },
			"BeginMenuBar", "BeginMenuBar", "EndMenuBar",
		},
		{
			"MainMenuBar",
			func(ui *sugar.UI) func(func()) bool { return ui.MainMenuBar() },
			"BeginMainMenuBar", "BeginMainMenuBar", "EndMainMenuBar",
		},
		{
			"Menu",
			func(ui *sugar.UI) func(func()) bool { return ui.Menu("File") },
			"BeginMenu", "BeginMenu(File)", "EndMenu",
		},
		{
			"Popup",
			func(ui *sugar.UI) func(func()) bool { return ui.Popup("ctx") },
			"BeginPopup", "BeginPopup(ctx)", "EndPopup",
		},
		{
			"PopupModal",
			func(ui *sugar.UI) func(func()) bool { return ui.PopupModal("Confirm") },
			"BeginPopupModal", "BeginPopupModal(Confirm)", "EndPopup",
		},
		{
			"PopupContextItem",
			func(ui *sugar.UI) func(func()) bool { return ui.PopupContextItem() },
			"BeginPopupContextItem", "BeginPopupContextItem(flags=1)", "EndPopup",
		},
		{
			"PopupContextWindow",
			func(ui *sugar.UI) func(func()) bool { return ui.PopupContextWindow() },
			"BeginPopupContextWindow", "BeginPopupContextWindow(flags=1)", "EndPopup",
		},
		{
			"PopupContextVoid",
			func(ui *sugar.UI) func(func()) bool { return ui.PopupContextVoid() },
			"BeginPopupContextVoid", "BeginPopupContextVoid(flags=1)", "EndPopup",
		},
		{
			"Table",
			func(ui *sugar.UI) func(func()) bool { return ui.Table("rows", 2) },
			"BeginTable", "BeginTable(rows, 2)", "EndTable",
		},
		{
			"TabBar",
			func(ui *sugar.UI) func(func()) bool { return ui.TabBar("tabs") },
			"BeginTabBar", "BeginTabBar(tabs)", "EndTabBar",
		},
		{
			"TabItem",
			func(ui *sugar.UI) func(func()) bool { return ui.TabItem("General") },
			"BeginTabItem", "BeginTabItem(General)", "EndTabItem",
		},
		{
			"DragDropSource",
			func(ui *sugar.UI) func(func()) bool { return ui.DragDropSource() },
			"BeginDragDropSource", "BeginDragDropSource", "EndDragDropSource",
		},
		{
			"DragDropTarget",
			func(ui *sugar.UI) func(func()) bool { return ui.DragDropTarget() },
			"BeginDragDropTarget", "BeginDragDropTarget", "EndDragDropTarget",
		},
		{
			"TreeNode",
			func(ui *sugar.UI) func(func()) bool { return ui.TreeNode("Root") },
			"TreeNode", "TreeNode(Root)", "TreePop",
		},
	}

	for _, tc := range cases {
		// Open: begin, body, end.
		rec := newRecordingBackend()
		ui := sugar.New(rec)

		ran := tc.section(ui)(func() { rec.record("body") })
		if !ran {
			t.Errorf("%s: expected body to run when section is open", tc.name)
		}
		want := []string{tc.beginCall, "body", tc.endCall}
		if diff := cmp.Diff(want, rec.calls); diff != "" {
			t.Errorf("%s: open call sequence mismatch (-want +got):\n%s", tc.name, diff)
		}

		// Closed: begin only. Calling the end here would corrupt the
		// wrapped library's state.
		rec = newRecordingBackend()
		rec.open[tc.method] = false
		ui = sugar.New(rec)

		ran = tc.section(ui)(func() { rec.record("body") })
		if ran {
			t.Errorf("%s: expected body to be skipped when section is closed", tc.name)
		}
		want = []string{tc.beginCall}
		if diff := cmp.Diff(want, rec.calls); diff != "" {
			t.Errorf("%s: closed call sequence mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestVoidSections_AlwaysRunBody(t *testing.T) {
	cases := []struct {
		name      string
		section   func(*sugar.UI) func(func()) bool
		beginCall string
		endCall   string
	}{
		{
			"Group",
			func(ui *sugar.UI) func(func()) bool { return ui.Group() },
			"BeginGroup", "EndGroup",
		},
		{
			"Tooltip",
			func(ui *sugar.UI) func(func()) bool { return ui.Tooltip() },
			"BeginTooltip", "EndTooltip",
		},
	}

	for _, tc := range cases {
		rec := newRecordingBackend()
		ui := sugar.New(rec)

		ran := tc.section(ui)(func() { rec.record("body") })
		if !ran {
			t.Errorf("%s: expected body to always run", tc.name)
		}
		want := []string{tc.beginCall, "body", tc.endCall}
		if diff := cmp.Diff(want, rec.calls); diff != "" {
			t.Errorf("%s: call sequence mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestPushSections_WrapBody(t *testing.T) {
	red := sugar.Vec4{X: 1, W: 1}

	cases := []struct {
		name     string
		section  func(*sugar.UI) func(func()) bool
		pushCall string
		popCall  string
	}{
		{
			"Font",
			func(ui *sugar.UI) func(func()) bool { return ui.Font(sugar.Font(2)) },
			"PushFont(2)", "PopFont",
		},
		{
			"AllowKeyboardFocus",
			func(ui *sugar.UI) func(func()) bool { return ui.AllowKeyboardFocus(false) },
			"PushAllowKeyboardFocus(false)", "PopAllowKeyboardFocus",
		},
		{
			"ButtonRepeat",
			func(ui *sugar.UI) func(func()) bool { return ui.ButtonRepeat(true) },
			"PushButtonRepeat(true)", "PopButtonRepeat",
		},
		{
			"ItemWidth",
			func(ui *sugar.UI) func(func()) bool { return ui.ItemWidth(120) },
			"PushItemWidth(120)", "PopItemWidth",
		},
		{
			"TextWrapPos",
			func(ui *sugar.UI) func(func()) bool { return ui.TextWrapPos(300) },
			"PushTextWrapPos(300)", "PopTextWrapPos",
		},
		{
			"ID",
			func(ui *sugar.UI) func(func()) bool { return ui.ID("row") },
			"PushID(row)", "PopID",
		},
		{
			"IDInt",
			func(ui *sugar.UI) func(func()) bool { return ui.IDInt(7) },
			"PushIDInt(7)", "PopID",
		},
		{
			"ClipRect",
			func(ui *sugar.UI) func(func()) bool {
				return ui.ClipRect(sugar.Vec2{}, sugar.Vec2{X: 64, Y: 48}, true)
			},
			"PushClipRect({0 0}, {64 48}, intersect=true)", "PopClipRect",
		},
		{
			"TextureID",
			func(ui *sugar.UI) func(func()) bool { return ui.TextureID(sugar.TextureID(9)) },
			"PushTextureID(9)", "PopTextureID",
		},
		{
			"StyleColor",
			func(ui *sugar.UI) func(func()) bool { return ui.StyleColor(sugar.StyleColorText, red) },
			fmt.Sprintf("PushStyleColor(%d, {1 0 0 1})", sugar.StyleColorText), "PopStyleColor(1)",
		},
		{
			// The packed form must unpack to the same components.
			"StyleColorU32",
			func(ui *sugar.UI) func(func()) bool {
				return ui.StyleColorU32(sugar.StyleColorText, sugar.ColorRed)
			},
			fmt.Sprintf("PushStyleColor(%d, {1 0 0 1})", sugar.StyleColorText), "PopStyleColor(1)",
		},
		{
			"StyleVar",
			func(ui *sugar.UI) func(func()) bool { return ui.StyleVar(sugar.StyleVarAlpha, 0.5) },
			fmt.Sprintf("PushStyleVarFloat(%d, 0.5)", sugar.StyleVarAlpha), "PopStyleVar(1)",
		},
		{
			"StyleVarVec2",
			func(ui *sugar.UI) func(func()) bool {
				return ui.StyleVarVec2(sugar.StyleVarWindowPadding, sugar.Vec2{X: 4, Y: 4})
			},
			fmt.Sprintf("PushStyleVarVec2(%d, {4 4})", sugar.StyleVarWindowPadding), "PopStyleVar(1)",
		},
	}

	for _, tc := range cases {
		rec := newRecordingBackend()
		ui := sugar.New(rec)

		ran := tc.section(ui)(func() { rec.record("body") })
		if !ran {
			t.Errorf("%s: push sections always run their body", tc.name)
		}
		want := []string{tc.pushCall, "body", tc.popCall}
		if diff := cmp.Diff(want, rec.calls); diff != "" {
			t.Errorf("%s: call sequence mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestNestedSections_CloseInReverseOrder(t *testing.T) {
	rec := newRecordingBackend()
	ui := sugar.New(rec)

	ui.Window("W")(func() {
		ui.TabBar("tabs")(func() {
			ui.TabItem("General")(func() {
				rec.record("body")
			})
		})
	})

	want := []string{
		"BeginWindow(W)",
		"BeginTabBar(tabs)",
		"BeginTabItem(General)",
		"body",
		"EndTabItem",
		"EndTabBar",
		"EndWindow",
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("call sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestDepth_TracksNesting(t *testing.T) {
	rec := newRecordingBackend()
	ui := sugar.New(rec)

	var inWindow, inGroup int
	ui.Window("W")(func() {
		inWindow = ui.Depth()
		ui.Group()(func() {
			inGroup = ui.Depth()
		})
	})

	if inWindow != 1 || inGroup != 2 {
		t.Errorf("expected depths 1 and 2 inside nested bodies, got %d and %d", inWindow, inGroup)
	}
	if ui.Depth() != 0 {
		t.Errorf("expected depth 0 outside any body, got %d", ui.Depth())
	}
}

func TestSectionPanic_StillCloses(t *testing.T) {
	rec := newRecordingBackend()
	ui := sugar.New(rec)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected the panic to propagate")
			}
		}()
		ui.Window("W")(func() { panic("boom") })
	}()

	want := []string{"BeginWindow(W)", "EndWindow"}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("call sequence mismatch (-want +got):\n%s", diff)
	}
	if ui.Depth() != 0 {
		t.Errorf("expected depth 0 after recovered panic, got %d", ui.Depth())
	}
}

func TestWindow_OptionsForwarded(t *testing.T) {
	rec := newRecordingBackend()
	ui := sugar.New(rec)

	visible := true
	flags := sugar.WindowFlagsNoResize | sugar.WindowFlagsMenuBar
	ui.Window("W", sugar.Open(&visible), sugar.WithWindowFlags(flags))(func() {})

	want := []string{
		fmt.Sprintf("BeginWindow(W, open, flags=%d)", flags),
		"EndWindow",
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("call sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestChild_OptionsForwarded(t *testing.T) {
	rec := newRecordingBackend()
	ui := sugar.New(rec)

	ui.Child("pane", sugar.WithSize(sugar.Vec2{X: 200}), sugar.Bordered())(func() {})

	want := []string{"BeginChild(pane, size={200 0}, border)", "EndChild"}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("call sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestMenu_DisabledForwarded(t *testing.T) {
	rec := newRecordingBackend()
	ui := sugar.New(rec)

	ran := ui.Menu("File", sugar.Enabled(false))(func() { rec.record("body") })
	if !ran {
		t.Error("the fake reports disabled menus open; routing is under test here")
	}

	want := []string{"BeginMenu(File, disabled)", "body", "EndMenu"}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("call sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_OptionsForwarded(t *testing.T) {
	rec := newRecordingBackend()
	ui := sugar.New(rec)

	flags := sugar.TableFlagsBorders | sugar.TableFlagsResizable
	ui.Table("rows", 3,
		sugar.WithTableFlags(flags),
		sugar.WithOuterSize(sugar.Vec2{X: 300}),
		sugar.WithInnerWidth(500),
	)(func() {})

	want := []string{
		fmt.Sprintf("BeginTable(rows, 3, flags=%d, outer={300 0}, inner=500)", flags),
		"EndTable",
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("call sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestContextPopups_MouseButtonOverride(t *testing.T) {
	rec := newRecordingBackend()
	ui := sugar.New(rec)

	ui.PopupContextWindow(sugar.WithPopupFlags(sugar.PopupFlagsMouseButtonLeft))(func() {})
	ui.PopupContextItem(sugar.WithContextID("rows"))(func() {})

	want := []string{
		"BeginPopupContextWindow(flags=0)",
		"EndPopup",
		"BeginPopupContextItem(id=rows, flags=1)",
		"EndPopup",
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("call sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestCollapsingHeader_NoCloseCall(t *testing.T) {
	rec := newRecordingBackend()
	ui := sugar.New(rec)

	if !ui.CollapsingHeader("Advanced") {
		t.Error("expected open header")
	}

	rec.open["CollapsingHeader"] = false
	if ui.CollapsingHeader("Advanced") {
		t.Error("expected collapsed header")
	}

	want := []string{"CollapsingHeader(Advanced)", "CollapsingHeader(Advanced)"}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("call sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestColorHelpers(t *testing.T) {
	c := sugar.RGBA(255, 128, 64, 200)
	r, g, b, a := sugar.UnpackRGBA(c)
	if r != 255 || g != 128 || b != 64 || a != 200 {
		t.Errorf("RGBA roundtrip failed: got %d,%d,%d,%d", r, g, b, a)
	}

	v := sugar.ColorVec4(sugar.ColorRed)
	if v.X != 1 || v.Y != 0 || v.Z != 0 || v.W != 1 {
		t.Errorf("ColorVec4 of red unexpected: got %v", v)
	}

	// RGBAf clamps out-of-range components.
	c2 := sugar.RGBAf(2, -1, 0.5, 1)
	r2, g2, b2, a2 := sugar.UnpackRGBA(c2)
	if r2 != 255 || g2 != 0 || b2 < 127 || b2 > 128 || a2 != 255 {
		t.Errorf("RGBAf conversion unexpected: got %d,%d,%d,%d", r2, g2, b2, a2)
	}
}

func TestSetVerbose_EmitsScopeLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rec := newRecordingBackend()
	ui := sugar.New(rec, sugar.WithLogger(logger))

	// Quiet by default.
	ui.Window("W")(func() {})
	if buf.Len() != 0 {
		t.Errorf("expected no log output without SetVerbose, got %q", buf.String())
	}

	sugar.SetVerbose(true)
	defer sugar.SetVerbose(false)

	ui.Window("W")(func() {})
	out := buf.String()
	if !strings.Contains(out, "scope enter") || !strings.Contains(out, "scope=Window") {
		t.Errorf("expected scope enter log for Window, got %q", out)
	}
	if !strings.Contains(out, "scope exit") {
		t.Errorf("expected scope exit log, got %q", out)
	}
}

func BenchmarkWindowScope(b *testing.B) {
	rec := newRecordingBackend()
	ui := sugar.New(rec)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec.calls = rec.calls[:0]
		ui.Window("bench")(func() {})
	}
}
