// Package imguibackend implements the sugar Backend on top of the
// inkyblackness imgui-go binding, with a GLFW platform adapter and an
// OpenGL 4.1 renderer for the emitted draw data.
package imguibackend

import (
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/sugar"
)

// Backend forwards sugar Backend calls to imgui-go. It is a thin shim: the
// only state it carries is the texture stack, which the binding does not
// expose, so the adapter keeps its own and publishes the top through
// CurrentTextureID for draw code to consume.
type Backend struct {
	textures []sugar.TextureID
}

// New creates a Backend. An imgui context must be current before any of its
// methods are called; NewPlatform sets one up.
func New() *Backend {
	return &Backend{}
}

func (b *Backend) BeginWindow(title string, open *bool, flags sugar.WindowFlags) bool {
	return imgui.BeginV(title, open, int(flags))
}

func (b *Backend) EndWindow() { imgui.End() }

func (b *Backend) BeginChild(id string, size sugar.Vec2, border bool, flags sugar.WindowFlags) bool {
	return imgui.BeginChildV(id, imgui.Vec2(size), border, int(flags))
}

func (b *Backend) EndChild() { imgui.EndChild() }

// BeginChildFrame renders as a bordered child region. The binding does not
// wrap the library's child-frame helper, which additionally applies the
// frame background style.
func (b *Backend) BeginChildFrame(id string, size sugar.Vec2, flags sugar.WindowFlags) bool {
	return imgui.BeginChildV(id, imgui.Vec2(size), true, int(flags))
}

func (b *Backend) EndChildFrame() { imgui.EndChild() }

func (b *Backend) BeginCombo(label, preview string, flags sugar.ComboFlags) bool {
	return imgui.BeginComboV(label, preview, int(flags))
}

func (b *Backend) EndCombo() { imgui.EndCombo() }

func (b *Backend) BeginListBox(label string, size sugar.Vec2) bool {
	return imgui.BeginListBoxV(label, imgui.Vec2(size))
}

func (b *Backend) EndListBox() { imgui.EndListBox() }

func (b *Backend) BeginMenuBar() bool { return imgui.BeginMenuBar() }

func (b *Backend) EndMenuBar() { imgui.EndMenuBar() }

func (b *Backend) BeginMainMenuBar() bool { return imgui.BeginMainMenuBar() }

func (b *Backend) EndMainMenuBar() { imgui.EndMainMenuBar() }

func (b *Backend) BeginMenu(label string, enabled bool) bool {
	return imgui.BeginMenuV(label, enabled)
}

func (b *Backend) EndMenu() { imgui.EndMenu() }

func (b *Backend) BeginPopup(id string, flags sugar.WindowFlags) bool {
	return imgui.BeginPopupV(id, int(flags))
}

func (b *Backend) BeginPopupModal(title string, open *bool, flags sugar.WindowFlags) bool {
	return imgui.BeginPopupModalV(title, open, int(flags))
}

func (b *Backend) BeginPopupContextItem(id string, flags sugar.PopupFlags) bool {
	return imgui.BeginPopupContextItemV(id, int(flags))
}

func (b *Backend) BeginPopupContextWindow(id string, flags sugar.PopupFlags) bool {
	return imgui.BeginPopupContextWindowV(id, int(flags))
}

func (b *Backend) BeginPopupContextVoid(id string, flags sugar.PopupFlags) bool {
	return imgui.BeginPopupContextVoidV(id, int(flags))
}

func (b *Backend) EndPopup() { imgui.EndPopup() }

// OpenPopup marks the popup with the given ID for opening. Call it from the
// same ID scope that draws the popup.
func (b *Backend) OpenPopup(id string) { imgui.OpenPopup(id) }

func (b *Backend) BeginTable(id string, columns int, flags sugar.TableFlags, outerSize sugar.Vec2, innerWidth float32) bool {
	return imgui.BeginTableV(id, columns, imgui.TableFlags(flags), imgui.Vec2(outerSize), innerWidth)
}

func (b *Backend) EndTable() { imgui.EndTable() }

func (b *Backend) BeginTabBar(id string, flags sugar.TabBarFlags) bool {
	return imgui.BeginTabBarV(id, int(flags))
}

func (b *Backend) EndTabBar() { imgui.EndTabBar() }

func (b *Backend) BeginTabItem(label string, open *bool, flags sugar.TabItemFlags) bool {
	return imgui.BeginTabItemV(label, open, int(flags))
}

func (b *Backend) EndTabItem() { imgui.EndTabItem() }

func (b *Backend) BeginDragDropSource(flags sugar.DragDropFlags) bool {
	return imgui.BeginDragDropSource(int(flags))
}

func (b *Backend) EndDragDropSource() { imgui.EndDragDropSource() }

func (b *Backend) BeginDragDropTarget() bool { return imgui.BeginDragDropTarget() }

func (b *Backend) EndDragDropTarget() { imgui.EndDragDropTarget() }

func (b *Backend) TreeNode(label string, flags sugar.TreeNodeFlags) bool {
	return imgui.TreeNodeV(label, int(flags))
}

func (b *Backend) TreePop() { imgui.TreePop() }

func (b *Backend) CollapsingHeader(label string, flags sugar.TreeNodeFlags) bool {
	return imgui.CollapsingHeaderV(label, int(flags))
}

func (b *Backend) BeginGroup() { imgui.BeginGroup() }

func (b *Backend) EndGroup() { imgui.EndGroup() }

func (b *Backend) BeginTooltip() { imgui.BeginTooltip() }

func (b *Backend) EndTooltip() { imgui.EndTooltip() }

func (b *Backend) PushFont(f sugar.Font) { imgui.PushFont(imgui.Font(f)) }

func (b *Backend) PopFont() { imgui.PopFont() }

func (b *Backend) PushAllowKeyboardFocus(allow bool) { imgui.PushAllowKeyboardFocus(allow) }

func (b *Backend) PopAllowKeyboardFocus() { imgui.PopAllowKeyboardFocus() }

func (b *Backend) PushButtonRepeat(repeat bool) { imgui.PushButtonRepeat(repeat) }

func (b *Backend) PopButtonRepeat() { imgui.PopButtonRepeat() }

func (b *Backend) PushItemWidth(width float32) { imgui.PushItemWidth(width) }

func (b *Backend) PopItemWidth() { imgui.PopItemWidth() }

func (b *Backend) PushTextWrapPos(wrapX float32) { imgui.PushTextWrapPosV(wrapX) }

func (b *Backend) PopTextWrapPos() { imgui.PopTextWrapPos() }

func (b *Backend) PushID(id string) { imgui.PushID(id) }

func (b *Backend) PushIDInt(id int) { imgui.PushIDInt(id) }

func (b *Backend) PopID() { imgui.PopID() }

func (b *Backend) PushClipRect(min, max sugar.Vec2, intersect bool) {
	imgui.PushClipRect(imgui.Vec2(min), imgui.Vec2(max), intersect)
}

func (b *Backend) PopClipRect() { imgui.PopClipRect() }

// PushTextureID and PopTextureID maintain the adapter's texture stack. The
// binding does not wrap the library's draw-list texture stack, so draw code
// reads the active texture through CurrentTextureID instead.
func (b *Backend) PushTextureID(tex sugar.TextureID) {
	b.textures = append(b.textures, tex)
}

func (b *Backend) PopTextureID() {
	if n := len(b.textures); n > 0 {
		b.textures = b.textures[:n-1]
	}
}

// CurrentTextureID returns the top of the texture stack, or zero when the
// stack is empty. Zero denotes the font atlas texture.
func (b *Backend) CurrentTextureID() sugar.TextureID {
	if n := len(b.textures); n > 0 {
		return b.textures[n-1]
	}
	return 0
}

func (b *Backend) PushStyleColor(id sugar.StyleColorID, color sugar.Vec4) {
	imgui.PushStyleColor(imgui.StyleColorID(id), imgui.Vec4(color))
}

func (b *Backend) PopStyleColor(count int) { imgui.PopStyleColorV(count) }

func (b *Backend) PushStyleVarFloat(id sugar.StyleVarID, value float32) {
	imgui.PushStyleVarFloat(imgui.StyleVarID(id), value)
}

func (b *Backend) PushStyleVarVec2(id sugar.StyleVarID, value sugar.Vec2) {
	imgui.PushStyleVarVec2(imgui.StyleVarID(id), imgui.Vec2(value))
}

func (b *Backend) PopStyleVar(count int) { imgui.PopStyleVarV(count) }
