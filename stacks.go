package sugar

// The push/pop families come in two shapes. The plain form scopes the push
// to a body callback:
//
//	ui.ItemWidth(120)(func() {
//	    // widgets drawn 120px wide
//	})
//
// The Set form pushes for the remainder of the enclosing block and returns
// the Scope whose End the caller defers:
//
//	defer ui.SetItemWidth(120).End()
//
// Pushes cannot fail, so both shapes always run the body and always pop.

// Font runs the body with the given font pushed.
func (ui *UI) Font(f Font) func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(func() { ui.backend.PushFont(f) }, ui.backend.PopFont)
		return ui.run("Font", s, body)
	}
}

// SetFont pushes a font until the returned Scope ends.
func (ui *UI) SetFont(f Font) *Scope {
	return ui.push("Font", func() { ui.backend.PushFont(f) }, ui.backend.PopFont)
}

// AllowKeyboardFocus runs the body with tabbing into widgets enabled or
// disabled.
func (ui *UI) AllowKeyboardFocus(allow bool) func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(func() { ui.backend.PushAllowKeyboardFocus(allow) }, ui.backend.PopAllowKeyboardFocus)
		return ui.run("AllowKeyboardFocus", s, body)
	}
}

// SetAllowKeyboardFocus sets tabbing behavior until the returned Scope ends.
func (ui *UI) SetAllowKeyboardFocus(allow bool) *Scope {
	return ui.push("AllowKeyboardFocus", func() { ui.backend.PushAllowKeyboardFocus(allow) }, ui.backend.PopAllowKeyboardFocus)
}

// ButtonRepeat runs the body with held buttons repeating their press events.
func (ui *UI) ButtonRepeat(repeat bool) func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(func() { ui.backend.PushButtonRepeat(repeat) }, ui.backend.PopButtonRepeat)
		return ui.run("ButtonRepeat", s, body)
	}
}

// SetButtonRepeat sets button repeat until the returned Scope ends.
func (ui *UI) SetButtonRepeat(repeat bool) *Scope {
	return ui.push("ButtonRepeat", func() { ui.backend.PushButtonRepeat(repeat) }, ui.backend.PopButtonRepeat)
}

// ItemWidth runs the body with the given default widget width in pixels.
// Negative widths align the right edge that many pixels from the region's
// right side.
func (ui *UI) ItemWidth(width float32) func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(func() { ui.backend.PushItemWidth(width) }, ui.backend.PopItemWidth)
		return ui.run("ItemWidth", s, body)
	}
}

// SetItemWidth sets the default widget width until the returned Scope ends.
func (ui *UI) SetItemWidth(width float32) *Scope {
	return ui.push("ItemWidth", func() { ui.backend.PushItemWidth(width) }, ui.backend.PopItemWidth)
}

// TextWrapPos runs the body with text wrapping at the given X position in
// window coordinates. Zero wraps at the end of the window.
func (ui *UI) TextWrapPos(wrapX float32) func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(func() { ui.backend.PushTextWrapPos(wrapX) }, ui.backend.PopTextWrapPos)
		return ui.run("TextWrapPos", s, body)
	}
}

// SetTextWrapPos sets the wrap position until the returned Scope ends.
func (ui *UI) SetTextWrapPos(wrapX float32) *Scope {
	return ui.push("TextWrapPos", func() { ui.backend.PushTextWrapPos(wrapX) }, ui.backend.PopTextWrapPos)
}

// ID runs the body with the given string pushed onto the ID stack, keeping
// widget IDs unique across repeated labels (list rows, loops).
//
// Usage:
//
//	for _, save := range saves {
//	    ui.ID(save.Slot)(func() {
//	        // widgets named "Load", "Delete", ... per row
//	    })
//	}
func (ui *UI) ID(id string) func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(func() { ui.backend.PushID(id) }, ui.backend.PopID)
		return ui.run("ID", s, body)
	}
}

// SetID pushes a string ID until the returned Scope ends.
func (ui *UI) SetID(id string) *Scope {
	return ui.push("ID", func() { ui.backend.PushID(id) }, ui.backend.PopID)
}

// IDInt is ID for integer keys, typically loop indices.
func (ui *UI) IDInt(id int) func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(func() { ui.backend.PushIDInt(id) }, ui.backend.PopID)
		return ui.run("IDInt", s, body)
	}
}

// SetIDInt pushes an integer ID until the returned Scope ends.
func (ui *UI) SetIDInt(id int) *Scope {
	return ui.push("IDInt", func() { ui.backend.PushIDInt(id) }, ui.backend.PopID)
}

// ClipRect runs the body with drawing clipped to the given rectangle.
// When intersect is true the rectangle is intersected with the current
// clip rectangle instead of replacing it.
func (ui *UI) ClipRect(min, max Vec2, intersect bool) func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(func() { ui.backend.PushClipRect(min, max, intersect) }, ui.backend.PopClipRect)
		return ui.run("ClipRect", s, body)
	}
}

// SetClipRect clips drawing until the returned Scope ends.
func (ui *UI) SetClipRect(min, max Vec2, intersect bool) *Scope {
	return ui.push("ClipRect", func() { ui.backend.PushClipRect(min, max, intersect) }, ui.backend.PopClipRect)
}

// TextureID runs the body with the given texture bound for draw commands.
func (ui *UI) TextureID(tex TextureID) func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(func() { ui.backend.PushTextureID(tex) }, ui.backend.PopTextureID)
		return ui.run("TextureID", s, body)
	}
}

// SetTextureID binds a texture until the returned Scope ends.
func (ui *UI) SetTextureID(tex TextureID) *Scope {
	return ui.push("TextureID", func() { ui.backend.PushTextureID(tex) }, ui.backend.PopTextureID)
}
