package sugar

// StyleColorID identifies one themable color slot in the wrapped library's
// style. Values match the library's own ordering, so backends can convert
// numerically.
type StyleColorID int

const (
	StyleColorText                  StyleColorID = iota // 0
	StyleColorTextDisabled                              // 1
	StyleColorWindowBg                                  // 2
	StyleColorChildBg                                   // 3
	StyleColorPopupBg                                   // 4
	StyleColorBorder                                    // 5
	StyleColorBorderShadow                              // 6
	StyleColorFrameBg                                   // 7
	StyleColorFrameBgHovered                            // 8
	StyleColorFrameBgActive                             // 9
	StyleColorTitleBg                                   // 10
	StyleColorTitleBgActive                             // 11
	StyleColorTitleBgCollapsed                          // 12
	StyleColorMenuBarBg                                 // 13
	StyleColorScrollbarBg                               // 14
	StyleColorScrollbarGrab                             // 15
	StyleColorScrollbarGrabHovered                      // 16
	StyleColorScrollbarGrabActive                       // 17
	StyleColorCheckMark                                 // 18
	StyleColorSliderGrab                                // 19
	StyleColorSliderGrabActive                          // 20
	StyleColorButton                                    // 21
	StyleColorButtonHovered                             // 22
	StyleColorButtonActive                              // 23
	StyleColorHeader                                    // 24
	StyleColorHeaderHovered                             // 25
	StyleColorHeaderActive                              // 26
	StyleColorSeparator                                 // 27
	StyleColorSeparatorHovered                          // 28
	StyleColorSeparatorActive                           // 29
	StyleColorResizeGrip                                // 30
	StyleColorResizeGripHovered                         // 31
	StyleColorResizeGripActive                          // 32
	StyleColorTab                                       // 33
	StyleColorTabHovered                                // 34
	StyleColorTabActive                                 // 35
	StyleColorTabUnfocused                              // 36
	StyleColorTabUnfocusedActive                        // 37
	StyleColorPlotLines                                 // 38
	StyleColorPlotLinesHovered                          // 39
	StyleColorPlotHistogram                             // 40
	StyleColorPlotHistogramHovered                      // 41
	StyleColorTableHeaderBg                             // 42
	StyleColorTableBorderStrong                         // 43
	StyleColorTableBorderLight                          // 44
	StyleColorTableRowBg                                // 45
	StyleColorTableRowBgAlt                             // 46
	StyleColorTextSelectedBg                            // 47
	StyleColorDragDropTarget                            // 48
	StyleColorNavHighlight                              // 49
	StyleColorNavWindowingHighlight                     // 50
	StyleColorNavWindowingDimBg                         // 51
	StyleColorModalWindowDimBg                          // 52
)

// StyleVarID identifies one numeric style setting. As with StyleColorID,
// values match the wrapped library's ordering.
type StyleVarID int

const (
	StyleVarAlpha               StyleVarID = iota // float
	StyleVarWindowPadding                         // Vec2
	StyleVarWindowRounding                        // float
	StyleVarWindowBorderSize                      // float
	StyleVarWindowMinSize                         // Vec2
	StyleVarWindowTitleAlign                      // Vec2
	StyleVarChildRounding                         // float
	StyleVarChildBorderSize                       // float
	StyleVarPopupRounding                         // float
	StyleVarPopupBorderSize                       // float
	StyleVarFramePadding                          // Vec2
	StyleVarFrameRounding                         // float
	StyleVarFrameBorderSize                       // float
	StyleVarItemSpacing                           // Vec2
	StyleVarItemInnerSpacing                      // Vec2
	StyleVarIndentSpacing                         // float
	StyleVarCellPadding                           // Vec2
	StyleVarScrollbarSize                         // float
	StyleVarScrollbarRounding                     // float
	StyleVarGrabMinSize                           // float
	StyleVarGrabRounding                          // float
	StyleVarTabRounding                           // float
	StyleVarButtonTextAlign                       // Vec2
	StyleVarSelectableTextAlign                   // Vec2
)

// StyleColor runs the body with one style color overridden. The pop is one
// entry deep; nest or chain calls to override several colors.
//
// Usage:
//
//	ui.StyleColor(sugar.StyleColorText, sugar.Vec4{X: 1, W: 1})(func() {
//	    // red text
//	})
func (ui *UI) StyleColor(id StyleColorID, color Vec4) func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(func() { ui.backend.PushStyleColor(id, color) }, ui.popStyleColor)
		return ui.run("StyleColor", s, body)
	}
}

// StyleColorU32 is StyleColor for packed 0xAABBGGRR colors, as produced by
// RGBA and RGBAf.
func (ui *UI) StyleColorU32(id StyleColorID, color uint32) func(func()) bool {
	return ui.StyleColor(id, ColorVec4(color))
}

// SetStyleColor overrides one style color until the returned Scope ends.
func (ui *UI) SetStyleColor(id StyleColorID, color Vec4) *Scope {
	return ui.push("StyleColor", func() { ui.backend.PushStyleColor(id, color) }, ui.popStyleColor)
}

// SetStyleColorU32 is SetStyleColor for packed colors.
func (ui *UI) SetStyleColorU32(id StyleColorID, color uint32) *Scope {
	return ui.SetStyleColor(id, ColorVec4(color))
}

// StyleVar runs the body with one float style setting overridden. Use
// StyleVarVec2 for the Vec2-valued settings; the StyleVarID constants note
// which type each setting takes.
func (ui *UI) StyleVar(id StyleVarID, value float32) func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(func() { ui.backend.PushStyleVarFloat(id, value) }, ui.popStyleVar)
		return ui.run("StyleVar", s, body)
	}
}

// StyleVarVec2 runs the body with one Vec2 style setting overridden.
func (ui *UI) StyleVarVec2(id StyleVarID, value Vec2) func(func()) bool {
	return func(body func()) bool {
		s := ScopeEnter(func() { ui.backend.PushStyleVarVec2(id, value) }, ui.popStyleVar)
		return ui.run("StyleVarVec2", s, body)
	}
}

// SetStyleVar overrides one float style setting until the returned Scope
// ends.
func (ui *UI) SetStyleVar(id StyleVarID, value float32) *Scope {
	return ui.push("StyleVar", func() { ui.backend.PushStyleVarFloat(id, value) }, ui.popStyleVar)
}

// SetStyleVarVec2 overrides one Vec2 style setting until the returned Scope
// ends.
func (ui *UI) SetStyleVarVec2(id StyleVarID, value Vec2) *Scope {
	return ui.push("StyleVarVec2", func() { ui.backend.PushStyleVarVec2(id, value) }, ui.popStyleVar)
}

// popStyleColor and popStyleVar adapt the wrapped library's counted pops to
// the zero-argument form the scopes need, one entry at a time.
func (ui *UI) popStyleColor() { ui.backend.PopStyleColor(1) }
func (ui *UI) popStyleVar()   { ui.backend.PopStyleVar(1) }
