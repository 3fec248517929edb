/*
Package sugar wraps an immediate-mode GUI backend's paired begin/end and
push/pop calls into scope guards, so every section and stack entry is closed
exactly once, automatically, on every exit path.

# Overview

Immediate-mode GUIs pair almost every structural call: Begin with End,
PushStyleColor with PopStyleColor, TreeNode with TreePop. Forgetting one
close corrupts the library's internal stacks and usually asserts several
frames later, far from the bug. The rules are also uneven: windows must be
ended even when collapsed, popups must be ended only when open, pushes must
always be popped.

This package encodes those rules once. Each paired operation becomes a
method on UI that either takes the section body as a callback (closing when
the callback returns, panics included), or returns a Scope for the caller
to defer. Which close policy applies is baked into each method, so call
sites cannot get it wrong.

# Quick Start

	// Setup
	ui := sugar.New(imguibackend.New())

	// Each frame
	ui.Window("Trainer", sugar.Open(&visible))(func() {
	    ui.TabBar("pages")(func() {
	        ui.TabItem("Vehicles")(func() {
	            // widgets via the wrapped binding
	        })
	        ui.TabItem("Weather")(func() {
	            // ...
	        })
	    })
	})

The body callback only runs when the section is actually open, mirroring the
boolean that the wrapped library's begin call returns. The section methods
return that boolean for callers that need it.

# Sections And Their Close Policies

Conditionally closed (the close call fires only when the section opened):

	Combo         ListBox        MenuBar          MainMenuBar
	Menu          Popup          PopupModal       PopupContextItem
	PopupContextWindow           PopupContextVoid
	Table         TabBar         TabItem
	DragDropSource               DragDropTarget   TreeNode

Always closed (the close call fires even when the body was skipped):

	Window        Child          ChildFrame

Always closed, cannot fail to open (body always runs):

	Group         Tooltip        Font             AllowKeyboardFocus
	ButtonRepeat  ItemWidth      TextWrapPos      ID / IDInt
	ClipRect      TextureID      StyleColor / StyleColorU32
	StyleVar / StyleVarVec2

CollapsingHeader is the one passthrough: it has no close call in the
wrapped library, so it returns a plain bool.

# Two Call Shapes

Self-scoped: the method returns func(body func()) bool. The section spans
exactly the body callback.

	ui.StyleColor(sugar.StyleColorText, warningYellow)(func() {
	    // yellow text
	})

Parent-scoped: the Set methods push immediately and return a *Scope; the
push spans the remainder of the enclosing block via defer.

	func drawSidebar(ui *sugar.UI) {
	    defer ui.SetItemWidth(-1).End()
	    defer ui.SetStyleVar(sugar.StyleVarFrameRounding, 4).End()
	    // everything below uses both overrides
	}

Scope.End is idempotent, so an early explicit End together with the defer
still closes once. Scopes can also be built directly with ScopeIf,
ScopeAlways, and ScopeEnter when wrapping calls this package doesn't cover.

# Options

Per-call arguments beyond the required ones travel as functional options:

	ui.Child("log", sugar.WithSize(sugar.Vec2{Y: 200}), sugar.Bordered())(func() {
	    // ...
	})

Open(&b) attaches a close button to windows, modals, and tab items.
WithOpt/GetOpt accept custom typed keys for wrappers built on top of this
package.

# Backends

UI talks to the wrapped library through the Backend interface, which lists
every begin/end and push/pop pair this package guards. backend/imguibackend
adapts github.com/inkyblackness/imgui-go/v4 with a GLFW platform and an
OpenGL renderer for the emitted draw data. Calls outside the guarded surface
(widgets, queries, OpenPopup) go straight to the binding or through
ui.Backend().

A recording fake of the interface is all tests need; no GUI context has to
exist.

# Verbose Logging

SetVerbose(true) logs every scope enter/exit and stack push at Debug level
with nesting depth, which makes stack imbalance reported by the wrapped
library easy to localize. WithLogger redirects the output. The logging is
per-frame, so keep it off outside debugging sessions.

# Threading

Like the wrapped library, a UI must only be used from the thread that owns
the GUI frame. Nothing here locks, blocks, or suspends.
*/
package sugar
