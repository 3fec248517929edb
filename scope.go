package sugar

// Scope guards one begin/end pair of GUI calls. It records whether the begin
// call reported the section as open (`active`), holds the matching end call,
// and guarantees that the end call runs exactly once when the scope closes,
// no matter how the guarded code exits.
//
// A Scope is closed either explicitly (usually via defer):
//
//	s := ui.SetItemWidth(120)
//	defer s.End()
//
// or implicitly through Then, which runs a body callback and closes the
// scope afterwards even if the body panics:
//
//	ScopeIf(backend.BeginMenu("File", true), backend.EndMenu).Then(func() {
//	    // menu items
//	})
type Scope struct {
	active bool
	always bool
	end    func()
	done   bool
}

// ScopeIf wraps an already-evaluated begin result whose end call is required
// only when the section actually opened. This matches GUI pairs like
// BeginPopup/EndPopup, where calling the end without a successful begin is an
// error in the wrapped library.
func ScopeIf(active bool, end func()) *Scope {
	return &Scope{active: active, end: end}
}

// ScopeAlways wraps an already-evaluated begin result whose end call is
// required unconditionally. This matches pairs like Begin/End on windows,
// where the end must run even when the window is collapsed and the begin
// returned false.
func ScopeAlways(active bool, end func()) *Scope {
	return &Scope{active: active, always: true, end: end}
}

// ScopeEnter invokes a void begin call immediately and pairs it with an
// unconditional end call. Push/pop pairs (styles, fonts, IDs) have no notion
// of failing to open, so the scope always reports active.
func ScopeEnter(begin, end func()) *Scope {
	if begin != nil {
		begin()
	}
	return &Scope{active: true, always: true, end: end}
}

// Active reports whether the guarded section opened, i.e. whether its body
// should run. Always true for scopes created by ScopeEnter.
func (s *Scope) Active() bool {
	return s.active
}

// End closes the scope, invoking the end call if the policy requires it.
// Repeated calls are no-ops, so End is safe to defer and also call early.
func (s *Scope) End() {
	if s.done {
		return
	}
	s.done = true
	if (s.always || s.active) && s.end != nil {
		s.end()
	}
}

// Then runs body if the scope is active, then closes the scope. The close is
// deferred, so it happens on every exit path out of body, including panics.
// Returns whether the body ran.
func (s *Scope) Then(body func()) bool {
	defer s.End()
	if s.active && body != nil {
		body()
	}
	return s.active
}
