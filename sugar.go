package sugar

import (
	"log/slog"
	"os"
)

// sugarLogLevel controls the log level for scope debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var sugarLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging of scope enters,
// exits, and stack pushes. Call this from main() after parsing flags.
// The output is per-frame, so leave it off outside debugging sessions.
func SetVerbose(v bool) {
	if v {
		sugarLogLevel.Set(slog.LevelDebug)
	} else {
		sugarLogLevel.Set(slog.LevelInfo)
	}
}

// sugarVerbose returns true if scope debug logging is enabled.
func sugarVerbose() bool {
	return sugarLogLevel.Level() <= slog.LevelDebug
}

// scopeLogger is the default logger for scope debugging.
var scopeLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: sugarLogLevel}))

// UI wraps a Backend with scope-guarded versions of its paired calls. Every
// section method returns a function taking the section body; the matching
// end call runs when that function returns, on every exit path. Every Set
// method pushes immediately and returns a Scope whose End the caller defers.
//
// A UI is not safe for concurrent use; like the wrapped library, all calls
// must happen on the thread that owns the GUI frame.
type UI struct {
	backend Backend
	logger  *slog.Logger
	depth   int
}

// UIOption configures a UI instance.
type UIOption func(*UI)

// WithLogger routes scope debug logging to a custom logger. SetVerbose
// still controls whether the debug records are emitted at all.
func WithLogger(l *slog.Logger) UIOption {
	return func(ui *UI) { ui.logger = l }
}

// New creates a UI over the given backend.
func New(backend Backend, opts ...UIOption) *UI {
	ui := &UI{
		backend: backend,
		logger:  scopeLogger,
	}

	for _, opt := range opts {
		opt(ui)
	}

	return ui
}

// Backend returns the wrapped backend, for the library calls that need no
// guarding (widgets, queries, popup triggers).
func (ui *UI) Backend() Backend {
	return ui.backend
}

// Depth returns the current guarded nesting depth. It is zero outside any
// guarded body. Parent-scoped Set pushes do not count; the UI cannot see
// the caller's block boundaries.
func (ui *UI) Depth() int {
	return ui.depth
}

// run executes one guarded section body: debug logging and depth tracking
// around Scope.Then. The depth decrement is deferred so a panicking body
// leaves the count consistent for recover-and-continue callers.
func (ui *UI) run(name string, s *Scope, body func()) bool {
	if sugarVerbose() {
		ui.logger.Debug("scope enter", "scope", name, "active", s.Active(), "depth", ui.depth)
	}
	ui.depth++
	defer func() {
		ui.depth--
		if sugarVerbose() {
			ui.logger.Debug("scope exit", "scope", name, "depth", ui.depth)
		}
	}()

	return s.Then(body)
}

// push opens one parent-scoped stack entry.
func (ui *UI) push(name string, begin, end func()) *Scope {
	if sugarVerbose() {
		ui.logger.Debug("stack push", "stack", name, "depth", ui.depth)
	}
	return ScopeEnter(begin, end)
}
