package sugar

// Option configures a single guarded call.
type Option func(*options)

// options holds per-call configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for call options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = sugar.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	ui.Window("Tools", sugar.WithOpt(OptCustomThing, value))
//
//	// Read in a custom wrapper
//	value := sugar.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to build custom wrappers.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// --- Shared ---
var (
	OptOpen    = NewOptKey[*bool]("open", nil)
	OptSize    = NewOptKey("size", Vec2{})
	OptBorder  = NewOptKey("border", false)
	OptEnabled = NewOptKey("enabled", true)
)

// --- Popup Options ---
var (
	OptContextID  = NewOptKey("contextID", "")
	OptPopupFlags = NewOptKey("popupFlags", PopupFlagsNone)
)

// --- Table Options ---
var (
	OptOuterSize  = NewOptKey("outerSize", Vec2{})
	OptInnerWidth = NewOptKey[float32]("innerWidth", 0)
	OptTableFlags = NewOptKey("tableFlags", TableFlagsNone)
)

// --- Per-family Flags ---
var (
	OptWindowFlags   = NewOptKey("windowFlags", WindowFlagsNone)
	OptComboFlags    = NewOptKey("comboFlags", ComboFlagsNone)
	OptTabBarFlags   = NewOptKey("tabBarFlags", TabBarFlagsNone)
	OptTabItemFlags  = NewOptKey("tabItemFlags", TabItemFlagsNone)
	OptTreeNodeFlags = NewOptKey("treeNodeFlags", TreeNodeFlagsNone)
	OptDragDropFlags = NewOptKey("dragDropFlags", DragDropFlagsNone)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// Open binds a section's open state to an external boolean variable. Windows,
// modal popups, and tab items show a close button that writes through the
// pointer; the caller stops submitting the section once it reads false.
//
// Usage:
//
//	ui.Window("Stats", sugar.Open(&p.statsVisible))(func() {
//	    // content
//	})
func Open(ptr *bool) Option { return WithOpt(OptOpen, ptr) }

// WithSize sets an explicit region size. Zero components auto-size.
func WithSize(size Vec2) Option { return WithOpt(OptSize, size) }

// Bordered draws a border around a child region.
func Bordered() Option { return WithOpt(OptBorder, true) }

// Enabled controls whether a menu can be opened. Disabled menus render
// grayed out.
func Enabled(enabled bool) Option { return WithOpt(OptEnabled, enabled) }

// WithContextID sets an explicit ID for context popups that would otherwise
// derive one from the clicked item or window.
func WithContextID(id string) Option { return WithOpt(OptContextID, id) }

// WithOuterSize sets the outer size of a table.
func WithOuterSize(size Vec2) Option { return WithOpt(OptOuterSize, size) }

// WithInnerWidth sets the inner content width of a horizontally scrolling
// table.
func WithInnerWidth(width float32) Option { return WithOpt(OptInnerWidth, width) }

// WithWindowFlags sets flags for windows and child regions.
func WithWindowFlags(flags WindowFlags) Option { return WithOpt(OptWindowFlags, flags) }

// WithComboFlags sets flags for combo boxes.
func WithComboFlags(flags ComboFlags) Option { return WithOpt(OptComboFlags, flags) }

// WithPopupFlags sets flags for popups, including which mouse button opens
// context popups.
func WithPopupFlags(flags PopupFlags) Option { return WithOpt(OptPopupFlags, flags) }

// WithTableFlags sets flags for tables.
func WithTableFlags(flags TableFlags) Option { return WithOpt(OptTableFlags, flags) }

// WithTabBarFlags sets flags for tab bars.
func WithTabBarFlags(flags TabBarFlags) Option { return WithOpt(OptTabBarFlags, flags) }

// WithTabItemFlags sets flags for tab items.
func WithTabItemFlags(flags TabItemFlags) Option { return WithOpt(OptTabItemFlags, flags) }

// WithTreeNodeFlags sets flags for tree nodes and collapsing headers.
func WithTreeNodeFlags(flags TreeNodeFlags) Option { return WithOpt(OptTreeNodeFlags, flags) }

// WithDragDropFlags sets flags for drag sources.
func WithDragDropFlags(flags DragDropFlags) Option { return WithOpt(OptDragDropFlags, flags) }
