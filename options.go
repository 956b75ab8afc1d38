package propmods

// Default delimiters.
const (
	DefaultElementDelimiter  = "__"
	DefaultModDelimiter      = "_"
	DefaultModValueDelimiter = "_"
)

// Logger receives debug records about modifiers that were dropped.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
}

// Options configures a Block. It is copied into the block at construction and
// never changed afterwards.
type Options struct {
	// ElementDelimiter separates the block from an element ("__").
	ElementDelimiter string

	// ModDelimiter separates the base from a modifier token ("_").
	ModDelimiter string

	// ModValueDelimiter separates a modifier key from its value ("_").
	ModValueDelimiter string

	// TransformKeys is applied to the block name, element names, modifier
	// keys and string modifier values. Mixins are never transformed.
	// Nil means identity.
	TransformKeys func(string) string

	// Logger, if set, receives a debug record for every dropped modifier.
	Logger Logger
}

// DefaultOptions returns the default option set.
func DefaultOptions() Options {
	return Options{
		ElementDelimiter:  DefaultElementDelimiter,
		ModDelimiter:      DefaultModDelimiter,
		ModValueDelimiter: DefaultModValueDelimiter,
		TransformKeys:     identity,
	}
}

// Option modifies Options.
type Option func(*Options)

// WithElementDelimiter sets the block/element delimiter. An empty string
// joins them directly.
func WithElementDelimiter(d string) Option {
	return func(o *Options) { o.ElementDelimiter = d }
}

// WithModDelimiter sets the delimiter placed before a modifier token.
func WithModDelimiter(d string) Option {
	return func(o *Options) { o.ModDelimiter = d }
}

// WithModValueDelimiter sets the delimiter between a modifier key and value.
// It also takes part in modifier validation.
func WithModValueDelimiter(d string) Option {
	return func(o *Options) { o.ModValueDelimiter = d }
}

// WithTransformKeys sets the key transform, e.g. casing.Kebab.
func WithTransformKeys(fn func(string) string) Option {
	return func(o *Options) { o.TransformKeys = fn }
}

// WithCaseConversion is an alias for WithTransformKeys.
func WithCaseConversion(fn func(string) string) Option {
	return WithTransformKeys(fn)
}

// WithLogger sets a logger for dropped modifiers.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOptions replaces the whole option set. Options listed after it still
// apply on top.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.TransformKeys == nil {
		o.TransformKeys = identity
	}
	return o
}

func identity(s string) string { return s }
