package vardump

// Depth bounds for the recursive renderer.
const (
	DefaultMaxDepth = 10
	MinMaxDepth     = 1
	MaxMaxDepth     = 50
)

// DefaultStyle is the CSS applied to the HTML container when no style is
// configured.
const DefaultStyle = "text-align: left; background-color: #fcfcfc; color: #222"

// Option configures a dump.
type Option func(*Options)

// Options holds all configuration for a dump.
type Options struct {
	MaxDepth int
	Style    string
	Format   Format
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		MaxDepth: DefaultMaxDepth,
		Style:    DefaultStyle,
		Format:   HTML,
	}
}

// normalize clamps and defaults out-of-range values so the renderer never
// sees invalid configuration.
func (o *Options) normalize() {
	if o.MaxDepth < MinMaxDepth {
		o.MaxDepth = MinMaxDepth
	}
	if o.MaxDepth > MaxMaxDepth {
		o.MaxDepth = MaxMaxDepth
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Format != Text {
		o.Format = HTML
	}
}

// WithMaxDepth sets the maximum nesting depth. Values outside
// [MinMaxDepth, MaxMaxDepth] are clamped.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithStyle sets the CSS declarations carried by the HTML container.
// The style is HTML-escaped on output.
func WithStyle(css string) Option {
	return func(o *Options) { o.Style = css }
}

// WithFormat selects the output format.
func WithFormat(f Format) Option {
	return func(o *Options) { o.Format = f }
}
