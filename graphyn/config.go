package graphyn

// Config holds the mode-invariant design tokens written into the global theme.
// Values are passed through as given; nothing here validates them.
type Config struct {
	FontSans string  `json:"font_sans"`
	FontMono string  `json:"font_mono"`
	FontSize float64 `json:"font_size"` // logical pixels
	Radius   float64 `json:"radius"`    // base and large radius alike
	Shadow   bool    `json:"shadow"`
}

// DefaultConfig returns the Graphyn Mono design: Host Grotesk and Geist Mono at 16px,
// sharp corners and a flat, shadowless surface.
func DefaultConfig() Config {
	return Config{
		FontSans: "Host Grotesk",
		FontMono: "Geist Mono",
		FontSize: 16.0,
		Radius:   0.0,
		Shadow:   false,
	}
}

// Option replaces one field of a Config.
type Option func(*Config)

// NewConfig returns DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func WithFontSans(family string) Option { return func(c *Config) { c.FontSans = family } }

func WithFontMono(family string) Option { return func(c *Config) { c.FontMono = family } }

func WithFontSize(size float64) Option { return func(c *Config) { c.FontSize = size } }

func WithRadius(radius float64) Option { return func(c *Config) { c.Radius = radius } }

func WithShadow(enabled bool) Option { return func(c *Config) { c.Shadow = enabled } }
