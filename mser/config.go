package mser

// Config configures MSER extraction. Use DefaultConfig() as a starting
// point and layer Option functions on top, the same Options/Option/
// DefaultOptions idiom this ecosystem's traversal and MST packages use.
type Config struct {
	// Inverted extracts bright-on-dark regions instead of dark-on-bright by
	// swapping the parser's ordering and sentinels (see cmptree.WithInverted).
	Inverted bool

	// MinArea is the minimum pixel count a region must have to be reported.
	MinArea int64

	// MaxArea is the maximum pixel count a region may have to be reported.
	MaxArea int64

	// Delta is the level gap used for the stability computation; must be
	// in [1, 255].
	Delta int64

	// MinStability is the stability floor a region must clear to be
	// reported.
	MinStability float64
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns the specification's default thresholds:
// MinArea=200, MaxArea=14400, Delta=5, MinStability=20.0, Inverted=false.
func DefaultConfig() Config {
	return Config{
		Inverted:     false,
		MinArea:      200,
		MaxArea:      14400,
		Delta:        5,
		MinStability: 20.0,
	}
}

// WithInverted toggles bright-on-dark extraction.
func WithInverted(inverted bool) Option {
	return func(c *Config) {
		c.Inverted = inverted
	}
}

// WithMinArea sets the minimum reportable region area.
func WithMinArea(n int64) Option {
	return func(c *Config) {
		c.MinArea = n
	}
}

// WithMaxArea sets the maximum reportable region area.
func WithMaxArea(n int64) Option {
	return func(c *Config) {
		c.MaxArea = n
	}
}

// WithDelta sets the level gap used for the stability computation.
func WithDelta(delta int64) Option {
	return func(c *Config) {
		c.Delta = delta
	}
}

// WithMinStability sets the stability floor.
func WithMinStability(min float64) Option {
	return func(c *Config) {
		c.MinStability = min
	}
}

// validate rejects a delta outside [1, 255], an inverted min/max area range,
// or a negative stability floor before the parser ever runs.
func (c Config) validate() error {
	if c.Delta < 1 || c.Delta > 255 {
		return ErrInvalidDelta
	}
	if c.MinArea > c.MaxArea {
		return ErrInvalidAreaRange
	}
	if c.MinStability < 0 {
		return ErrInvalidStability
	}

	return nil
}
