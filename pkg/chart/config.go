package chart

// Config holds the live rendering parameters that new figures and artists
// read their defaults from.
//
// A Config is plain mutable state with no locking. Give each goroutine its own
// Config, or serialize access to a shared one.
type Config struct {
	params Params
}

// NewConfig returns a Config initialized with [Defaults].
func NewConfig() *Config {
	return &Config{params: Defaults()}
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (any, bool) {
	v, ok := c.params[key]
	return v, ok
}

// Set stores a single parameter.
func (c *Config) Set(key string, value any) {
	if c.params == nil {
		c.params = Params{}
	}
	c.params[key] = value
}

// Update overlays p onto the current parameters. Keys absent from p keep
// their current value.
func (c *Config) Update(p Params) {
	if c.params == nil {
		c.params = Params{}
	}
	for k, v := range p {
		c.params[k] = cloneValue(v)
	}
}

// Use resets the configuration to [Defaults] and then overlays p.
// Use(nil) activates the plain default style.
func (c *Config) Use(p Params) {
	c.params = Defaults()
	c.Update(p)
}

// Snapshot returns a deep copy of the current parameters.
func (c *Config) Snapshot() Params {
	return c.params.Clone()
}

// Restore replaces the current parameters with p verbatim. Keys added since
// p was captured are discarded.
func (c *Config) Restore(p Params) {
	c.params = p.Clone()
}

func (c *Config) Float(key string) float64 { return c.params.Float(key) }
func (c *Config) String(key string) string { return c.params.String(key) }
func (c *Config) Bool(key string) bool     { return c.params.Bool(key) }
