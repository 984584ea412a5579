package msgpckdump

// DefaultMaxDepth bounds recursion on adversarial nesting. A header
// byte per level means even pathological inputs hit the limit within
// the first few KiB.
const DefaultMaxDepth = 10000

// Config controls dump behavior
type Config struct {
	// MaxDepth is the maximum allowed nesting depth for arrays and maps
	MaxDepth int

	// ShowOffsets enables the absolute byte-offset column
	ShowOffsets bool
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxDepth: DefaultMaxDepth,
	}
}

// WithMaxDepth returns a new Config with the specified MaxDepth
func (c Config) WithMaxDepth(n int) Config {
	c.MaxDepth = n
	return c
}

// WithOffsets returns a new Config with offset reporting enabled or disabled
func (c Config) WithOffsets(on bool) Config {
	c.ShowOffsets = on
	return c
}
