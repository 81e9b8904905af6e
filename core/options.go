package core

// Supported fan-out values. K must be one of these; New panics on any
// other value.
const (
	FanOut2  = 2
	FanOut4  = 4
	FanOut8  = 8
	FanOut16 = 16
	FanOut32 = 32
)

const (
	defaultInitialLeafCapacity = 4096
	defaultInitialTreeDepth    = 8
)

// Config holds the tunable construction parameters of a Tree.
type Config struct {
	// InitialLeafCapacity hints the starting size of the leaf record
	// array and bounds the per-level node arena sizes computed at
	// construction (min(InitialLeafCapacity, K^depth)).
	InitialLeafCapacity int

	// InitialTreeDepth is the number of levels preallocated when the
	// tree is built, before any insertion forces growth beyond it.
	InitialTreeDepth int
}

// Option customizes a Config. Option constructors validate their
// argument and panic immediately on a meaningless value rather than
// deferring the failure to construction time.
type Option func(*Config)

// WithInitialLeafCapacity overrides the default leaf capacity hint (4096).
// Panics if n is not positive.
func WithInitialLeafCapacity(n int) Option {
	if n <= 0 {
		panic("core: WithInitialLeafCapacity requires a positive capacity")
	}
	return func(c *Config) { c.InitialLeafCapacity = n }
}

// WithInitialTreeDepth overrides the default preallocated depth (8).
// Panics if n is not positive.
func WithInitialTreeDepth(n int) Option {
	if n <= 0 {
		panic("core: WithInitialTreeDepth requires a positive depth")
	}
	return func(c *Config) { c.InitialTreeDepth = n }
}

func newConfig(opts ...Option) Config {
	cfg := Config{
		InitialLeafCapacity: defaultInitialLeafCapacity,
		InitialTreeDepth:    defaultInitialTreeDepth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
