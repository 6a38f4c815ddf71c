// Package config holds the process-wide knobs of the expression engine.
//
// Everything is read from the environment the first time Load is called,
// and again after Reset. Nothing here is required: the zero-configuration
// behaviour picks the best backend for the CPU and lets the cost model
// choose unrolling.
package config

import (
	"strings"
	"sync"

	"github.com/xyproto/env/v2"
)

// Environment variable names.
const (
	EnvBackend     = "ALGO_EXPR_BACKEND"
	EnvNoSIMD      = "ALGO_EXPR_NO_SIMD"
	EnvUnroll      = "ALGO_EXPR_UNROLL"
	EnvStream      = "ALGO_EXPR_STREAM"
	EnvDebug       = "ALGO_EXPR_DEBUG"
	EnvLogLevel    = "ALGO_EXPR_LOG_LEVEL"
	EnvMaxElements = "ALGO_EXPR_MAX_ELEMENTS"
)

// Config is a snapshot of the engine settings.
type Config struct {
	// Backend forces a registered instruction-set backend by name.
	// Empty selects the best one for the detected CPU.
	Backend string

	// NoSIMD restricts selection to the generic width-1 backend.
	NoSIMD bool

	// Unroll forces the number of evaluator slots. Zero lets the cost
	// model decide.
	Unroll int

	// Stream routes stores through the non-temporal store primitive.
	Stream bool

	// Debug validates operand lengths before every execution.
	Debug bool

	// LogLevel is a logrus level name.
	LogLevel string

	// MaxElements caps runtime-sized array allocations. Zero means no cap
	// beyond address-space overflow.
	MaxElements int
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{
		LogLevel: "warn",
	}
}

// FromEnv reads a fresh Config from the environment.
func FromEnv() Config {
	c := Default()
	c.Backend = strings.ToLower(strings.TrimSpace(env.Str(EnvBackend)))
	c.NoSIMD = env.Bool(EnvNoSIMD)
	c.Unroll = env.Int(EnvUnroll, 0)
	c.Stream = env.Bool(EnvStream)
	c.Debug = env.Bool(EnvDebug)
	c.LogLevel = env.Str(EnvLogLevel, c.LogLevel)
	c.MaxElements = env.Int(EnvMaxElements, 0)
	if c.Unroll < 0 {
		c.Unroll = 0
	}
	if c.MaxElements < 0 {
		c.MaxElements = 0
	}
	return c
}

var (
	mu       sync.RWMutex
	loaded   *Config
	override *Config
)

// Load returns the process configuration, reading the environment on the
// first call. Safe for concurrent use with Set and Reset.
func Load() Config {
	mu.RLock()
	c := override
	if c == nil {
		c = loaded
	}
	mu.RUnlock()
	if c != nil {
		return *c
	}

	mu.Lock()
	defer mu.Unlock()
	if override != nil {
		return *override
	}
	if loaded == nil {
		fresh := FromEnv()
		loaded = &fresh
	}
	return *loaded
}

// Set replaces the configuration returned by Load until Reset. Intended for
// tests and for the CLI, which layers flags on top of the environment.
func Set(c Config) {
	mu.Lock()
	defer mu.Unlock()
	cc := c
	override = &cc
}

// Reset drops any Set override and forces the environment to be read again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	override = nil
	loaded = nil
}
