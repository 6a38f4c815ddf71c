// Package cpu reports which vector extensions the evaluator may target.
//
// The expression engine never asks the hardware directly. It asks this
// package for a Features value once, hands it to the instruction-set
// registry, and lets the registry pick the widest model the processor can
// run. Tests swap the answer with SetForcedFeatures to exercise every
// backend on any machine.
package cpu

import (
	"sync"
)

// SIMDLevel names a vector extension tier. Values are ordered within an
// architecture family only; AVX2 and NEON are not comparable.
type SIMDLevel int

const (
	// SIMDNone runs the pure Go width-1 model.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the amd64 baseline, 128-bit registers.
	SIMDSSE2

	// SIMDAVX adds 256-bit floating point registers.
	SIMDAVX

	// SIMDAVX2 is AVX plus the integer and FMA extensions used by the
	// algo-vecmath kernels.
	SIMDAVX2

	// SIMDAVX512 has 512-bit registers and a 32 entry register file.
	SIMDAVX512

	// SIMDNEON is ARM Advanced SIMD, 128-bit registers.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// RegisterBytes is the vector register width of the level in bytes.
// SIMDNone reports the width of a single float64.
func (s SIMDLevel) RegisterBytes() int {
	switch s {
	case SIMDSSE2, SIMDNEON:
		return 16
	case SIMDAVX, SIMDAVX2:
		return 32
	case SIMDAVX512:
		return 64
	default:
		return 8
	}
}

// Features describes the processor capabilities relevant to model selection.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	HasNEON bool

	// ForceGeneric restricts selection to SIMDNone models.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// Best returns the highest level the features allow on their architecture.
func (f Features) Best() SIMDLevel {
	switch {
	case f.ForceGeneric:
		return SIMDNone
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the features of the running processor. Detection
// runs once; later calls return the cached value. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures makes DetectFeatures return f until ResetDetection.
// Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection drops forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether a model built for level can run on features.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
