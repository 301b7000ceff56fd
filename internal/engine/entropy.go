package engine

import "math"

// Strength is the discrete tier a secret's entropy estimate falls into.
type Strength int

const (
	StrengthWeak Strength = iota
	StrengthGood
	StrengthVeryStrong
)

// Tier thresholds in bits. These are fixed, documented constants shared with
// UI strength labels; tests pin them exactly.
const (
	goodThresholdBits       = 60
	veryStrongThresholdBits = 120

	// ProgressCeilingBits is the normalization ceiling for strength meters.
	// Only the displayed percentage is clamped; raw bit values never are.
	ProgressCeilingBits = 128
)

func (s Strength) String() string {
	switch s {
	case StrengthGood:
		return "good"
	case StrengthVeryStrong:
		return "very_strong"
	default:
		return "weak"
	}
}

// Score estimates entropy in bits for a secret of `count` independent
// uniform draws from a sample space of `sampleSpaceSize` alternatives:
// floor(count * log2(size)). The sample space is the character pool in
// password mode and the word list in passphrase mode.
//
// A non-positive sample space scores as zero bits and Weak rather than
// erroring: it represents a valid degenerate preview state (all classes
// toggled off), distinct from the hard ErrEmptyPool on attempted generation.
func Score(sampleSpaceSize, count int) (float64, Strength) {
	if sampleSpaceSize <= 0 || count <= 0 {
		return 0, StrengthWeak
	}
	bits := math.Floor(float64(count) * math.Log2(float64(sampleSpaceSize)))
	return bits, tierFor(bits)
}

func tierFor(bits float64) Strength {
	switch {
	case bits >= veryStrongThresholdBits:
		return StrengthVeryStrong
	case bits >= goodThresholdBits:
		return StrengthGood
	default:
		return StrengthWeak
	}
}

// ProgressPercent maps raw bits onto a 0–100 meter against the 128-bit
// ceiling. Values above the ceiling display as 100%.
func ProgressPercent(bits float64) float64 {
	p := bits / ProgressCeilingBits * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
