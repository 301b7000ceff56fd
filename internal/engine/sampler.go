package engine

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// Sampler draws uniform indices from [0, n). Every secret-affecting draw in
// the engine goes through this interface; the production implementation is
// backed by the platform CSPRNG and there is deliberately no seedable
// implementation outside of test files.
type Sampler interface {
	Sample(n int) (int, error)
}

// cryptoSampler samples via rejection over 32-bit CSPRNG draws. A plain
// `random % n` skews toward low indices whenever n does not divide the
// source range; rejecting draws above the largest multiple of n keeps the
// reduction exact for every pool size, not just powers of two.
type cryptoSampler struct {
	src io.Reader
}

// NewSampler returns a Sampler backed by crypto/rand. It is safe for
// concurrent use.
func NewSampler() Sampler {
	return &cryptoSampler{src: rand.Reader}
}

func (s *cryptoSampler) Sample(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("sample: pool size must be positive, got %d", n)
	}
	if n == 1 {
		return 0, nil
	}

	// Largest multiple of n representable in 32 bits; draws at or above it
	// are discarded and redrawn.
	limit := (uint64(1) << 32) / uint64(n) * uint64(n)

	var buf [4]byte
	for {
		if _, err := io.ReadFull(s.src, buf[:]); err != nil {
			// CSPRNG failure is unrecoverable: never degrade to a
			// non-cryptographic source.
			return 0, fmt.Errorf("reading from CSPRNG: %w", err)
		}
		v := uint64(binary.BigEndian.Uint32(buf[:]))
		if v < limit {
			return int(v % uint64(n)), nil
		}
	}
}
