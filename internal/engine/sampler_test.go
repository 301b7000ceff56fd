package engine

import (
	"bytes"
	"math"
	"testing"
)

func TestSampleRejectsNonPositiveSize(t *testing.T) {
	s := NewSampler()
	for _, n := range []int{0, -1, -96} {
		if _, err := s.Sample(n); err == nil {
			t.Errorf("Sample(%d) expected error", n)
		}
	}
}

func TestSampleSizeOne(t *testing.T) {
	s := NewSampler()
	for i := 0; i < 10; i++ {
		idx, err := s.Sample(1)
		if err != nil {
			t.Fatalf("Sample(1) unexpected error: %v", err)
		}
		if idx != 0 {
			t.Fatalf("Sample(1) = %d, want 0", idx)
		}
	}
}

func TestSampleInRange(t *testing.T) {
	s := NewSampler()
	for n := 1; n <= 96; n++ {
		for i := 0; i < 100; i++ {
			idx, err := s.Sample(n)
			if err != nil {
				t.Fatalf("Sample(%d) unexpected error: %v", n, err)
			}
			if idx < 0 || idx >= n {
				t.Fatalf("Sample(%d) = %d, out of range", n, idx)
			}
		}
	}
}

// chiSquared computes the statistic for observed index counts against a
// uniform expectation.
func chiSquared(counts []int, draws int) float64 {
	expected := float64(draws) / float64(len(counts))
	var stat float64
	for _, c := range counts {
		d := float64(c) - expected
		stat += d * d / expected
	}
	return stat
}

// chiSquaredBound is a generous upper bound on the chi-squared statistic for
// df degrees of freedom, well past the 99.9th percentile, so the test only
// fails on real bias rather than statistical noise.
func chiSquaredBound(df int) float64 {
	return float64(df) + 4*math.Sqrt(2*float64(df)) + 10
}

func TestSampleUniformityAcrossPoolSizes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping uniformity sweep in short mode")
	}

	s := NewSampler()
	const draws = 20000

	for n := 2; n <= 96; n++ {
		counts := make([]int, n)
		for i := 0; i < draws; i++ {
			idx, err := s.Sample(n)
			if err != nil {
				t.Fatalf("Sample(%d) unexpected error: %v", n, err)
			}
			counts[idx]++
		}
		if stat := chiSquared(counts, draws); stat > chiSquaredBound(n-1) {
			t.Errorf("pool size %d: chi-squared %.1f exceeds bound %.1f",
				n, stat, chiSquaredBound(n-1))
		}
	}
}

// Pool sizes 62 and 70 do not divide 2^32 evenly, so a naive modulo
// reduction would skew low indices. Hammer them with a larger sample.
func TestSampleUniformityNonPowerOfTwo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping uniformity test in short mode")
	}

	s := NewSampler()
	const draws = 100000

	for _, n := range []int{62, 70} {
		counts := make([]int, n)
		for i := 0; i < draws; i++ {
			idx, err := s.Sample(n)
			if err != nil {
				t.Fatalf("Sample(%d) unexpected error: %v", n, err)
			}
			counts[idx]++
		}
		if stat := chiSquared(counts, draws); stat > chiSquaredBound(n-1) {
			t.Errorf("pool size %d: chi-squared %.1f exceeds bound %.1f",
				n, stat, chiSquaredBound(n-1))
		}
	}
}

// TestSampleRejectionRedraws feeds the sampler a scripted byte stream whose
// first 32-bit draw falls in the rejection zone for n=96 (the top 64 values
// of the 32-bit range) and checks that it discards it and redraws instead of
// folding it into a biased index.
func TestSampleRejectionRedraws(t *testing.T) {
	src := bytes.NewReader([]byte{
		0xFF, 0xFF, 0xFF, 0xFF, // 4294967295: rejected for n=96
		0x00, 0x00, 0x00, 0x05, // 5: accepted
	})
	s := &cryptoSampler{src: src}

	idx, err := s.Sample(96)
	if err != nil {
		t.Fatalf("Sample(96) unexpected error: %v", err)
	}
	if idx != 5 {
		t.Errorf("Sample(96) = %d, want 5 (rejected draw should be discarded)", idx)
	}
	if src.Len() != 0 {
		t.Errorf("expected both draws consumed, %d bytes left", src.Len())
	}
}

func TestSampleSourceFailurePropagates(t *testing.T) {
	s := &cryptoSampler{src: bytes.NewReader(nil)}
	if _, err := s.Sample(96); err == nil {
		t.Error("Sample() expected error when the random source fails")
	}
}
