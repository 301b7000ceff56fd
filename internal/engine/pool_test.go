package engine

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuildPoolFixedOrder(t *testing.T) {
	pool, err := BuildPool(GenerationOptions{
		Uppercase: true, Lowercase: true, Digits: true, Symbols: true,
		Length: 16,
	})
	if err != nil {
		t.Fatalf("BuildPool() unexpected error: %v", err)
	}

	want := uppercaseChars + lowercaseChars + digitChars + symbolChars
	if string(pool) != want {
		t.Errorf("BuildPool() = %q, want classes concatenated in fixed order", pool)
	}
}

func TestBuildPoolDeterministic(t *testing.T) {
	opts := GenerationOptions{
		Uppercase: true, Digits: true, Symbols: true,
		ExcludeAmbiguous: true, ExcludeSimilar: true,
	}

	first, err := BuildPool(opts)
	if err != nil {
		t.Fatalf("BuildPool() unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := BuildPool(opts)
		if err != nil {
			t.Fatalf("BuildPool() unexpected error: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("BuildPool() not deterministic: %q vs %q", first, again)
		}
	}
}

func TestBuildPoolEmpty(t *testing.T) {
	_, err := BuildPool(GenerationOptions{Length: 16})
	if err != ErrEmptyPool {
		t.Errorf("BuildPool() with no classes: error = %v, want ErrEmptyPool", err)
	}
}

func TestBuildPoolNoDuplicates(t *testing.T) {
	pool, err := BuildPool(GenerationOptions{
		Uppercase: true, Lowercase: true, Digits: true, Symbols: true,
	})
	if err != nil {
		t.Fatalf("BuildPool() unexpected error: %v", err)
	}
	seen := make(map[byte]bool, len(pool))
	for _, c := range pool {
		if seen[c] {
			t.Errorf("duplicate character %q in pool", string(c))
		}
		seen[c] = true
	}
}

func TestBuildPoolExcludeAmbiguous(t *testing.T) {
	pool, err := BuildPool(GenerationOptions{
		Uppercase: true, Lowercase: true, Digits: true, Symbols: true,
		ExcludeAmbiguous: true,
	})
	if err != nil {
		t.Fatalf("BuildPool() unexpected error: %v", err)
	}

	for i := 0; i < len(ambiguousChars); i++ {
		if bytes.IndexByte(pool, ambiguousChars[i]) >= 0 {
			t.Errorf("pool contains ambiguous character %q", string(ambiguousChars[i]))
		}
	}

	full := len(uppercaseChars + lowercaseChars + digitChars + symbolChars)
	if len(pool) != full-len(ambiguousChars) {
		t.Errorf("pool size = %d, want %d", len(pool), full-len(ambiguousChars))
	}
}

func TestBuildPoolExclusionsStack(t *testing.T) {
	opts := GenerationOptions{
		Uppercase: true, Lowercase: true, Digits: true, Symbols: true,
		ExcludeAmbiguous: true, ExcludeSimilar: true,
	}
	pool, err := BuildPool(opts)
	if err != nil {
		t.Fatalf("BuildPool() unexpected error: %v", err)
	}

	// Enabling both filters must remove the union of both sets.
	union := make(map[byte]bool)
	for i := 0; i < len(ambiguousChars); i++ {
		union[ambiguousChars[i]] = true
	}
	for i := 0; i < len(similarChars); i++ {
		union[similarChars[i]] = true
	}

	full := uppercaseChars + lowercaseChars + digitChars + symbolChars
	removed := 0
	for i := 0; i < len(full); i++ {
		c := full[i]
		if union[c] {
			removed++
			if bytes.IndexByte(pool, c) >= 0 {
				t.Errorf("pool contains excluded character %q", string(c))
			}
		} else if bytes.IndexByte(pool, c) < 0 {
			t.Errorf("pool missing character %q that no filter excludes", string(c))
		}
	}
	if len(pool) != len(full)-removed {
		t.Errorf("pool size = %d, want %d", len(pool), len(full)-removed)
	}

	// Disabling both filters restores the full base pool.
	opts.ExcludeAmbiguous = false
	opts.ExcludeSimilar = false
	restored, err := BuildPool(opts)
	if err != nil {
		t.Fatalf("BuildPool() unexpected error: %v", err)
	}
	if string(restored) != full {
		t.Errorf("restored pool = %q, want full base pool", restored)
	}
}

func TestBuildPoolSimilarIndependentOfAmbiguous(t *testing.T) {
	pool, err := BuildPool(GenerationOptions{
		Uppercase: true, Lowercase: true, Digits: true, Symbols: true,
		ExcludeSimilar: true,
	})
	if err != nil {
		t.Fatalf("BuildPool() unexpected error: %v", err)
	}
	for i := 0; i < len(similarChars); i++ {
		if bytes.IndexByte(pool, similarChars[i]) >= 0 {
			t.Errorf("pool contains similar character %q", string(similarChars[i]))
		}
	}
	// Characters outside the similar set survive.
	if bytes.IndexByte(pool, 'a') < 0 {
		t.Error("pool unexpectedly missing 'a'")
	}
}

func TestPoolSizeDegenerate(t *testing.T) {
	if n := poolSize(GenerationOptions{}); n != 0 {
		t.Errorf("poolSize() with no classes = %d, want 0", n)
	}
	if n := poolSize(GenerationOptions{Uppercase: true, Lowercase: true}); n != 52 {
		t.Errorf("poolSize() letters = %d, want 52", n)
	}
}

func TestSymbolCharsetStable(t *testing.T) {
	// The symbol charset is versioned with the engine: changing it changes
	// entropy estimates for stored presets.
	if symbolChars != "!@#$%^&*()_+-=[]{}|;:,.<>?" {
		t.Errorf("symbol charset changed: %q", symbolChars)
	}
	if !strings.Contains(similarChars, "|") {
		t.Error("similar set no longer covers the pipe glyph")
	}
}
