package engine

import "strings"

// Character classes. Changing any of these constants (or the exclusion sets
// below) changes pool sizes and therefore entropy estimates for existing
// presets; treat edits as a breaking change.
const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// ambiguousChars are glyphs users commonly misread when transcribing a
// password by hand (letter/digit pairs like l/1 and O/0).
const ambiguousChars = "iIlLoO01"

// similarChars is the larger confusable-glyph set: everything in the
// ambiguous set's spirit plus digit/letter pairs (5/S, 2/Z, 8/B, 6/G, 9/g/q)
// and punctuation that renders near-identically in many fonts. Removal of
// members not present in the pool is a no-op.
const similarChars = "0O1iIlLo|!5S2Z8B6G9gq({[<>]});:,."

// BuildPool assembles the concrete character pool for the enabled classes.
// Classes are concatenated in a fixed order (uppercase, lowercase, digits,
// symbols) so that pool contents, pool size, and therefore the entropy
// estimate are deterministic for a given set of options. The result is
// duplicate-free. An empty result is an error, never a silent fallback to
// some default pool.
func BuildPool(opts GenerationOptions) ([]byte, error) {
	var base string
	if opts.Uppercase {
		base += uppercaseChars
	}
	if opts.Lowercase {
		base += lowercaseChars
	}
	if opts.Digits {
		base += digitChars
	}
	if opts.Symbols {
		base += symbolChars
	}

	pool := make([]byte, 0, len(base))
	seen := make(map[byte]bool, len(base))
	for i := 0; i < len(base); i++ {
		c := base[i]
		if seen[c] {
			continue
		}
		// Both exclusion filters stack: enabling both removes the union.
		if opts.ExcludeAmbiguous && strings.IndexByte(ambiguousChars, c) >= 0 {
			continue
		}
		if opts.ExcludeSimilar && strings.IndexByte(similarChars, c) >= 0 {
			continue
		}
		seen[c] = true
		pool = append(pool, c)
	}

	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	return pool, nil
}

// poolSize reports the pool size for the given options without requiring a
// successful build: zero when no usable characters remain. Used for strength
// previews, where an empty pool is a valid degenerate UI state rather than
// a failure.
func poolSize(opts GenerationOptions) int {
	pool, err := BuildPool(opts)
	if err != nil {
		return 0
	}
	return len(pool)
}
