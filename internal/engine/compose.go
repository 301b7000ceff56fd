package engine

import (
	"log/slog"
	"strings"
)

const vowelChars = "aeiouAEIOU"

func isVowel(c byte) bool {
	return strings.IndexByte(vowelChars, c) >= 0
}

// partitionPool splits a pool into its vowel and consonant subsets. The
// membership test is a fixed vowel-letter check, case-insensitive; digits
// and symbols land on the consonant side.
func partitionPool(pool []byte) (vowels, consonants []byte) {
	for _, c := range pool {
		if isVowel(c) {
			vowels = append(vowels, c)
		} else {
			consonants = append(consonants, c)
		}
	}
	return vowels, consonants
}

// composeUniform draws length independent characters from the full pool.
func composeUniform(s Sampler, pool []byte, length int) (string, error) {
	out := make([]byte, length)
	for i := range out {
		idx, err := s.Sample(len(pool))
		if err != nil {
			return "", err
		}
		out[i] = pool[idx]
	}
	return string(out), nil
}

// composePronounceable alternates vowel and consonant draws, starting from a
// random parity so the first character is a vowel half the time. Positions
// whose subset is empty (a symbols-only pool has no vowels) fall back to a
// uniform draw over the whole pool instead of failing; the returned count
// reports how many positions fell back, since the fallback changes the
// intended alternation of the output.
func composePronounceable(s Sampler, pool []byte, length int) (string, int, error) {
	vowels, consonants := partitionPool(pool)

	parity, err := s.Sample(2)
	if err != nil {
		return "", 0, err
	}

	out := make([]byte, length)
	fallbacks := 0
	for i := range out {
		subset := vowels
		if (i+parity)%2 == 1 {
			subset = consonants
		}
		if len(subset) == 0 {
			subset = pool
			fallbacks++
		}
		idx, err := s.Sample(len(subset))
		if err != nil {
			return "", 0, err
		}
		out[i] = subset[idx]
	}

	if fallbacks > 0 {
		slog.Debug("pronounceable composition fell back to uniform draws",
			"positions", fallbacks, "length", length)
	}
	return string(out), fallbacks, nil
}

// composePassphrase joins wordCount independent word draws with the
// separator.
func composePassphrase(s Sampler, words []string, wordCount int, separator string) (string, error) {
	picked := make([]string, wordCount)
	for i := range picked {
		idx, err := s.Sample(len(words))
		if err != nil {
			return "", err
		}
		picked[i] = words[idx]
	}
	return strings.Join(picked, separator), nil
}
