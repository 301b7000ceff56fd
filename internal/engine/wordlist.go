package engine

import (
	_ "embed"
	"fmt"
	"strings"
)

// The passphrase word list ships with the binary. Its size feeds directly
// into passphrase entropy estimates, so the list is versioned with the
// engine and validated once at construction time; a malformed list is a
// deployment error, not a runtime one.
//
//go:embed words.txt
var wordListData string

func loadWordList() ([]string, error) {
	lines := strings.Split(strings.TrimSpace(wordListData), "\n")
	words := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))

	for i, line := range lines {
		w := strings.TrimSpace(line)
		if w == "" {
			return nil, fmt.Errorf("word list: blank entry at line %d", i+1)
		}
		if w != strings.ToLower(w) {
			return nil, fmt.Errorf("word list: entry %q at line %d is not lowercase", w, i+1)
		}
		if seen[w] {
			return nil, fmt.Errorf("word list: duplicate entry %q at line %d", w, i+1)
		}
		seen[w] = true
		words = append(words, w)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("word list: empty")
	}
	return words, nil
}
