package engine

import "errors"

// Mode selects the kind of secret the engine produces.
type Mode string

const (
	ModePassword   Mode = "password"
	ModePassphrase Mode = "passphrase"
)

const (
	MinLength = 6
	MaxLength = 64

	MinWordCount = 3
	MaxWordCount = 12

	DefaultSeparator = "-"
)

var (
	ErrEmptyPool        = errors.New("no usable characters after applying toggles and exclusions")
	ErrInvalidLength    = errors.New("password length must be between 6 and 64")
	ErrInvalidWordCount = errors.New("word count must be between 3 and 12")
	ErrInvalidSeparator = errors.New("separator must be a single character")
)

// GenerationOptions configures a single generation call. It is passed by
// value and fully describes the call: the engine keeps no configuration
// state between calls. The struct serializes to JSON so that stored presets
// reconstruct identical generation behavior.
type GenerationOptions struct {
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`

	ExcludeAmbiguous bool `json:"exclude_ambiguous"`
	ExcludeSimilar   bool `json:"exclude_similar"`

	Pronounceable bool `json:"pronounceable"`

	Mode      Mode   `json:"mode"`
	Length    int    `json:"length"`
	WordCount int    `json:"word_count"`
	Separator string `json:"separator"`
}

// DefaultOptions returns sensible defaults: a 16-character password drawing
// from all four character classes.
func DefaultOptions() GenerationOptions {
	return GenerationOptions{
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
		Mode:      ModePassword,
		Length:    16,
	}
}

// resolvedMode treats the zero value as password mode so that callers which
// never set Mode (and presets saved before passphrase support) keep working.
func (o GenerationOptions) resolvedMode() Mode {
	if o.Mode == ModePassphrase {
		return ModePassphrase
	}
	return ModePassword
}

// Validate checks the length bounds for the resolved mode. It runs before
// any pool construction so out-of-range requests never reach the sampler.
func (o GenerationOptions) Validate() error {
	switch o.resolvedMode() {
	case ModePassphrase:
		if o.WordCount < MinWordCount || o.WordCount > MaxWordCount {
			return ErrInvalidWordCount
		}
		if len(o.Separator) > 1 {
			return ErrInvalidSeparator
		}
	default:
		if o.Length < MinLength || o.Length > MaxLength {
			return ErrInvalidLength
		}
	}
	return nil
}

// separator returns the configured separator or the default dash.
func (o GenerationOptions) separator() string {
	if o.Separator == "" {
		return DefaultSeparator
	}
	return o.Separator
}
