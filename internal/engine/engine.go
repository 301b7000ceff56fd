// Package engine generates random passwords and passphrases and scores the
// entropy of any candidate configuration. It is the single authority for
// character pools, unbiased sampling, and strength tiers: callers consume
// it as a library and never reimplement sampling or scoring locally.
package engine

// GeneratedSecret is the output of a generation call: the secret itself plus
// the numbers that produced it. The engine never logs or caches the secret;
// lifetime of the string (display, clipboard, clearing) is the caller's
// concern.
type GeneratedSecret struct {
	Secret   string
	PoolSize int
	Bits     float64
	Tier     Strength

	// UniformFallbacks counts pronounceable-mode positions that had to be
	// drawn uniformly from the whole pool because the vowel or consonant
	// subset was empty. Zero for all other modes.
	UniformFallbacks int
}

// Engine composes pools, sampling, and scoring behind one entry point. It
// holds only immutable state (the word list) plus the CSPRNG-backed sampler,
// so a single instance is safe for concurrent use.
type Engine struct {
	sampler Sampler
	words   []string
}

// New constructs an Engine, validating the embedded word list. A word list
// failure is a build/deployment defect and surfaces here rather than at
// generation time.
func New() (*Engine, error) {
	words, err := loadWordList()
	if err != nil {
		return nil, err
	}
	return &Engine{
		sampler: NewSampler(),
		words:   words,
	}, nil
}

// WordListSize reports the size of the embedded passphrase word list.
func (e *Engine) WordListSize() int {
	return len(e.words)
}

// Generate validates the options, builds the pool (or selects the word
// list), composes a secret, and scores it. Each call is independent: no
// state beyond the CSPRNG is shared between calls.
func (e *Engine) Generate(opts GenerationOptions) (GeneratedSecret, error) {
	if err := opts.Validate(); err != nil {
		return GeneratedSecret{}, err
	}

	if opts.resolvedMode() == ModePassphrase {
		secret, err := composePassphrase(e.sampler, e.words, opts.WordCount, opts.separator())
		if err != nil {
			return GeneratedSecret{}, err
		}
		bits, tier := Score(len(e.words), opts.WordCount)
		return GeneratedSecret{
			Secret:   secret,
			PoolSize: len(e.words),
			Bits:     bits,
			Tier:     tier,
		}, nil
	}

	pool, err := BuildPool(opts)
	if err != nil {
		return GeneratedSecret{}, err
	}

	var secret string
	fallbacks := 0
	if opts.Pronounceable {
		secret, fallbacks, err = composePronounceable(e.sampler, pool, opts.Length)
	} else {
		secret, err = composeUniform(e.sampler, pool, opts.Length)
	}
	if err != nil {
		return GeneratedSecret{}, err
	}

	bits, tier := Score(len(pool), opts.Length)
	return GeneratedSecret{
		Secret:           secret,
		PoolSize:         len(pool),
		Bits:             bits,
		Tier:             tier,
		UniformFallbacks: fallbacks,
	}, nil
}

// SampleSpaceSize reports the size of the sample space the options resolve
// to: the character pool size in password mode (zero when empty) or the word
// list size in passphrase mode.
func (e *Engine) SampleSpaceSize(opts GenerationOptions) int {
	if opts.resolvedMode() == ModePassphrase {
		return len(e.words)
	}
	return poolSize(opts)
}

// ScorePreview reports the entropy estimate for the options without
// generating a secret, for live strength feedback while a user adjusts
// toggles and sliders. Unlike Generate, a configuration with no usable
// characters is not an error here: it previews as zero bits, Weak.
func (e *Engine) ScorePreview(opts GenerationOptions) (float64, Strength) {
	if opts.resolvedMode() == ModePassphrase {
		return Score(len(e.words), opts.WordCount)
	}
	return Score(poolSize(opts), opts.Length)
}
