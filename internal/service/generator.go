package service

import (
	"github.com/keyforge/keyforge-go/internal/engine"
	"github.com/keyforge/keyforge-go/internal/model"
)

// GeneratorService maps API requests onto the generation engine. All
// sampling and scoring lives in the engine; this layer only fills defaults.
type GeneratorService struct {
	engine *engine.Engine
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(eng *engine.Engine) *GeneratorService {
	return &GeneratorService{engine: eng}
}

// Generate produces a secret based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := optionsFromRequest(req)

	secret, err := s.engine.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Secret:          secret.Secret,
		Length:          len(secret.Secret),
		PoolSize:        secret.PoolSize,
		EntropyBits:     secret.Bits,
		Strength:        secret.Tier.String(),
		StrengthPercent: engine.ProgressPercent(secret.Bits),
	}, nil
}

// Score reports the strength estimate for the requested options without
// generating a secret, for live feedback while a user adjusts settings.
func (s *GeneratorService) Score(req model.ScoreRequest) model.ScoreResponse {
	opts := optionsFromRequest(req)
	bits, tier := s.engine.ScorePreview(opts)

	return model.ScoreResponse{
		PoolSize:        s.engine.SampleSpaceSize(opts),
		EntropyBits:     bits,
		Strength:        tier.String(),
		StrengthPercent: engine.ProgressPercent(bits),
	}
}

// optionsFromRequest resolves a request into explicit engine options,
// defaulting absent class toggles to enabled and absent lengths to the
// engine defaults.
func optionsFromRequest(req model.GenerateRequest) engine.GenerationOptions {
	opts := engine.GenerationOptions{
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Digits:    boolOrDefault(req.Digits, true),
		Symbols:   boolOrDefault(req.Symbols, true),

		ExcludeAmbiguous: req.ExcludeAmbiguous,
		ExcludeSimilar:   req.ExcludeSimilar,
		Pronounceable:    req.Pronounceable,

		Mode:      engine.Mode(req.Mode),
		Length:    req.Length,
		WordCount: req.WordCount,
		Separator: req.Separator,
	}

	if opts.Mode == engine.ModePassphrase {
		if opts.WordCount == 0 {
			opts.WordCount = 6
		}
	} else if opts.Length == 0 {
		opts.Length = engine.DefaultOptions().Length
	}

	return opts
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
