package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/keyforge/keyforge-go/internal/engine"
	"github.com/keyforge/keyforge-go/internal/model"
	"github.com/keyforge/keyforge-go/internal/repository"
)

var (
	ErrPresetNameRequired = errors.New("preset name is required")
	ErrPresetNotFound     = errors.New("preset not found")
	ErrPresetNameTaken    = errors.New("preset name already exists")
)

// PresetService manages saved generation configurations. A preset freezes a
// set of engine options plus display fields (charset description, entropy at
// save time); loading one reconstructs identical generation behavior.
type PresetService struct {
	repo   *repository.PresetRepository
	engine *engine.Engine
}

// NewPresetService creates a new PresetService.
func NewPresetService(repo *repository.PresetRepository, eng *engine.Engine) *PresetService {
	return &PresetService{repo: repo, engine: eng}
}

// Create validates and saves a new preset for a user.
func (s *PresetService) Create(ctx context.Context, userID int64, req model.PresetRequest) (model.PresetResponse, error) {
	preset, err := s.buildPreset(userID, req)
	if err != nil {
		return model.PresetResponse{}, err
	}

	if err := s.repo.Create(ctx, preset); err != nil {
		if errors.Is(err, repository.ErrDuplicatePreset) {
			return model.PresetResponse{}, ErrPresetNameTaken
		}
		return model.PresetResponse{}, err
	}

	return s.toResponse(preset, req.Options), nil
}

// Update overwrites an existing preset, recomputing the display fields from
// the new options.
func (s *PresetService) Update(ctx context.Context, userID, presetID int64, req model.PresetRequest) (model.PresetResponse, error) {
	preset, err := s.buildPreset(userID, req)
	if err != nil {
		return model.PresetResponse{}, err
	}
	preset.ID = presetID

	if err := s.repo.Update(ctx, preset); err != nil {
		switch {
		case errors.Is(err, repository.ErrPresetNotFound):
			return model.PresetResponse{}, ErrPresetNotFound
		case errors.Is(err, repository.ErrDuplicatePreset):
			return model.PresetResponse{}, ErrPresetNameTaken
		}
		return model.PresetResponse{}, err
	}

	return s.toResponse(preset, req.Options), nil
}

// Get retrieves a single preset.
func (s *PresetService) Get(ctx context.Context, userID, presetID int64) (model.PresetResponse, error) {
	preset, err := s.repo.GetByID(ctx, userID, presetID)
	if err != nil {
		if errors.Is(err, repository.ErrPresetNotFound) {
			return model.PresetResponse{}, ErrPresetNotFound
		}
		return model.PresetResponse{}, err
	}

	opts, err := decodeOptions(preset.OptionsJSON)
	if err != nil {
		return model.PresetResponse{}, err
	}
	return s.toResponse(preset, opts), nil
}

// List retrieves all presets for a user.
func (s *PresetService) List(ctx context.Context, userID int64) ([]model.PresetResponse, error) {
	presets, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.PresetResponse, 0, len(presets))
	for i := range presets {
		opts, err := decodeOptions(presets[i].OptionsJSON)
		if err != nil {
			return nil, err
		}
		out = append(out, s.toResponse(&presets[i], opts))
	}
	return out, nil
}

// Delete removes a preset on explicit user action.
func (s *PresetService) Delete(ctx context.Context, userID, presetID int64) error {
	err := s.repo.Delete(ctx, userID, presetID)
	if errors.Is(err, repository.ErrPresetNotFound) {
		return ErrPresetNotFound
	}
	return err
}

// Generate loads a preset and runs the engine with its stored options.
func (s *PresetService) Generate(ctx context.Context, userID, presetID int64) (model.GenerateResponse, error) {
	preset, err := s.repo.GetByID(ctx, userID, presetID)
	if err != nil {
		if errors.Is(err, repository.ErrPresetNotFound) {
			return model.GenerateResponse{}, ErrPresetNotFound
		}
		return model.GenerateResponse{}, err
	}

	opts, err := decodeOptions(preset.OptionsJSON)
	if err != nil {
		return model.GenerateResponse{}, err
	}

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

// buildPreset validates the request and freezes the derived display fields.
func (s *PresetService) buildPreset(userID int64, req model.PresetRequest) (*model.Preset, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrPresetNameRequired
	}
	if err := req.Options.Validate(); err != nil {
		return nil, err
	}

	optionsJSON, err := json.Marshal(req.Options)
	if err != nil {
		return nil, err
	}

	bits, _ := s.engine.ScorePreview(req.Options)
	return &model.Preset{
		UserID:             userID,
		Name:               strings.TrimSpace(req.Name),
		CharsetDescription: s.describeCharset(req.Options),
		EntropyBits:        bits,
		OptionsJSON:        optionsJSON,
	}, nil
}

// describeCharset renders a short human-readable summary of the sample
// space, shown next to the preset name in clients.
func (s *PresetService) describeCharset(opts engine.GenerationOptions) string {
	if opts.Mode == engine.ModePassphrase {
		return "passphrase"
	}

	var parts []string
	if opts.Uppercase {
		parts = append(parts, "A-Z")
	}
	if opts.Lowercase {
		parts = append(parts, "a-z")
	}
	if opts.Digits {
		parts = append(parts, "0-9")
	}
	if opts.Symbols {
		parts = append(parts, "symbols")
	}
	if len(parts) == 0 {
		return "empty"
	}

	desc := strings.Join(parts, " ")
	if opts.ExcludeAmbiguous || opts.ExcludeSimilar {
		desc += " (filtered)"
	}
	return desc
}

func (s *PresetService) toResponse(preset *model.Preset, opts engine.GenerationOptions) model.PresetResponse {
	// Display entropy is frozen at save time; the tier label tracks the
	// current thresholds.
	_, tier := s.engine.ScorePreview(opts)

	return model.PresetResponse{
		ID:                 preset.ID,
		Name:               preset.Name,
		CharsetDescription: preset.CharsetDescription,
		EntropyBits:        preset.EntropyBits,
		Strength:           tier.String(),
		Options:            opts,
		UpdatedAt:          preset.UpdatedAt,
	}
}

func decodeOptions(data []byte) (engine.GenerationOptions, error) {
	var opts engine.GenerationOptions
	if err := json.Unmarshal(data, &opts); err != nil {
		return engine.GenerationOptions{}, err
	}
	return opts, nil
}
