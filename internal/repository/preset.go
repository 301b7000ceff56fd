package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/keyforge/keyforge-go/internal/model"
)

var (
	ErrPresetNotFound  = errors.New("preset not found")
	ErrDuplicatePreset = errors.New("preset name already exists")
)

// PresetRepository handles persistence of saved generation configurations.
type PresetRepository struct {
	db *sql.DB
}

// NewPresetRepository creates a new PresetRepository.
func NewPresetRepository(db *sql.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

// Create inserts a new preset and sets the generated ID on the struct.
// Preset names are unique per user.
func (r *PresetRepository) Create(ctx context.Context, preset *model.Preset) error {
	query := `INSERT INTO presets (user_id, name, charset_description, entropy_bits, options)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		preset.UserID, preset.Name, preset.CharsetDescription, preset.EntropyBits, preset.OptionsJSON,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicatePreset
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	preset.ID = id
	return nil
}

// GetByID retrieves a preset owned by the given user.
func (r *PresetRepository) GetByID(ctx context.Context, userID, presetID int64) (*model.Preset, error) {
	query := `SELECT id, user_id, name, charset_description, entropy_bits, options, created_at, updated_at
		FROM presets WHERE user_id = ? AND id = ?`

	preset := &model.Preset{}
	err := r.db.QueryRowContext(ctx, query, userID, presetID).Scan(
		&preset.ID, &preset.UserID, &preset.Name, &preset.CharsetDescription,
		&preset.EntropyBits, &preset.OptionsJSON, &preset.CreatedAt, &preset.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}

	return preset, nil
}

// ListByUser retrieves all presets for a user, alphabetically by name.
func (r *PresetRepository) ListByUser(ctx context.Context, userID int64) ([]model.Preset, error) {
	query := `SELECT id, user_id, name, charset_description, entropy_bits, options, created_at, updated_at
		FROM presets WHERE user_id = ? ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []model.Preset
	for rows.Next() {
		var p model.Preset
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.CharsetDescription,
			&p.EntropyBits, &p.OptionsJSON, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}

	return presets, rows.Err()
}

// Update overwrites an existing preset's name, display fields, and options.
func (r *PresetRepository) Update(ctx context.Context, preset *model.Preset) error {
	query := `UPDATE presets SET name = ?, charset_description = ?, entropy_bits = ?, options = ?
		WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query,
		preset.Name, preset.CharsetDescription, preset.EntropyBits, preset.OptionsJSON,
		preset.UserID, preset.ID,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicatePreset
		}
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrPresetNotFound
	}

	return nil
}

// Delete removes a preset. Deletion only happens on explicit user action,
// so this is a hard delete.
func (r *PresetRepository) Delete(ctx context.Context, userID, presetID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM presets WHERE user_id = ? AND id = ?`, userID, presetID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrPresetNotFound
	}

	return nil
}
