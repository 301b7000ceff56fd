package model

import (
	"time"

	"github.com/keyforge/keyforge-go/internal/engine"
)

// Preset represents a saved generation configuration in the database. The
// options are stored as serialized JSON so that loading a preset reproduces
// identical generation behavior; description and entropy are display fields
// frozen at save time.
type Preset struct {
	ID                 int64
	UserID             int64
	Name               string
	CharsetDescription string
	EntropyBits        float64
	OptionsJSON        []byte
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PresetRequest represents a preset create/update request.
type PresetRequest struct {
	Name    string                   `json:"name"`
	Options engine.GenerationOptions `json:"options"`
}

// PresetResponse represents a preset in API responses.
type PresetResponse struct {
	ID                 int64                    `json:"id"`
	Name               string                   `json:"name"`
	CharsetDescription string                   `json:"charset_description"`
	EntropyBits        float64                  `json:"entropy_bits"`
	Strength           string                   `json:"strength"`
	Options            engine.GenerationOptions `json:"options"`
	UpdatedAt          time.Time                `json:"updated_at"`
}
