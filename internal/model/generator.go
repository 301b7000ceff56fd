package model

// GenerateRequest represents a secret generation request.
// Pointer bools distinguish missing (nil -> default) from explicit false.
type GenerateRequest struct {
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`

	ExcludeAmbiguous bool `json:"exclude_ambiguous"`
	ExcludeSimilar   bool `json:"exclude_similar"`
	Pronounceable    bool `json:"pronounceable"`

	Mode      string `json:"mode"` // "password" (default) or "passphrase"
	Length    int    `json:"length"`
	WordCount int    `json:"word_count"`
	Separator string `json:"separator"`
}

// GenerateResponse carries a generated secret and the strength estimate
// derived from the sample space that produced it.
type GenerateResponse struct {
	Secret          string  `json:"secret"`
	Length          int     `json:"length"`
	PoolSize        int     `json:"pool_size"`
	EntropyBits     float64 `json:"entropy_bits"`
	Strength        string  `json:"strength"`
	StrengthPercent float64 `json:"strength_percent"`
}

// ScoreRequest mirrors GenerateRequest for strength previews: same options,
// no secret produced.
type ScoreRequest = GenerateRequest

// ScoreResponse represents a strength preview without a generated secret.
type ScoreResponse struct {
	PoolSize        int     `json:"pool_size"`
	EntropyBits     float64 `json:"entropy_bits"`
	Strength        string  `json:"strength"`
	StrengthPercent float64 `json:"strength_percent"`
}
