package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Length           int   `json:"length" validate:"omitempty,min=6,max=64"`
	Uppercase        *bool `json:"uppercase"`
	Lowercase        *bool `json:"lowercase"`
	Numbers          *bool `json:"numbers"`
	Symbols          *bool `json:"symbols"`
	ExcludeAmbiguous *bool `json:"exclude_ambiguous"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	ID          string  `json:"id,omitempty"`
	Password    string  `json:"password"`
	Length      int     `json:"length"`
	PoolSize    int     `json:"pool_size"`
	EntropyBits float64 `json:"entropy_bits"`
	Strength    string  `json:"strength"`
	Warning     string  `json:"warning,omitempty"`
}

// StrengthRequest asks for the entropy of a password drawn from the described pool.
type StrengthRequest struct {
	Password         string `json:"password" validate:"required,max=256"`
	Uppercase        *bool  `json:"uppercase"`
	Lowercase        *bool  `json:"lowercase"`
	Numbers          *bool  `json:"numbers"`
	Symbols          *bool  `json:"symbols"`
	ExcludeAmbiguous *bool  `json:"exclude_ambiguous"`
}

// StrengthResponse represents a strength estimate.
type StrengthResponse struct {
	PoolSize    int     `json:"pool_size"`
	EntropyBits float64 `json:"entropy_bits"`
	Strength    string  `json:"strength"`
}
