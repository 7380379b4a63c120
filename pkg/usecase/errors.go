package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrInvalidHandle    = errors.New("invalid GitHub handle")
	ErrProfileNotFound  = errors.New("GitHub profile not found")
	ErrImageGenRequired = errors.New("image generation service is not configured")
	ErrGitHubRequired   = errors.New("GitHub service is not configured")
)

// Context keys for error values
const (
	HandleKey = "handle"
)
