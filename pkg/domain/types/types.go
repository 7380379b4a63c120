package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// Handle is the normalized natural key of a portfolio: a lowercased
// GitHub login.
type Handle string

// NormalizeHandle trims surrounding whitespace and lowercases the raw
// input. Uniqueness in the ledger is case-insensitive, so every write
// and lookup goes through this.
func NormalizeHandle(raw string) Handle {
	return Handle(strings.ToLower(strings.TrimSpace(raw)))
}

// Validate checks the handle against the GitHub login format:
// alphanumeric and hyphens, no leading/trailing/double hyphen,
// at most 39 characters.
func (h Handle) Validate() error {
	s := string(h)
	if s == "" {
		return goerr.New("handle is required")
	}
	if len(s) > 39 {
		return goerr.New("handle is too long", goerr.V("handle", s))
	}
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") || strings.Contains(s, "--") {
		return goerr.New("invalid handle format", goerr.V("handle", s))
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return goerr.New("invalid character in handle", goerr.V("handle", s))
		}
	}
	return nil
}

func (h Handle) String() string {
	return string(h)
}

// RecordID identifies a ledger record
type RecordID string

func NewRecordID() RecordID {
	return RecordID(uuid.NewString())
}

func (id RecordID) String() string {
	return string(id)
}

// ImageSize is a WxH size specification for the image generation API
type ImageSize string

// DefaultImageSize is the wide banner aspect used when no size is
// supplied by the caller.
const DefaultImageSize ImageSize = "1792x1024"

// Validate checks the WxH format. Empty is valid and means "use default".
func (s ImageSize) Validate() error {
	if s == "" {
		return nil
	}
	w, h, ok := strings.Cut(string(s), "x")
	if !ok || w == "" || h == "" {
		return goerr.New("invalid image size format", goerr.V("size", s))
	}
	for _, part := range []string{w, h} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return goerr.New("invalid image size format", goerr.V("size", s))
			}
		}
	}
	return nil
}

// OrDefault returns the size itself, or DefaultImageSize when empty
func (s ImageSize) OrDefault() ImageSize {
	if s == "" {
		return DefaultImageSize
	}
	return s
}
