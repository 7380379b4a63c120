package imagegen

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors for the image generation client
var (
	// ErrEmptyPrompt is a validation failure; no outbound call is made
	ErrEmptyPrompt = goerr.New("prompt is required")

	// ErrUpstream means the upstream API answered with a non-success
	// status. The status code is attached as the "status_code" value.
	ErrUpstream = goerr.New("image generation upstream returned an error")

	// ErrTransport means the upstream could not be reached at all
	ErrTransport = goerr.New("failed to reach image generation upstream")
)

// UpstreamStatus extracts the upstream HTTP status code carried by an
// ErrUpstream error. Returns false when err is not an upstream error.
func UpstreamStatus(err error) (int, bool) {
	if !errors.Is(err, ErrUpstream) {
		return 0, false
	}
	var ge *goerr.Error
	if !errors.As(err, &ge) {
		return 0, false
	}
	if code, ok := ge.Values()["status_code"].(int); ok {
		return code, true
	}
	return 0, false
}
