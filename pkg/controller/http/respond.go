package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atharvsinh-codez/codedevs/pkg/service/imagegen"
	"github.com/atharvsinh-codez/codedevs/pkg/usecase"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/errutil"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/safe"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(ctx, w, data)
}

// errorStatus maps pipeline errors to HTTP status codes. Upstream
// image API failures mirror the upstream status so clients can tell
// rate limiting from hard failure.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, imagegen.ErrEmptyPrompt):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrInvalidHandle):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrProfileNotFound):
		return http.StatusNotFound
	}

	if code, ok := imagegen.UpstreamStatus(err); ok {
		return code
	}

	return http.StatusInternalServerError
}

// errorMessage is the client-facing message; diagnostic detail stays
// in the logs.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, imagegen.ErrEmptyPrompt):
		return "Prompt is required"
	case errors.Is(err, usecase.ErrInvalidHandle):
		return "GitHub username is required"
	case errors.Is(err, usecase.ErrProfileNotFound):
		return "GitHub user not found"
	case errors.Is(err, imagegen.ErrUpstream):
		return "Image generation failed"
	case errors.Is(err, imagegen.ErrTransport):
		return "Image generation service unavailable"
	}
	return "Internal server error"
}
