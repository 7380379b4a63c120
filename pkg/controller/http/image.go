package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
	"github.com/atharvsinh-codez/codedevs/pkg/usecase"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/errutil"
)

// generateImageHandler serves ad-hoc image generation for a
// caller-supplied prompt.
func generateImageHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Prompt string `json:"prompt"`
		Size   string `json:"size"`
	}
	type response struct {
		Success  bool    `json:"success"`
		ImageURL *string `json:"imageUrl"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode generate request"),
				"Invalid request body", http.StatusBadRequest)
			return
		}

		img, err := uc.Generation.GenerateImage(ctx, req.Prompt, types.ImageSize(req.Size))
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, errorMessage(err), errorStatus(err))
			return
		}

		resp := response{Success: true}
		if img.URL != "" {
			resp.ImageURL = &img.URL
		}
		respondJSON(ctx, w, resp)
	}
}
