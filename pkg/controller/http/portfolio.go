package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atharvsinh-codez/codedevs/pkg/usecase"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/errutil"
)

type portfolioSummary struct {
	GithubUsername string    `json:"githubUsername"`
	Name           string    `json:"name,omitempty"`
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func trackHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		GithubUsername string `json:"githubUsername"`
		Name           string `json:"name"`
		AvatarURL      string `json:"avatarUrl"`
	}
	type response struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode track request"),
				"Invalid request body", http.StatusBadRequest)
			return
		}

		id, err := uc.Portfolio.Track(ctx, usecase.TrackInput{
			Handle:    req.GithubUsername,
			Name:      req.Name,
			AvatarURL: req.AvatarURL,
		})
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, errorMessage(err), errorStatus(err))
			return
		}

		respondJSON(ctx, w, response{Success: true, ID: string(id)})
	}
}

// statsHandler never fails: read errors already degraded to zero
// values inside the use case.
func statsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Count  int64              `json:"count"`
		Latest []portfolioSummary `json:"latest"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		stats := uc.Portfolio.Stats(ctx)

		resp := response{
			Count:  stats.Count,
			Latest: make([]portfolioSummary, len(stats.Latest)),
		}
		for i, p := range stats.Latest {
			resp.Latest[i] = portfolioSummary{
				GithubUsername: string(p.Handle),
				Name:           p.Name,
				AvatarURL:      p.AvatarURL,
				CreatedAt:      p.CreatedAt,
			}
		}

		respondJSON(ctx, w, resp)
	}
}

func generatePortfolioHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		GithubUsername string `json:"githubUsername"`
	}
	type response struct {
		Success     bool    `json:"success"`
		Username    string  `json:"username"`
		Name        string  `json:"name,omitempty"`
		ImageURL    *string `json:"imageUrl"`
		ArchivedURL string  `json:"archivedUrl,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode generate request"),
				"Invalid request body", http.StatusBadRequest)
			return
		}

		artifact, err := uc.Generation.GeneratePortfolio(ctx, req.GithubUsername)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, errorMessage(err), errorStatus(err))
			return
		}

		resp := response{
			Success:     true,
			Username:    artifact.Profile.Login,
			Name:        artifact.Profile.DisplayName(),
			ArchivedURL: artifact.Image.ArchivedURL,
		}
		if artifact.Image.URL != "" {
			resp.ImageURL = &artifact.Image.URL
		}
		respondJSON(ctx, w, resp)
	}
}

// starsHandler always answers 200 with a count; failures and missing
// configuration both read as zero.
func starsHandler(uc *usecase.UseCases, owner, repo string) http.HandlerFunc {
	type response struct {
		Stars int `json:"stars"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		stars := 0
		if owner != "" && repo != "" {
			stars = uc.Portfolio.RepoStars(ctx, owner, repo)
		}

		respondJSON(ctx, w, response{Stars: stars})
	}
}
