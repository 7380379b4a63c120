package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	httpctrl "github.com/atharvsinh-codez/codedevs/pkg/controller/http"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/repository/memory"
	"github.com/atharvsinh-codez/codedevs/pkg/service/github"
	"github.com/atharvsinh-codez/codedevs/pkg/service/imagegen"
	"github.com/atharvsinh-codez/codedevs/pkg/usecase"
)

type stubImageGen struct {
	image *model.GeneratedImage
	err   error
}

func (s *stubImageGen) Generate(ctx context.Context, req *imagegen.Request) (*model.GeneratedImage, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.image != nil {
		return s.image, nil
	}
	return &model.GeneratedImage{URL: "https://img.example.com/out.png"}, nil
}

type stubGitHub struct {
	profile *model.Profile
	err     error
	stars   int
}

func (s *stubGitHub) GetUser(ctx context.Context, login string) (*model.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func (s *stubGitHub) RepoStars(ctx context.Context, owner, name string) (int, error) {
	return s.stars, nil
}

func postJSON(t *testing.T, srv *httpctrl.Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	gt.NoError(t, err).Required()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, srv *httpctrl.Server, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if out != nil {
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), out)).Required()
	}
	return rec
}

func TestGenerateImageEndpoint(t *testing.T) {
	t.Run("returns image URL", func(t *testing.T) {
		uc := usecase.New(memory.New(), usecase.WithImageGen(&stubImageGen{}))
		srv := httpctrl.New(uc)

		rec := postJSON(t, srv, "/api/image/generate", map[string]any{"prompt": "a skyline"})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Success  bool    `json:"success"`
			ImageURL *string `json:"imageUrl"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Bool(t, resp.Success).True()
		gt.Value(t, resp.ImageURL).NotNil()
		gt.Value(t, *resp.ImageURL).Equal("https://img.example.com/out.png")
	})

	t.Run("missing prompt is 400", func(t *testing.T) {
		uc := usecase.New(memory.New(), usecase.WithImageGen(&stubImageGen{
			err: goerr.Wrap(imagegen.ErrEmptyPrompt, "prompt is required"),
		}))
		srv := httpctrl.New(uc)

		rec := postJSON(t, srv, "/api/image/generate", map[string]any{})
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp["error"]).Equal("Prompt is required")
	})

	t.Run("upstream status is mirrored", func(t *testing.T) {
		uc := usecase.New(memory.New(), usecase.WithImageGen(&stubImageGen{
			err: goerr.Wrap(imagegen.ErrUpstream, "upstream returned error",
				goerr.V("status_code", http.StatusTooManyRequests)),
		}))
		srv := httpctrl.New(uc)

		rec := postJSON(t, srv, "/api/image/generate", map[string]any{"prompt": "x"})
		gt.Value(t, rec.Code).Equal(http.StatusTooManyRequests)
	})

	t.Run("success without image descriptor is imageUrl null", func(t *testing.T) {
		uc := usecase.New(memory.New(), usecase.WithImageGen(&stubImageGen{
			image: &model.GeneratedImage{},
		}))
		srv := httpctrl.New(uc)

		rec := postJSON(t, srv, "/api/image/generate", map[string]any{"prompt": "x"})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp["success"]).Equal(true)
		gt.Value(t, resp["imageUrl"]).Nil()
	})
}

func TestTrackEndpoint(t *testing.T) {
	t.Run("records and returns id", func(t *testing.T) {
		uc := usecase.New(memory.New())
		srv := httpctrl.New(uc)

		rec := postJSON(t, srv, "/api/portfolio/track", map[string]any{
			"githubUsername": "OctoCat",
			"name":           "The Octocat",
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Success bool   `json:"success"`
			ID      string `json:"id"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Bool(t, resp.Success).True()
		gt.String(t, resp.ID).NotEqual("")
	})

	t.Run("missing username is 400", func(t *testing.T) {
		uc := usecase.New(memory.New())
		srv := httpctrl.New(uc)

		rec := postJSON(t, srv, "/api/portfolio/track", map[string]any{"name": "No Handle"})
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp["error"]).Equal("GitHub username is required")
	})
}

func TestStatsEndpoint(t *testing.T) {
	uc := usecase.New(memory.New())
	srv := httpctrl.New(uc)

	for _, h := range []string{"alice", "bob"} {
		rec := postJSON(t, srv, "/api/portfolio/track", map[string]any{"githubUsername": h})
		gt.Value(t, rec.Code).Equal(http.StatusOK)
	}

	var resp struct {
		Count  int64 `json:"count"`
		Latest []struct {
			GithubUsername string `json:"githubUsername"`
		} `json:"latest"`
	}
	rec := getJSON(t, srv, "/api/portfolio/stats", &resp)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Value(t, resp.Count).Equal(int64(2))
	gt.Array(t, resp.Latest).Length(2)
	gt.Value(t, resp.Latest[0].GithubUsername).Equal("bob")
}

func TestGeneratePortfolioEndpoint(t *testing.T) {
	t.Run("runs the pipeline", func(t *testing.T) {
		uc := usecase.New(memory.New(),
			usecase.WithImageGen(&stubImageGen{}),
			usecase.WithGitHub(&stubGitHub{profile: &model.Profile{
				Login: "octocat",
				Name:  "The Octocat",
			}}),
		)
		srv := httpctrl.New(uc)

		rec := postJSON(t, srv, "/api/portfolio/generate", map[string]any{"githubUsername": "octocat"})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Success  bool    `json:"success"`
			Username string  `json:"username"`
			Name     string  `json:"name"`
			ImageURL *string `json:"imageUrl"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Bool(t, resp.Success).True()
		gt.Value(t, resp.Username).Equal("octocat")
		gt.Value(t, resp.Name).Equal("The Octocat")
		gt.Value(t, resp.ImageURL).NotNil()
	})

	t.Run("unknown user is 404", func(t *testing.T) {
		uc := usecase.New(memory.New(),
			usecase.WithImageGen(&stubImageGen{}),
			usecase.WithGitHub(&stubGitHub{err: github.ErrProfileNotFound}),
		)
		srv := httpctrl.New(uc)

		rec := postJSON(t, srv, "/api/portfolio/generate", map[string]any{"githubUsername": "ghost"})
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestStarsEndpoint(t *testing.T) {
	t.Run("serves configured repository count", func(t *testing.T) {
		uc := usecase.New(memory.New(), usecase.WithGitHub(&stubGitHub{stars: 42}))
		srv := httpctrl.New(uc, httpctrl.WithStarsRepo("atharvsinh-codez", "codedevs"))

		var resp struct {
			Stars int `json:"stars"`
		}
		rec := getJSON(t, srv, "/api/github/stars", &resp)
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, resp.Stars).Equal(42)
	})

	t.Run("unconfigured reads as zero", func(t *testing.T) {
		uc := usecase.New(memory.New())
		srv := httpctrl.New(uc)

		var resp struct {
			Stars int `json:"stars"`
		}
		rec := getJSON(t, srv, "/api/github/stars", &resp)
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, resp.Stars).Equal(0)
	})
}

func TestHealthEndpoint(t *testing.T) {
	srv := httpctrl.New(usecase.New(memory.New()))

	rec := getJSON(t, srv, "/health", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Value(t, rec.Body.String()).Equal(`{"status":"ok"}`)
}
