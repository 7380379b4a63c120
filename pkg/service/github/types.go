package github

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
)

// Service provides interface to the public GitHub API
type Service interface {
	// GetUser fetches the public profile for a login. Returns
	// ErrProfileNotFound when the login does not exist.
	GetUser(ctx context.Context, login string) (*model.Profile, error)

	// RepoStars returns the stargazer count of a repository. Requires a
	// configured API token; without one it reports 0 without calling out.
	RepoStars(ctx context.Context, owner, name string) (int, error)
}

// ErrProfileNotFound means the requested login does not exist
var ErrProfileNotFound = goerr.New("github profile not found")
