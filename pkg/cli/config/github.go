package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/atharvsinh-codez/codedevs/pkg/service/github"
)

// GitHub holds configuration for GitHub API access. Profile lookups
// work without a token; the token enables the GraphQL star count.
type GitHub struct {
	token      string
	starsOwner string
	starsRepo  string
}

// Flags returns CLI flags for GitHub configuration
func (g *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token for the GraphQL star count (optional)",
			Sources:     cli.EnvVars("CODEDEVS_GITHUB_TOKEN"),
			Destination: &g.token,
		},
		&cli.StringFlag{
			Name:        "stars-owner",
			Usage:       "Owner of the repository shown by the stars endpoint",
			Value:       "atharvsinh-codez",
			Sources:     cli.EnvVars("CODEDEVS_STARS_OWNER"),
			Destination: &g.starsOwner,
		},
		&cli.StringFlag{
			Name:        "stars-repo",
			Usage:       "Name of the repository shown by the stars endpoint",
			Value:       "codedevs",
			Sources:     cli.EnvVars("CODEDEVS_STARS_REPO"),
			Destination: &g.starsRepo,
		},
	}
}

// LogAttrs returns log attributes for the configuration (token hidden)
func (g *GitHub) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("token_configured", g.token != ""),
		slog.String("stars_owner", g.starsOwner),
		slog.String("stars_repo", g.starsRepo),
	}
}

// StarsOwner returns the configured stars repository owner
func (g *GitHub) StarsOwner() string {
	return g.starsOwner
}

// StarsRepo returns the configured stars repository name
func (g *GitHub) StarsRepo() string {
	return g.starsRepo
}

// Configure builds the GitHub service
func (g *GitHub) Configure() github.Service {
	var opts []github.Option
	if g.token != "" {
		opts = append(opts, github.WithToken(g.token))
	}
	return github.New(opts...)
}
