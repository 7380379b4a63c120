package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/atharvsinh-codez/codedevs/pkg/service/archive"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/logging"
)

// Storage holds CLI flags for the optional image archive bucket
type Storage struct {
	bucket string
}

// Flags returns CLI flags for storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "image-bucket",
			Usage:       "Cloud Storage bucket for archiving generated images (disabled when empty)",
			Sources:     cli.EnvVars("CODEDEVS_IMAGE_BUCKET"),
			Destination: &s.bucket,
		},
	}
}

// Configure builds the archive service, or returns nil when no bucket
// is configured.
func (s *Storage) Configure(ctx context.Context) (archive.Service, error) {
	if s.bucket == "" {
		logging.Default().Info("image bucket not configured, archiving disabled")
		return nil, nil
	}

	svc, err := archive.NewGCS(ctx, s.bucket)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize archive service")
	}

	logging.Default().Info("image archiving enabled", "bucket", s.bucket)
	return svc, nil
}
