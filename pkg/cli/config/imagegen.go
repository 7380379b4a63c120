package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/atharvsinh-codez/codedevs/pkg/service/imagegen"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/logging"
)

// ImageGen holds CLI flags for the upstream image generation API
type ImageGen struct {
	apiKeys  []string
	endpoint string
	model    string
}

// Flags returns CLI flags for image generation configuration
func (i *ImageGen) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "image-api-keys",
			Usage:       "Image API keys, rotated round-robin (comma separated)",
			Sources:     cli.EnvVars("CODEDEVS_IMAGE_API_KEYS"),
			Destination: &i.apiKeys,
		},
		&cli.StringFlag{
			Name:        "image-api-endpoint",
			Usage:       "Image generation API endpoint (default: infip.pro)",
			Sources:     cli.EnvVars("CODEDEVS_IMAGE_API_ENDPOINT"),
			Destination: &i.endpoint,
		},
		&cli.StringFlag{
			Name:        "image-model",
			Usage:       "Image generation model name",
			Sources:     cli.EnvVars("CODEDEVS_IMAGE_MODEL"),
			Destination: &i.model,
		},
	}
}

// LogAttrs returns log attributes for the configuration (keys hidden)
func (i *ImageGen) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Int("key_count", len(i.apiKeys)),
		slog.String("endpoint", i.endpoint),
		slog.String("model", i.model),
	}
}

// Configure builds the image generation client. Without configured
// keys the client falls back to the built-in shared key. Flags win
// over any options passed in.
func (i *ImageGen) Configure(extra ...imagegen.Option) imagegen.Service {
	ring := imagegen.NewKeyRing(i.apiKeys)
	if ring.Size() == 0 {
		logging.Default().Warn("no image API keys configured, using fallback key")
	}

	opts := extra
	if i.endpoint != "" {
		opts = append(opts, imagegen.WithEndpoint(i.endpoint))
	}
	if i.model != "" {
		opts = append(opts, imagegen.WithModel(i.model))
	}

	return imagegen.New(ring, opts...)
}
