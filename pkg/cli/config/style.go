package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/atharvsinh-codez/codedevs/pkg/domain/model/config"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
)

// Style holds the CLI flag pointing at the style configuration file
type Style struct {
	path string
}

// StyleFile is the TOML shape of a style configuration file
type StyleFile struct {
	Model          string `toml:"model"`
	Size           string `toml:"size"`
	PromptTemplate string `toml:"prompt_template"`
}

// Flags returns CLI flags for style configuration
func (s *Style) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "style-config",
			Usage:       "Path to TOML style configuration for portfolio generation",
			Sources:     cli.EnvVars("CODEDEVS_STYLE_CONFIG"),
			Destination: &s.path,
		},
	}
}

// Configure loads the style configuration, or returns defaults when no
// file is given. A broken file fails startup.
func (s *Style) Configure() (*domainConfig.StyleConfig, error) {
	if s.path == "" {
		return domainConfig.DefaultStyleConfig(), nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read style config file", goerr.V("path", s.path))
	}

	var file StyleFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML style config", goerr.V("path", s.path))
	}

	size := types.ImageSize(file.Size)
	if err := size.OrDefault().Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid size in style config", goerr.V("path", s.path))
	}

	cfg, err := domainConfig.NewStyleConfig(file.Model, size, file.PromptTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "style config validation failed", goerr.V("path", s.path))
	}

	return cfg, nil
}
