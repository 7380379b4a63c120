package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/atharvsinh-codez/codedevs/pkg/cli/config"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
)

func writeStyleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestStyleConfigure(t *testing.T) {
	t.Run("defaults when no file given", func(t *testing.T) {
		cfg, err := config.NewStyleForTest("").Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, cfg.Size).Equal(types.DefaultImageSize)

		prompt, err := cfg.RenderPrompt(&model.Profile{Login: "octocat"})
		gt.NoError(t, err).Required()
		gt.String(t, prompt).NotEqual("")
	})

	t.Run("loads TOML file", func(t *testing.T) {
		path := writeStyleFile(t, `
model = "img4"
size = "1024x1024"
prompt_template = "Portrait of {{ .DisplayName }}"
`)
		cfg, err := config.NewStyleForTest(path).Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, cfg.Model).Equal("img4")
		gt.Value(t, cfg.Size).Equal(types.ImageSize("1024x1024"))

		prompt, err := cfg.RenderPrompt(&model.Profile{Login: "octocat", Name: "The Octocat"})
		gt.NoError(t, err).Required()
		gt.Value(t, prompt).Equal("Portrait of The Octocat")
	})

	t.Run("invalid size fails startup", func(t *testing.T) {
		path := writeStyleFile(t, `size = "huge"`)
		_, err := config.NewStyleForTest(path).Configure()
		gt.Value(t, err).NotNil()
	})

	t.Run("broken template fails startup", func(t *testing.T) {
		path := writeStyleFile(t, `prompt_template = "{{ .Broken"`)
		_, err := config.NewStyleForTest(path).Configure()
		gt.Value(t, err).NotNil()
	})

	t.Run("missing file fails startup", func(t *testing.T) {
		_, err := config.NewStyleForTest("/no/such/style.toml").Configure()
		gt.Value(t, err).NotNil()
	})
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("valid settings", func(t *testing.T) {
		closer, err := config.NewLoggerForTest("debug", "json", "-").Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := config.NewLoggerForTest("loud", "console", "-").Configure()
		gt.Bool(t, errors.Is(err, config.ErrInvalidLogLevel)).True()
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := config.NewLoggerForTest("info", "xml", "-").Configure()
		gt.Bool(t, errors.Is(err, config.ErrInvalidLogFormat)).True()
	})
}

func TestRepositoryConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("memory backend", func(t *testing.T) {
		repo, err := config.NewRepositoryForTest("memory", "", "").Configure(ctx)
		gt.NoError(t, err).Required()
		gt.NoError(t, repo.Close())
	})

	t.Run("firestore requires project ID", func(t *testing.T) {
		_, err := config.NewRepositoryForTest("firestore", "", "").Configure(ctx)
		gt.Bool(t, errors.Is(err, config.ErrMissingProjectID)).True()
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := config.NewRepositoryForTest("postgres", "", "").Configure(ctx)
		gt.Bool(t, errors.Is(err, config.ErrInvalidBackend)).True()
	})
}

func TestImageGenConfigure(t *testing.T) {
	svc := config.NewImageGenForTest([]string{"key-1", "key-2"}, "", "").Configure()
	gt.Value(t, svc).NotNil()
}
