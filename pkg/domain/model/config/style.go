package config

import (
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
)

// DefaultPromptTemplate is used when no style configuration file is
// given. The template is rendered with a model.Profile.
const DefaultPromptTemplate = `A polished portfolio hero image for software developer {{ .DisplayName }}.` +
	`{{ if .Bio }} Theme: {{ .Bio }}.{{ end }}` +
	`{{ if .Location }} Based in {{ .Location }}.{{ end }}` +
	` Modern flat illustration, wide banner composition, no text.`

// StyleConfig controls how portfolio images are generated
type StyleConfig struct {
	Model          string
	Size           types.ImageSize
	PromptTemplate string

	tmpl *template.Template
}

func DefaultStyleConfig() *StyleConfig {
	cfg := &StyleConfig{
		Size:           types.DefaultImageSize,
		PromptTemplate: DefaultPromptTemplate,
	}
	cfg.tmpl = template.Must(template.New("prompt").Parse(DefaultPromptTemplate))
	return cfg
}

// NewStyleConfig parses the prompt template eagerly so a broken
// configuration fails at startup, not per request.
func NewStyleConfig(model string, size types.ImageSize, promptTemplate string) (*StyleConfig, error) {
	if promptTemplate == "" {
		promptTemplate = DefaultPromptTemplate
	}

	tmpl, err := template.New("prompt").Parse(promptTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse prompt template")
	}

	return &StyleConfig{
		Model:          model,
		Size:           size.OrDefault(),
		PromptTemplate: promptTemplate,
		tmpl:           tmpl,
	}, nil
}

// RenderPrompt builds the image generation prompt from a profile.
func (c *StyleConfig) RenderPrompt(profile *model.Profile) (string, error) {
	if profile == nil {
		return "", goerr.New("profile is required to render prompt")
	}

	var sb strings.Builder
	if err := c.tmpl.Execute(&sb, profile); err != nil {
		return "", goerr.Wrap(err, "failed to render prompt template",
			goerr.V("login", profile.Login))
	}

	prompt := strings.TrimSpace(sb.String())
	if prompt == "" {
		return "", goerr.New("rendered prompt is empty", goerr.V("login", profile.Login))
	}

	return prompt, nil
}
