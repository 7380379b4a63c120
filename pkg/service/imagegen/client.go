package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/logging"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/safe"
)

const (
	defaultEndpoint = "https://api.infip.pro/v1/images/generations"
	defaultModel    = "img4"

	// Upstream error bodies are logged for diagnosis but capped so a
	// misbehaving upstream cannot flood the logs.
	maxDiagnosticBody = 4 * 1024
)

type client struct {
	ring       *KeyRing
	endpoint   string
	model      string
	httpClient *http.Client
}

var _ Service = &client{}

type Option func(*client)

func WithEndpoint(endpoint string) Option {
	return func(c *client) {
		c.endpoint = endpoint
	}
}

func WithModel(model string) Option {
	return func(c *client) {
		c.model = model
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// New creates an image generation client backed by the given key ring.
// Each Generate call takes one credential from the ring and performs a
// single upstream call; there is no retry with a different key, so load
// fans out across keys over time instead of concentrating on one
// request.
func New(ring *KeyRing, opts ...Option) Service {
	c := &client{
		ring:     ring,
		endpoint: defaultEndpoint,
		model:    defaultModel,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Model          string `json:"model"`
	N              int    `json:"n"`
	Prompt         string `json:"prompt"`
	ResponseFormat string `json:"response_format"`
	Size           string `json:"size"`
}

type generateResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (c *client) Generate(ctx context.Context, req *Request) (*model.GeneratedImage, error) {
	if req == nil || req.Prompt == "" {
		return nil, goerr.Wrap(ErrEmptyPrompt, "image generation rejected")
	}
	size := req.Size.OrDefault()
	if err := size.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid size for image generation")
	}

	body, err := json.Marshal(&generateRequest{
		Model:          c.model,
		N:              1,
		Prompt:         req.Prompt,
		ResponseFormat: "url",
		Size:           string(size),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal image generation request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build image generation request")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.ring.Next())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, goerr.Wrap(ErrTransport, "image generation call failed",
			goerr.V("endpoint", c.endpoint), goerr.V("cause", err.Error()))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		diag, _ := io.ReadAll(io.LimitReader(resp.Body, maxDiagnosticBody))
		logging.From(ctx).Error("image generation failed",
			"status", resp.StatusCode,
			"body", string(diag),
		)
		return nil, goerr.Wrap(ErrUpstream, "image generation failed",
			goerr.V("status_code", resp.StatusCode))
	}

	var data generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, goerr.Wrap(err, "failed to decode image generation response")
	}

	if len(data.Data) == 0 || data.Data[0].URL == "" {
		logging.From(ctx).Warn("image generation succeeded without image descriptor")
		return &model.GeneratedImage{}, nil
	}

	return &model.GeneratedImage{URL: data.Data[0].URL}, nil
}
