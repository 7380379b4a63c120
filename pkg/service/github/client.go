package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/shurcooL/githubv4"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/safe"
)

const defaultBaseURL = "https://api.github.com"

type client struct {
	baseURL    string
	httpClient *http.Client
	gql        *githubv4.Client
	stars      starCache
}

var _ Service = &client{}

type Option func(*client)

// WithBaseURL overrides the REST API base URL (used by tests)
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithToken enables the GraphQL API (star counts). Profile lookups stay
// unauthenticated regardless.
func WithToken(token string) Option {
	return func(c *client) {
		if token == "" {
			return
		}
		c.gql = githubv4.NewClient(&http.Client{
			Transport: &tokenTransport{token: token, base: http.DefaultTransport},
			Timeout:   10 * time.Second,
		})
	}
}

func New(opts ...Option) Service {
	c := &client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// tokenTransport adds bearer authentication for the GraphQL endpoint
type tokenTransport struct {
	token string
	base  http.RoundTripper
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

// userResponse mirrors the fields of the public users API we project
type userResponse struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	Location    string    `json:"location"`
	Email       string    `json:"email"`
	Blog        string    `json:"blog"`
	Twitter     string    `json:"twitter_username"`
	Company     string    `json:"company"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *client) GetUser(ctx context.Context, login string) (*model.Profile, error) {
	if login == "" {
		return nil, goerr.New("login is required")
	}

	url := fmt.Sprintf("%s/users/%s", c.baseURL, login)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build profile request", goerr.V("login", login))
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch github profile", goerr.V("login", login))
	}
	defer safe.Close(ctx, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, goerr.Wrap(ErrProfileNotFound, "no such login", goerr.V("login", login))
	case resp.StatusCode != http.StatusOK:
		return nil, goerr.New("github users API returned an error",
			goerr.V("login", login), goerr.V("status_code", resp.StatusCode))
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to decode github profile", goerr.V("login", login))
	}

	return &model.Profile{
		Login:       user.Login,
		Name:        user.Name,
		Bio:         user.Bio,
		AvatarURL:   user.AvatarURL,
		Location:    user.Location,
		Email:       user.Email,
		Website:     user.Blog,
		Twitter:     user.Twitter,
		Company:     user.Company,
		Followers:   user.Followers,
		Following:   user.Following,
		PublicRepos: user.PublicRepos,
		JoinedAt:    user.CreatedAt,
	}, nil
}
