package archive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"

	"github.com/atharvsinh-codez/codedevs/pkg/utils/logging"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/safe"
)

const (
	objectPrefix    = "portfolios/"
	maxImageSize    = 32 << 20
	downloadTimeout = 30 * time.Second
)

type gcsClient struct {
	storage    *storage.Client
	bucket     string
	httpClient *http.Client
}

var _ Service = (*gcsClient)(nil)

type Option func(*gcsClient)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *gcsClient) {
		c.httpClient = httpClient
	}
}

// NewGCS builds an archiver that copies images into the given Cloud
// Storage bucket.
func NewGCS(ctx context.Context, bucket string, opts ...Option) (Service, error) {
	if bucket == "" {
		return nil, goerr.New("archive bucket name is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	c := &gcsClient{
		storage: client,
		bucket:  bucket,
		httpClient: &http.Client{
			Timeout: downloadTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Archive downloads srcURL and writes it to the bucket under name.
// The returned URL assumes the bucket allows public reads.
func (c *gcsClient) Archive(ctx context.Context, srcURL, name string) (string, error) {
	if srcURL == "" {
		return "", goerr.New("source URL is required")
	}
	if name == "" {
		return "", goerr.New("object name is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to build download request", goerr.V("url", srcURL))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to download image", goerr.V("url", srcURL))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", goerr.New("unexpected status from image source",
			goerr.V("url", srcURL),
			goerr.V("status_code", resp.StatusCode),
		)
	}

	object := objectPrefix + name
	w := c.storage.Bucket(c.bucket).Object(object).NewWriter(ctx)
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.ContentType = ct
	}

	if _, err := io.Copy(w, io.LimitReader(resp.Body, maxImageSize)); err != nil {
		safe.Close(ctx, w)
		return "", goerr.Wrap(err, "failed to write image to bucket",
			goerr.V("bucket", c.bucket),
			goerr.V("object", object),
		)
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize bucket object",
			goerr.V("bucket", c.bucket),
			goerr.V("object", object),
		)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucket, object)
	logging.From(ctx).Debug("archived image", "object", object, "url", url)

	return url, nil
}

func (c *gcsClient) Close() error {
	return c.storage.Close()
}
