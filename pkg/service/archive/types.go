package archive

import (
	"context"
)

// Service stores a copy of an upstream image and returns a stable URL
// for it. Upstream generation URLs are short lived, so anything we want
// to show later has to be archived first.
type Service interface {
	Archive(ctx context.Context, srcURL, name string) (string, error)
}
