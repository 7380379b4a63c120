package github

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/shurcooL/githubv4"
	"golang.org/x/sync/singleflight"

	"github.com/atharvsinh-codez/codedevs/pkg/utils/async"
)

// starCacheTTL bounds how often the GraphQL API is asked for the same
// repository's star count.
const starCacheTTL = 5 * time.Minute

type starEntry struct {
	count     int
	fetchedAt time.Time
}

type starCache struct {
	mu      sync.RWMutex
	entries map[string]starEntry
	group   singleflight.Group
}

// RepoStars returns the stargazer count, cached for starCacheTTL.
// Concurrent cache misses for the same repository collapse into a
// single upstream query.
func (c *client) RepoStars(ctx context.Context, owner, name string) (int, error) {
	if c.gql == nil {
		return 0, nil
	}

	key := owner + "/" + name

	c.stars.mu.RLock()
	entry, ok := c.stars.entries[key]
	c.stars.mu.RUnlock()
	if ok {
		if time.Since(entry.fetchedAt) < starCacheTTL {
			return entry.count, nil
		}

		// Serve the stale count and refresh it in the background so
		// the caller never waits on the GraphQL API twice.
		async.Dispatch(ctx, func(ctx context.Context) error {
			_, err := c.refreshStars(ctx, key, owner, name)
			return err
		})
		return entry.count, nil
	}

	result, err, _ := c.stars.group.Do(key, func() (any, error) {
		return c.refreshStars(ctx, key, owner, name)
	})
	if err != nil {
		return 0, err
	}

	count, ok := result.(int)
	if !ok {
		return 0, goerr.New("unexpected star count type", goerr.V("repo", key))
	}
	return count, nil
}

func (c *client) refreshStars(ctx context.Context, key, owner, name string) (int, error) {
	count, err := c.fetchStars(ctx, owner, name)
	if err != nil {
		return 0, err
	}

	c.stars.mu.Lock()
	if c.stars.entries == nil {
		c.stars.entries = make(map[string]starEntry)
	}
	c.stars.entries[key] = starEntry{count: count, fetchedAt: time.Now()}
	c.stars.mu.Unlock()

	return count, nil
}

func (c *client) fetchStars(ctx context.Context, owner, name string) (int, error) {
	var query struct {
		Repository struct {
			StargazerCount githubv4.Int
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	variables := map[string]interface{}{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(name),
	}

	if err := c.gql.Query(ctx, &query, variables); err != nil {
		return 0, goerr.Wrap(err, "failed to query stargazer count",
			goerr.V("repo", fmt.Sprintf("%s/%s", owner, name)))
	}

	return int(query.Repository.StargazerCount), nil
}
