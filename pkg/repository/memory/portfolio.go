package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/interfaces"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
)

type portfolioRepository struct {
	mu      sync.Mutex
	records map[types.Handle]*model.Portfolio
}

var _ interfaces.PortfolioRepository = &portfolioRepository{}

func newPortfolioRepository() *portfolioRepository {
	return &portfolioRepository{
		records: make(map[types.Handle]*model.Portfolio),
	}
}

func copyPortfolio(p *model.Portfolio) *model.Portfolio {
	copied := *p
	return &copied
}

// Upsert holds the lock across the whole read-modify-write, which is
// this backend's equivalent of the Firestore transaction.
func (r *portfolioRepository) Upsert(ctx context.Context, handle types.Handle, name, avatarURL string) (types.RecordID, error) {
	if err := handle.Validate(); err != nil {
		return "", goerr.Wrap(err, "invalid handle for upsert")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	if existing, ok := r.records[handle]; ok {
		if name != "" {
			existing.Name = name
		}
		if avatarURL != "" {
			existing.AvatarURL = avatarURL
		}
		existing.UpdatedAt = now
		return existing.ID, nil
	}

	created := &model.Portfolio{
		ID:        types.NewRecordID(),
		Handle:    handle,
		Name:      name,
		AvatarURL: avatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.records[handle] = created
	return created.ID, nil
}

func (r *portfolioRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.records)), nil
}

func (r *portfolioRepository) Recent(ctx context.Context, limit int) ([]*model.Portfolio, error) {
	if limit <= 0 {
		return []*model.Portfolio{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*model.Portfolio, 0, len(r.records))
	for _, p := range r.records {
		result = append(result, copyPortfolio(p))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}
