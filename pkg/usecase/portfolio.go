package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/interfaces"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
	"github.com/atharvsinh-codez/codedevs/pkg/service/github"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/errutil"
)

const statsRecentLimit = 5

// PortfolioUseCase handles ledger reads and writes
type PortfolioUseCase struct {
	repo   interfaces.Repository
	github github.Service
}

// TrackInput carries the optional profile fields recorded alongside a
// handle. Empty fields never clobber stored values.
type TrackInput struct {
	Handle    string
	Name      string
	AvatarURL string
}

// Track records a visit for the given handle, creating or updating its
// ledger entry.
func (uc *PortfolioUseCase) Track(ctx context.Context, input TrackInput) (types.RecordID, error) {
	handle := types.NormalizeHandle(input.Handle)
	if err := handle.Validate(); err != nil {
		return "", goerr.Wrap(ErrInvalidHandle, err.Error(), goerr.V(HandleKey, input.Handle))
	}

	id, err := uc.repo.Portfolio().Upsert(ctx, handle, input.Name, input.AvatarURL)
	if err != nil {
		return "", goerr.Wrap(err, "failed to upsert portfolio", goerr.V(HandleKey, handle))
	}

	return id, nil
}

// Stats returns the ledger total and the most recent entries. Read
// failures degrade to zero values so the endpoint never breaks the
// page; the underlying errors are logged.
func (uc *PortfolioUseCase) Stats(ctx context.Context) *model.PortfolioStats {
	stats := &model.PortfolioStats{
		Latest: []*model.Portfolio{},
	}

	var eg errgroup.Group
	eg.Go(func() error {
		count, err := uc.repo.Portfolio().Count(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to count portfolios")
		}
		stats.Count = count
		return nil
	})
	eg.Go(func() error {
		recent, err := uc.repo.Portfolio().Recent(ctx, statsRecentLimit)
		if err != nil {
			return goerr.Wrap(err, "failed to list recent portfolios")
		}
		stats.Latest = recent
		return nil
	})

	if err := eg.Wait(); err != nil {
		errutil.Handle(ctx, err, "portfolio stats degraded")
		return &model.PortfolioStats{Latest: []*model.Portfolio{}}
	}

	return stats
}

// RepoStars returns the star count of the project repository, or zero
// when the GitHub GraphQL client is not configured or the lookup fails.
func (uc *PortfolioUseCase) RepoStars(ctx context.Context, owner, name string) int {
	if uc.github == nil {
		return 0
	}

	stars, err := uc.github.RepoStars(ctx, owner, name)
	if err != nil {
		errutil.Handle(ctx, err, "failed to fetch repository stars")
		return 0
	}

	return stars
}
