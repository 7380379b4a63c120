package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/interfaces"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
	"github.com/atharvsinh-codez/codedevs/pkg/repository/memory"
	"github.com/atharvsinh-codez/codedevs/pkg/usecase"
)

// brokenRepository fails every read to exercise stats degradation
type brokenRepository struct{}

func (r *brokenRepository) Portfolio() interfaces.PortfolioRepository {
	return &brokenPortfolioRepository{}
}

func (r *brokenRepository) Close() error { return nil }

type brokenPortfolioRepository struct{}

func (r *brokenPortfolioRepository) Upsert(ctx context.Context, handle types.Handle, name, avatarURL string) (types.RecordID, error) {
	return "", errors.New("backend down")
}

func (r *brokenPortfolioRepository) Count(ctx context.Context) (int64, error) {
	return 0, errors.New("backend down")
}

func (r *brokenPortfolioRepository) Recent(ctx context.Context, limit int) ([]*model.Portfolio, error) {
	return nil, errors.New("backend down")
}

func TestTrack(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	t.Run("normalizes handle before storing", func(t *testing.T) {
		id, err := uc.Portfolio.Track(ctx, usecase.TrackInput{
			Handle:    "  OctoCat ",
			Name:      "The Octocat",
			AvatarURL: "https://avatars.example.com/octocat",
		})
		gt.NoError(t, err).Required()
		gt.String(t, string(id)).NotEqual("")

		recent, err := repo.Portfolio().Recent(ctx, 1)
		gt.NoError(t, err).Required()
		gt.Array(t, recent).Length(1)
		gt.Value(t, recent[0].Handle).Equal(types.Handle("octocat"))
	})

	t.Run("repeat calls reuse the record", func(t *testing.T) {
		first, err := uc.Portfolio.Track(ctx, usecase.TrackInput{Handle: "repeat"})
		gt.NoError(t, err).Required()
		second, err := uc.Portfolio.Track(ctx, usecase.TrackInput{Handle: "REPEAT"})
		gt.NoError(t, err).Required()
		gt.Value(t, second).Equal(first)
	})

	t.Run("rejects invalid handle", func(t *testing.T) {
		_, err := uc.Portfolio.Track(ctx, usecase.TrackInput{Handle: "-bad-"})
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidHandle)).True()
	})

	t.Run("rejects empty handle", func(t *testing.T) {
		_, err := uc.Portfolio.Track(ctx, usecase.TrackInput{Handle: "   "})
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidHandle)).True()
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	t.Run("counts and lists recent entries", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		for _, h := range []string{"alice", "bob", "carol"} {
			_, err := uc.Portfolio.Track(ctx, usecase.TrackInput{Handle: h})
			gt.NoError(t, err).Required()
		}

		stats := uc.Portfolio.Stats(ctx)
		gt.Value(t, stats.Count).Equal(int64(3))
		gt.Array(t, stats.Latest).Length(3)
	})

	t.Run("degrades to zero on read failure", func(t *testing.T) {
		uc := usecase.New(&brokenRepository{})

		stats := uc.Portfolio.Stats(ctx)
		gt.Value(t, stats.Count).Equal(int64(0))
		gt.Array(t, stats.Latest).Length(0)
	})
}

func TestRepoStarsWithoutService(t *testing.T) {
	uc := usecase.New(memory.New())
	gt.Value(t, uc.Portfolio.RepoStars(context.Background(), "owner", "repo")).Equal(0)
}
