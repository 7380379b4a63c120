package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/interfaces"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/model/config"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
	"github.com/atharvsinh-codez/codedevs/pkg/service/archive"
	"github.com/atharvsinh-codez/codedevs/pkg/service/github"
	"github.com/atharvsinh-codez/codedevs/pkg/service/imagegen"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/errutil"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/logging"
)

// GenerationUseCase runs the portfolio generation pipeline
type GenerationUseCase struct {
	repo     interfaces.Repository
	imageGen imagegen.Service
	github   github.Service
	archive  archive.Service
	style    *config.StyleConfig
}

// GenerateImage produces a single image for a caller-supplied prompt.
// Exactly one upstream call is made; there is no retry or key failover.
func (uc *GenerationUseCase) GenerateImage(ctx context.Context, prompt string, size types.ImageSize) (*model.GeneratedImage, error) {
	if uc.imageGen == nil {
		return nil, goerr.Wrap(ErrImageGenRequired, "cannot generate image")
	}

	img, err := uc.imageGen.Generate(ctx, &imagegen.Request{
		Prompt: prompt,
		Size:   size,
	})
	if err != nil {
		return nil, err
	}

	return img, nil
}

// GeneratePortfolio is the full pipeline: resolve the GitHub profile,
// render a prompt from the style configuration, generate the image,
// and record the handle in the ledger.
func (uc *GenerationUseCase) GeneratePortfolio(ctx context.Context, rawHandle string) (*model.PortfolioArtifact, error) {
	if uc.github == nil {
		return nil, goerr.Wrap(ErrGitHubRequired, "cannot generate portfolio")
	}
	if uc.imageGen == nil {
		return nil, goerr.Wrap(ErrImageGenRequired, "cannot generate portfolio")
	}

	handle := types.NormalizeHandle(rawHandle)
	if err := handle.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidHandle, err.Error(), goerr.V(HandleKey, rawHandle))
	}

	profile, err := uc.github.GetUser(ctx, string(handle))
	if err != nil {
		if errors.Is(err, github.ErrProfileNotFound) {
			return nil, goerr.Wrap(ErrProfileNotFound, "no such GitHub user", goerr.V(HandleKey, handle))
		}
		return nil, goerr.Wrap(err, "failed to fetch GitHub profile", goerr.V(HandleKey, handle))
	}

	prompt, err := uc.style.RenderPrompt(profile)
	if err != nil {
		return nil, err
	}

	img, err := uc.imageGen.Generate(ctx, &imagegen.Request{
		Prompt: prompt,
		Size:   uc.style.Size,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "image generation failed", goerr.V(HandleKey, handle))
	}

	recordID, err := uc.repo.Portfolio().Upsert(ctx, handle, profile.DisplayName(), profile.AvatarURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to record portfolio", goerr.V(HandleKey, handle))
	}

	if uc.archive != nil && img.URL != "" {
		archived, err := uc.archive.Archive(ctx, img.URL, string(recordID)+".png")
		if err != nil {
			// Archiving is best-effort; the upstream URL still works
			// for a while
			errutil.Handle(ctx, err, "failed to archive generated image")
		} else {
			img.ArchivedURL = archived
		}
	}

	logging.From(ctx).Info("generated portfolio",
		"handle", handle,
		"record_id", recordID,
		"has_image", img.URL != "",
	)

	return &model.PortfolioArtifact{
		RecordID: recordID,
		Profile:  profile,
		Image:    img,
	}, nil
}
