package usecase

import (
	"github.com/atharvsinh-codez/codedevs/pkg/domain/interfaces"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/model/config"
	"github.com/atharvsinh-codez/codedevs/pkg/service/archive"
	"github.com/atharvsinh-codez/codedevs/pkg/service/github"
	"github.com/atharvsinh-codez/codedevs/pkg/service/imagegen"
)

type UseCases struct {
	repo  interfaces.Repository
	style *config.StyleConfig

	Generation *GenerationUseCase
	Portfolio  *PortfolioUseCase
}

type Option func(*UseCases)

func WithStyleConfig(cfg *config.StyleConfig) Option {
	return func(uc *UseCases) {
		uc.style = cfg
	}
}

func WithImageGen(svc imagegen.Service) Option {
	return func(uc *UseCases) {
		uc.Generation.imageGen = svc
	}
}

func WithGitHub(svc github.Service) Option {
	return func(uc *UseCases) {
		uc.Generation.github = svc
		uc.Portfolio.github = svc
	}
}

func WithArchive(svc archive.Service) Option {
	return func(uc *UseCases) {
		uc.Generation.archive = svc
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:  repo,
		style: config.DefaultStyleConfig(),
	}
	uc.Generation = &GenerationUseCase{repo: repo}
	uc.Portfolio = &PortfolioUseCase{repo: repo}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Generation.style = uc.style

	return uc
}
