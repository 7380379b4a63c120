package imagegen

import (
	"context"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
)

// Service provides interface to the upstream image generation API
type Service interface {
	// Generate performs exactly one upstream call and returns the
	// resolved image. A nil error with an empty URL means the upstream
	// accepted the request but returned no image descriptor.
	Generate(ctx context.Context, req *Request) (*model.GeneratedImage, error)
}

// Request describes a single image generation
type Request struct {
	Prompt string
	Size   types.ImageSize
}
