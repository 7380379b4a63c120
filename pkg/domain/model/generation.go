package model

import "github.com/atharvsinh-codez/codedevs/pkg/domain/types"

// GeneratedImage is the resolved outcome of a successful image
// generation call. URL may be empty when the upstream accepted the
// request but returned no image descriptor; callers must treat that as
// "succeeded but nothing to show".
type GeneratedImage struct {
	URL         string
	ArchivedURL string
}

// PortfolioArtifact is the result of the full generation pipeline for
// a single handle.
type PortfolioArtifact struct {
	RecordID types.RecordID
	Profile  *Profile
	Image    *GeneratedImage
}
