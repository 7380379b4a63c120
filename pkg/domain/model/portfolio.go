package model

import (
	"time"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
)

// Portfolio is a ledger record: one row per normalized handle,
// recording that a portfolio was generated or viewed. Records are
// created on first generation and only updated afterwards, never
// deleted by this service.
type Portfolio struct {
	ID        types.RecordID
	Handle    types.Handle
	Name      string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PortfolioStats is the aggregate view served to display widgets
type PortfolioStats struct {
	Count  int64
	Latest []*Portfolio
}
