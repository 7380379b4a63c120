package interfaces

import (
	"context"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/types"
)

// PortfolioRepository provides database operations for the portfolio
// ledger.
//
// Upsert is the only write path. Conflict resolution happens inside the
// storage layer (transactional create-or-merge keyed by handle), never
// as an application-level read-then-write, so concurrent upserts for
// the same handle can neither duplicate rows nor lose updates.
type PortfolioRepository interface {
	// Upsert creates the record for the handle if missing, otherwise
	// updates it. Empty name/avatarURL leave the stored values
	// untouched. The handle must already be normalized.
	Upsert(ctx context.Context, handle types.Handle, name, avatarURL string) (types.RecordID, error)

	// Count returns the number of distinct handles ever recorded
	Count(ctx context.Context) (int64, error)

	// Recent returns up to limit records, newest first by creation time
	Recent(ctx context.Context, limit int) ([]*model.Portfolio, error)
}
