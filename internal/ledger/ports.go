package ledger

import (
	"context"

	"expenselog/internal/core"
)

// Store is the outbound port for entry persistence.
//
// Load returns the full collection in its persisted order; a missing
// backing file is an empty collection, not an error. Save rewrites the
// whole collection wholesale — there is no incremental persistence.
type Store interface {
	Load(ctx context.Context) ([]core.Entry, error)
	Save(ctx context.Context, entries []core.Entry) error
}
