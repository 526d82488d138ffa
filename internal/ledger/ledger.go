// Package ledger owns the in-memory entry collection and its persistence.
//
// The collection is append-only: entries are never edited or removed, and
// insertion order is the order of entry, not the order of the dates on the
// entries. Every append rewrites the whole backing store.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"expenselog/internal/core"
)

// Ledger materializes the full entry collection in memory and writes it
// back through a Store on every mutation.
type Ledger struct {
	store   Store
	entries []core.Entry
}

// Open loads the complete collection from the store.
func Open(ctx context.Context, store Store) (*Ledger, error) {
	entries, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	slog.InfoContext(ctx, "Ledger loaded", "entries", len(entries))
	return &Ledger{store: store, entries: entries}, nil
}

// Append adds the entry and persists the whole collection. On save failure
// the entry stays in memory, leaving memory ahead of disk until the next
// successful save; the error propagates to the caller.
func (l *Ledger) Append(ctx context.Context, e core.Entry) error {
	l.entries = append(l.entries, e)
	if err := l.Save(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Entry appended",
		"date", e.Date,
		"amount", e.Amount.String(),
		"category", e.Category)
	return nil
}

// Save rewrites the backing store from the in-memory collection.
func (l *Ledger) Save(ctx context.Context) error {
	if err := l.store.Save(ctx, l.entries); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// Entries returns a copy of the collection in insertion order.
func (l *Ledger) Entries() []core.Entry {
	out := make([]core.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}
