// Package report computes the two read views over the entry collection:
// a reverse-insertion-order listing with a running total, and totals by
// category sorted descending by amount.
package report

import (
	"errors"
	"sort"

	"expenselog/internal/core"
)

// ErrNoEntries is returned when a view is requested over an empty
// collection, so callers can render an explicit "no data" state instead of
// a degenerate empty report.
var ErrNoEntries = errors.New("no entries")

type (
	// Row is one listing line: Index is 1-based with the most recently
	// added entry first.
	Row struct {
		Index int
		Entry core.Entry
	}

	// Listing is the chronological view. Rows are in reverse insertion
	// order — the entry added last comes first, regardless of the dates on
	// the entries.
	Listing struct {
		Rows  []Row
		Total core.Money
		Count int
	}

	// CategoryReport groups amounts by exact category name.
	CategoryReport struct {
		Totals     []core.CategoryAmount
		GrandTotal core.Money
	}
)

// NewListing builds the listing view.
func NewListing(entries []core.Entry) (Listing, error) {
	if len(entries) == 0 {
		return Listing{}, ErrNoEntries
	}
	l := Listing{
		Rows:  make([]Row, 0, len(entries)),
		Count: len(entries),
	}
	for i := len(entries) - 1; i >= 0; i-- {
		l.Rows = append(l.Rows, Row{Index: len(entries) - i, Entry: entries[i]})
		l.Total = l.Total.Add(entries[i].Amount)
	}
	return l, nil
}

// ByCategory builds the category totals view. Grouping is exact-match and
// case-sensitive; output is sorted by total descending with stable ties.
// The grand total always equals the listing total for the same collection.
func ByCategory(entries []core.Entry) (CategoryReport, error) {
	if len(entries) == 0 {
		return CategoryReport{}, ErrNoEntries
	}

	totals := make(map[string]int64)
	order := make([]string, 0)
	for _, e := range entries {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount.Cents
	}

	r := CategoryReport{Totals: make([]core.CategoryAmount, 0, len(order))}
	for _, name := range order {
		r.Totals = append(r.Totals, core.CategoryAmount{
			Name:   name,
			Amount: core.Money{Cents: totals[name]},
		})
		r.GrandTotal.Cents += totals[name]
	}
	sort.SliceStable(r.Totals, func(i, j int) bool {
		return r.Totals[i].Amount.Cents > r.Totals[j].Amount.Cents
	})
	return r, nil
}
