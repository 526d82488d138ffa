// Package csvfile persists the ledger as a flat delimited UTF-8 file:
//
//	date,amount,category,note
//	2025-09-01,199.99,Food,lunch
//
// Reads are lenient: columns are matched by header name in any order,
// missing columns default to empty, and a row with an unparseable amount
// keeps the rest of its fields with the amount zeroed — a corrupt amount
// must not lose the row. Writes rewrite the whole file with a fixed header
// and amounts formatted to exactly two decimals.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"expenselog/internal/core"
)

var header = []string{"date", "amount", "category", "note"}

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full collection. A missing file is an empty collection.
func (s *Store) Load(_ context.Context) ([]core.Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate short rows; missing columns default to empty

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read ledger file: %w", err)
	}
	if len(records) < 2 {
		return nil, nil // empty or header-only
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	entries := make([]core.Entry, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string)
		for j, h := range headers {
			if j < len(record) {
				row[h] = record[j]
			}
		}
		entries = append(entries, core.Entry{
			Date:     row["date"],
			Amount:   lenientAmount(row["amount"]),
			Category: row["category"],
			Note:     row["note"],
		})
	}
	return entries, nil
}

// lenientAmount parses any numeric literal into cents, defaulting to zero
// when the text is not a number. No row is ever rejected here.
func lenientAmount(s string) core.Money {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return core.Money{}
	}
	return core.Money{Cents: d.Shift(2).Round(0).IntPart()}
}

// Save rewrites the destination wholesale, in collection order. The file is
// written to a temporary sibling and renamed into place so the destination
// never holds a partial write.
func (s *Store) Save(_ context.Context, entries []core.Entry) error {
	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create ledger directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create ledger file: %w", err)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write ledger header: %w", err)
	}
	for _, e := range entries {
		record := []string{e.Date, e.Amount.String(), e.Category, e.Note}
		if err := writer.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("write ledger row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush ledger file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close ledger file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace ledger file: %w", err)
	}
	return nil
}
