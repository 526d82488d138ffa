package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expenselog/internal/core"
)

func storeAt(t *testing.T, name string) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), name))
}

func TestLoad_MissingFile(t *testing.T) {
	s := storeAt(t, "expenses.csv")

	entries, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := storeAt(t, "expenses.csv")
	ctx := context.Background()

	in := []core.Entry{
		{Date: "2025-09-01", Amount: core.Money{Cents: 19999}, Category: "Food", Note: "lunch"},
		{Date: "2025-08-30", Amount: core.Money{Cents: 50}, Category: "Transport", Note: ""},
		{Date: "2025-09-02", Amount: core.Money{Cents: 1200}, Category: "Bills", Note: "water, gas \"utility\""},
	}

	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSave_WritesHeaderAndTwoDecimals(t *testing.T) {
	s := storeAt(t, "expenses.csv")
	ctx := context.Background()

	entries := []core.Entry{
		{Date: "2025-09-01", Amount: core.Money{Cents: 5000}, Category: "Food", Note: "lunch"},
	}
	require.NoError(t, s.Save(ctx, entries))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "date,amount,category,note", lines[0])
	assert.Equal(t, "2025-09-01,50.00,Food,lunch", lines[1])
}

func TestSave_OverwritesWholesale(t *testing.T) {
	s := storeAt(t, "expenses.csv")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []core.Entry{
		{Date: "2025-09-01", Amount: core.Money{Cents: 100}, Category: "Food"},
		{Date: "2025-09-02", Amount: core.Money{Cents: 200}, Category: "Food"},
	}))
	require.NoError(t, s.Save(ctx, []core.Entry{
		{Date: "2025-09-03", Amount: core.Money{Cents: 300}, Category: "Bills"},
	}))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2025-09-03", out[0].Date)
}

func TestLoad_UnparseableAmountKeepsRow(t *testing.T) {
	s := storeAt(t, "expenses.csv")
	content := "date,amount,category,note\n" +
		"2025-09-01,oops,Food,lunch\n" +
		"2025-09-02,10.50,Bills,\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0644))

	out, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, core.Entry{Date: "2025-09-01", Amount: core.Money{}, Category: "Food", Note: "lunch"}, out[0])
	assert.Equal(t, int64(1050), out[1].Amount.Cents)
}

func TestLoad_ColumnOrderIndependent(t *testing.T) {
	s := storeAt(t, "expenses.csv")
	content := "note,category,amount,date\n" +
		"lunch,Food,199.99,2025-09-01\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0644))

	out, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, core.Entry{Date: "2025-09-01", Amount: core.Money{Cents: 19999}, Category: "Food", Note: "lunch"}, out[0])
}

func TestLoad_MissingColumnsDefaultEmpty(t *testing.T) {
	s := storeAt(t, "expenses.csv")
	content := "date,amount\n" +
		"2025-09-01,42.5\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0644))

	out, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, core.Entry{Date: "2025-09-01", Amount: core.Money{Cents: 4250}}, out[0])
}

func TestLoad_ShortRowTolerated(t *testing.T) {
	s := storeAt(t, "expenses.csv")
	content := "date,amount,category,note\n" +
		"2025-09-01,10.00\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0644))

	out, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "", out[0].Category)
	assert.Equal(t, int64(1000), out[0].Amount.Cents)
}

func TestLoad_HeaderOnly(t *testing.T) {
	s := storeAt(t, "expenses.csv")
	require.NoError(t, os.WriteFile(s.Path(), []byte("date,amount,category,note\n"), 0644))

	out, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSave_QuotesDelimiters(t *testing.T) {
	s := storeAt(t, "expenses.csv")
	ctx := context.Background()

	in := []core.Entry{
		{Date: "2025-09-01", Amount: core.Money{Cents: 999}, Category: "Food, drinks", Note: `he said "hi"`},
	}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested", "dir", "expenses.csv"))

	err := s.Save(context.Background(), nil)
	require.NoError(t, err)

	_, statErr := os.Stat(s.Path())
	assert.NoError(t, statErr)
}
