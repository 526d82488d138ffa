// Package session implements the interactive console loop: a five-action
// menu over the ledger and report views, with retry-until-valid prompts.
//
// Field validation errors never leave this loop; they render as messages
// and re-prompt. Storage write failures are the only errors surfaced.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"expenselog/internal/core"
	"expenselog/internal/input"
	"expenselog/internal/ledger"
	"expenselog/internal/report"
)

type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	ledger *ledger.Ledger
	now    func() time.Time
	logger *slog.Logger
}

func New(in io.Reader, out io.Writer, l *ledger.Ledger, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		ledger: l,
		now:    time.Now,
		logger: logger,
	}
}

// WithClock overrides the clock used for the default entry date.
func (s *Session) WithClock(now func() time.Time) *Session {
	s.now = now
	return s
}

// Run drives the menu until the user exits or input ends. Both paths save
// the ledger one final time; a failed final save is returned to the caller.
func (s *Session) Run(ctx context.Context) error {
	for {
		s.printf("\n==== Expense Tracker ====\n")
		s.printf("1) Add expense\n")
		s.printf("2) List expenses\n")
		s.printf("3) Report by category\n")
		s.printf("4) Save now\n")
		s.printf("0) Exit\n")

		choice, ok := s.readLine("Select: ")
		if !ok {
			return s.finalSave(ctx)
		}

		switch choice {
		case "1":
			if !s.addExpense(ctx) {
				return s.finalSave(ctx)
			}
		case "2":
			s.listExpenses()
		case "3":
			s.reportByCategory()
		case "4":
			if err := s.ledger.Save(ctx); err != nil {
				s.saveFailed(ctx, err)
			} else {
				s.printf("Saved.\n")
			}
		case "0":
			if err := s.ledger.Save(ctx); err != nil {
				s.saveFailed(ctx, err)
				return err
			}
			s.printf("Bye!\n")
			return nil
		default:
			s.printf("Invalid choice. Try 0-4.\n")
		}
	}
}

// addExpense walks the add flow. It returns false when input ended before
// the flow completed.
func (s *Session) addExpense(ctx context.Context) bool {
	s.printf("\nAdd Expense\n")
	today := s.now().Format("2006-01-02")

	var date string
	for {
		raw, ok := s.readLine(fmt.Sprintf("Date (YYYY-MM-DD) [%s]: ", today))
		if !ok {
			return false
		}
		d, err := input.Date(raw, s.now())
		if err != nil {
			s.printf("Please use YYYY-MM-DD (e.g., 2025-09-01).\n")
			continue
		}
		date = d
		break
	}

	var amount core.Money
	for {
		raw, ok := s.readLine("Amount: ")
		if !ok {
			return false
		}
		a, err := input.Amount(raw)
		switch {
		case errors.Is(err, core.ErrNonPositiveAmount):
			s.printf("Amount must be > 0.\n")
			continue
		case err != nil:
			s.printf("Enter a valid number (e.g., 199.99).\n")
			continue
		}
		amount = a
		break
	}

	category, ok := s.pickCategory()
	if !ok {
		return false
	}

	note, ok := s.readLine("Note (optional): ")
	if !ok {
		return false
	}

	e := core.Entry{Date: date, Amount: amount, Category: category, Note: note}
	if err := s.ledger.Append(ctx, e); err != nil {
		s.saveFailed(ctx, err)
		return true
	}
	s.printf("Saved.\n")
	return true
}

func (s *Session) pickCategory() (string, bool) {
	s.printf("\nChoose a category:\n")
	for i, c := range core.SuggestedCategories {
		s.printf("  %d. %s\n", i+1, c)
	}
	s.printf("  0. Custom\n")

	choice, ok := s.readLine("Enter number (or type name): ")
	if !ok {
		return "", false
	}
	category, wantCustom := input.Category(choice, core.SuggestedCategories)
	if wantCustom {
		custom, ok := s.readLine("Type custom category: ")
		if !ok {
			return "", false
		}
		category = input.CustomCategory(custom)
	}
	return category, true
}

func (s *Session) listExpenses() {
	s.printf("\nYour Expenses (latest first)\n")
	l, err := report.NewListing(s.ledger.Entries())
	if errors.Is(err, report.ErrNoEntries) {
		s.printf("No expenses yet.\n")
		return
	}
	for _, row := range l.Rows {
		s.printf("%d. %s  %s  [%s]  %s\n",
			row.Index, row.Entry.Date, row.Entry.Amount, row.Entry.Category, row.Entry.Note)
	}
	s.printf("Total: %s (%d items)\n", l.Total, l.Count)
}

func (s *Session) reportByCategory() {
	s.printf("\nTotals by Category\n")
	r, err := report.ByCategory(s.ledger.Entries())
	if errors.Is(err, report.ErrNoEntries) {
		s.printf("No data yet.\n")
		return
	}
	for _, c := range r.Totals {
		s.printf("- %s: %s\n", c.Name, c.Amount)
	}
	s.printf("Grand Total: %s\n", r.GrandTotal)
}

// finalSave runs the end-of-input save, mirroring the explicit exit action.
func (s *Session) finalSave(ctx context.Context) error {
	if err := s.ledger.Save(ctx); err != nil {
		s.saveFailed(ctx, err)
		return err
	}
	s.printf("Bye!\n")
	return nil
}

func (s *Session) saveFailed(ctx context.Context, err error) {
	s.logger.ErrorContext(ctx, "Failed to save ledger", "error", err)
	s.printf("Could not save: %v\n", err)
}

func (s *Session) readLine(prompt string) (string, bool) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
