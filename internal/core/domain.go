package core

import "errors"

// SuggestedCategories is the fixed list offered when adding an entry.
// Category input is free-form; this list only seeds the picker.
var SuggestedCategories = []string{
	"Food",
	"Transport",
	"Bills",
	"Entertainment",
	"Shopping",
	"Health",
	"Other",
}

// FallbackCategory is used whenever category input resolves to nothing.
const FallbackCategory = "Other"

type (
	Money struct {
		Cents int64
	}

	// Entry is a single logged expense. Date holds the literal ISO-8601
	// YYYY-MM-DD text: loads are lenient and keep whatever the file
	// contained, so it is not re-parsed into a time.Time here.
	Entry struct {
		Date     string
		Amount   Money
		Category string
		Note     string
	}
)

var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)

// Add returns the sum of two amounts.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}
