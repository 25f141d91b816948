package models

import "fmt"

const (
	// AllCategories is the category filter value that disables filtering.
	AllCategories = "All"
	// UnknownCategory replaces a missing or empty category on import.
	UnknownCategory = "Unknown"
	// OtherCategory labels progress entries whose question is no longer in the store.
	OtherCategory = "Other"
)

func (q *Question) IsCorrect(option int) bool {
	return option == q.CorrectOptionIndex
}

func (q *Question) HasOption(option int) bool {
	return option >= 0 && option < len(q.Options)
}

// DisplayID is the short "#number" label shown in the corner of a card.
func (q *Question) DisplayID() string {
	return fmt.Sprintf("#%d", q.Number)
}

// OptionLabel returns the letter shown before an option ("A", "B", ...).
func OptionLabel(option int) string {
	if option < 0 || option >= 26 {
		return fmt.Sprintf("%d", option+1)
	}
	return string(rune('A' + option))
}
