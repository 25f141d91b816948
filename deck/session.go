package deck

import (
	"math/rand"

	"github.com/adamspd/medstudy/models"
)

// BuildSession derives the working set for one study run: image-free
// questions, narrowed to settings.CategoryFilter unless it is "All",
// shuffled when settings.Randomize is set, and cut to max(1, Size) items.
// A nil rng uses the shared source. store is never modified.
func BuildSession(store []models.Question, settings models.SessionSettings, rng *rand.Rand) []models.Question {
	filtered := make([]models.Question, 0, len(store))
	for _, q := range store {
		if q.UsesVisualAid {
			continue
		}
		if settings.CategoryFilter != models.AllCategories && q.Category != settings.CategoryFilter {
			continue
		}
		filtered = append(filtered, q)
	}

	if settings.Randomize {
		shuffle(filtered, rng)
	}

	size := settings.Size
	if size < 1 {
		size = 1
	}
	if size < len(filtered) {
		filtered = filtered[:size]
	}
	return filtered
}

// shuffle is an in-place Fisher-Yates shuffle
func shuffle(questions []models.Question, rng *rand.Rand) {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	for i := len(questions) - 1; i > 0; i-- {
		j := intn(i + 1)
		questions[i], questions[j] = questions[j], questions[i]
	}
}

// Categories returns "All" followed by each distinct category in store order.
func Categories(store []models.Question) []string {
	categories := []string{models.AllCategories}
	seen := make(map[string]bool)
	for _, q := range store {
		if seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		categories = append(categories, q.Category)
	}
	return categories
}

// CountByCategory returns how many questions each category holds.
func CountByCategory(store []models.Question) map[string]int {
	counts := make(map[string]int)
	for _, q := range store {
		counts[q.Category]++
	}
	return counts
}
