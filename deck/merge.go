package deck

import "github.com/adamspd/medstudy/models"

// Merge combines the current store with imported questions. Incoming
// questions replace existing ones with the same id in place; new ids are
// appended in arrival order.
func Merge(existing, incoming []models.Question) []models.Question {
	position := make(map[string]int, len(existing)+len(incoming))
	merged := make([]models.Question, 0, len(existing)+len(incoming))

	put := func(q models.Question) {
		if i, ok := position[q.ID]; ok {
			merged[i] = q
			return
		}
		position[q.ID] = len(merged)
		merged = append(merged, q)
	}

	for _, q := range existing {
		put(q)
	}
	for _, q := range incoming {
		put(q)
	}
	return merged
}

// MergeCounts reports how many incoming ids were new and how many replaced
// an existing question.
func MergeCounts(existing, incoming []models.Question) (added, updated int) {
	stored := make(map[string]bool, len(existing))
	for _, q := range existing {
		stored[q.ID] = true
	}
	counted := make(map[string]bool, len(incoming))
	for _, q := range incoming {
		if counted[q.ID] {
			continue
		}
		counted[q.ID] = true
		if stored[q.ID] {
			updated++
		} else {
			added++
		}
	}
	return added, updated
}
