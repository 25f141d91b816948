package progress

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/adamspd/medstudy/models"
)

const (
	TimelineDays        = 30
	WeakAreaMinAttempts = 3
	WeakAreaLimit       = 3
)

// Summarize computes the progress panel figures from the ledger.
func Summarize(l models.Ledger, questions []models.Question, now time.Time) *models.Stats {
	stats := &models.Stats{
		TotalQuestions: len(questions),
		Streak:         CurrentStreak(l, now),
		StoredStreak:   l.Streak,
		LastStudyDate:  l.LastStudyDate,
		Timeline:       make([]models.DayPoint, 0, TimelineDays),
		WeakAreas:      make([]models.WeakArea, 0, WeakAreaLimit),
		Categories:     make(map[string]models.CategoryStat),
	}

	for _, d := range l.Daily {
		stats.TotalStudied += d.StudiedCount
		stats.TotalCorrect += d.CorrectCount
	}
	if stats.TotalStudied > 0 {
		stats.Accuracy = float64(stats.TotalCorrect) / float64(stats.TotalStudied)
	}

	y, m, d := now.Date()
	for i := TimelineDays - 1; i >= 0; i-- {
		key := DayKey(time.Date(y, m, d-i, 12, 0, 0, 0, now.Location()))
		day := l.Daily[key]
		stats.Timeline = append(stats.Timeline, models.DayPoint{
			Day:     key,
			Studied: day.StudiedCount,
			Correct: day.CorrectCount,
		})
	}

	categoryOf := make(map[string]string, len(questions))
	for _, q := range questions {
		categoryOf[q.ID] = q.Category
	}

	var weak []models.WeakArea
	for id, p := range l.PerQuestion {
		category, ok := categoryOf[id]
		if !ok {
			category = models.OtherCategory
		}

		cs := stats.Categories[category]
		cs.Answered += p.Attempts()
		cs.Correct += p.CorrectCount
		stats.Categories[category] = cs

		if p.Attempts() < WeakAreaMinAttempts {
			continue
		}
		weak = append(weak, models.WeakArea{
			QuestionID: id,
			Category:   category,
			Attempts:   p.Attempts(),
			Accuracy:   float64(p.CorrectCount) / float64(p.Attempts()),
		})
	}

	// ties broken by id so the order does not depend on map iteration
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Accuracy != weak[j].Accuracy {
			return weak[i].Accuracy < weak[j].Accuracy
		}
		return weak[i].QuestionID < weak[j].QuestionID
	})
	if len(weak) > WeakAreaLimit {
		weak = weak[:WeakAreaLimit]
	}
	stats.WeakAreas = append(stats.WeakAreas, weak...)

	return stats
}

// FormatPct renders a ratio as a whole percentage, "0%" when not finite.
func FormatPct(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0%"
	}
	return fmt.Sprintf("%d%%", int(math.Round(f*100)))
}
