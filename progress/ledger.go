// Package progress maintains the study ledger: per-question and per-day
// attempt counters plus the daily streak.
package progress

import (
	"time"

	"github.com/adamspd/medstudy/models"
)

// DayLayout is the format of ledger day keys.
const DayLayout = "2006-01-02"

// EmptyLedger returns a ledger with no recorded attempts.
func EmptyLedger() models.Ledger {
	return models.Ledger{
		PerQuestion: make(map[string]models.QuestionProgress),
		Daily:       make(map[string]models.DayProgress),
	}
}

// DayKey is the local calendar day of t.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// PreviousDay is the day key of the calendar day before t, in t's location.
// Noon is used so DST transitions cannot shift the date.
func PreviousDay(t time.Time) string {
	y, m, d := t.Date()
	return DayKey(time.Date(y, m, d-1, 12, 0, 0, 0, t.Location()))
}

// RecordStudy returns l with one graded attempt on questionID applied at
// now. l itself is left untouched.
//
// The streak only moves on the first attempt of a day: +1 when the previous
// study day was yesterday, otherwise back to 1.
func RecordStudy(l models.Ledger, questionID string, correct bool, now time.Time) models.Ledger {
	today := DayKey(now)
	next := Clone(l)

	day := next.Daily[today]
	day.StudiedCount++
	if correct {
		day.CorrectCount++
	} else {
		day.IncorrectCount++
	}
	next.Daily[today] = day

	if next.LastStudyDate != today {
		if next.LastStudyDate == PreviousDay(now) {
			next.Streak++
		} else {
			next.Streak = 1
		}
	}

	pq := next.PerQuestion[questionID]
	if correct {
		pq.CorrectCount++
	} else {
		pq.IncorrectCount++
	}
	pq.LastStudiedDay = today
	next.PerQuestion[questionID] = pq

	next.LastStudyDate = today
	return next
}

// Clone deep-copies l, allocating maps that are nil.
func Clone(l models.Ledger) models.Ledger {
	c := models.Ledger{
		PerQuestion:   make(map[string]models.QuestionProgress, len(l.PerQuestion)+1),
		Daily:         make(map[string]models.DayProgress, len(l.Daily)+1),
		Streak:        l.Streak,
		LastStudyDate: l.LastStudyDate,
	}
	for id, p := range l.PerQuestion {
		c.PerQuestion[id] = p
	}
	for day, p := range l.Daily {
		c.Daily[day] = p
	}
	return c
}

// CurrentStreak is the streak as it stands on now: a streak whose last study
// day is older than yesterday has lapsed and reads as 0. The stored value
// is only corrected by the next RecordStudy.
func CurrentStreak(l models.Ledger, now time.Time) int {
	if l.LastStudyDate == DayKey(now) || l.LastStudyDate == PreviousDay(now) {
		return l.Streak
	}
	return 0
}
