package sessions

import (
	"time"

	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/study"
)

// View is the client-facing state of a run. The correct option and the
// explanation are only included once the card is revealed or answered.
type View struct {
	ID        string         `json:"id"`
	Mode      study.Mode     `json:"mode"`
	Index     int            `json:"index"`
	Total     int            `json:"total"`
	Current   *CardView      `json:"current,omitempty"`
	Revealed  bool           `json:"revealed,omitempty"`
	Selected  *int           `json:"selected,omitempty"`
	Answered  bool           `json:"answered,omitempty"`
	Score     int            `json:"score"`
	Complete  bool           `json:"complete"`
	ShowInfo  bool           `json:"show_info"`
	ExpiresAt time.Time      `json:"expires_at"`
	Outcome   *study.Outcome `json:"outcome,omitempty"`
}

type CardView struct {
	ID           string   `json:"id"`
	DisplayID    string   `json:"display_id"`
	Category     string   `json:"category"`
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correct_option_index,omitempty"`
	Explanation  string   `json:"more_information,omitempty"`
}

func (r *Run) view() View {
	v := View{
		ID:        r.ID,
		Mode:      r.Mode,
		ShowInfo:  r.Settings.ShowInfo,
		ExpiresAt: r.ExpiresAt,
	}

	var current models.Question
	var ok, disclose bool

	switch r.Mode {
	case study.ModeFlashcards:
		f := r.Flashcards
		v.Index, v.Total = f.Index(), f.Len()
		v.Revealed = f.Revealed()
		v.Complete = f.Complete()
		current, ok = f.Current()
		disclose = f.Revealed()
	case study.ModeQuiz:
		q := r.Quiz
		v.Index, v.Total = q.Index(), q.Len()
		v.Answered = q.Answered()
		v.Score = q.Score()
		v.Complete = q.Complete()
		if sel, has := q.Selected(); has {
			v.Selected = &sel
		}
		current, ok = q.Current()
		disclose = q.Answered()
	}

	if ok {
		card := &CardView{
			ID:        current.ID,
			DisplayID: current.DisplayID(),
			Category:  current.Category,
			Prompt:    current.Prompt,
			Options:   current.Options,
		}
		if disclose {
			correct := current.CorrectOptionIndex
			card.CorrectIndex = &correct
			if r.Settings.ShowInfo {
				card.Explanation = current.Explanation
			}
		}
		v.Current = card
	}
	return v
}
