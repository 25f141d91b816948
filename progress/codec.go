package progress

import (
	"encoding/json"

	"github.com/adamspd/medstudy/models"
)

// EncodeLedger serializes the ledger for durable storage.
func EncodeLedger(l models.Ledger) ([]byte, error) {
	return json.Marshal(Clone(l))
}

// DecodeLedger reads a stored ledger. It never fails: an unreadable blob
// gives the empty ledger, and a single unreadable field falls back to its
// empty value while the other fields are kept.
func DecodeLedger(data []byte) models.Ledger {
	l := EmptyLedger()
	if len(data) == 0 {
		return l
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return l
	}

	if raw, ok := fields["perQuestion"]; ok {
		var pq map[string]models.QuestionProgress
		if err := json.Unmarshal(raw, &pq); err == nil && pq != nil {
			l.PerQuestion = pq
		}
	}
	if raw, ok := fields["daily"]; ok {
		var daily map[string]models.DayProgress
		if err := json.Unmarshal(raw, &daily); err == nil && daily != nil {
			l.Daily = daily
		}
	}
	if raw, ok := fields["streak"]; ok {
		var streak int
		if err := json.Unmarshal(raw, &streak); err == nil && streak > 0 {
			l.Streak = streak
		}
	}
	if raw, ok := fields["lastStudyDate"]; ok {
		var last string
		if err := json.Unmarshal(raw, &last); err == nil {
			l.LastStudyDate = last
		}
	}
	return l
}
