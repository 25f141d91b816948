// Package deck turns imported question data into a deduplicated question
// store and builds study sessions from it.
package deck

import (
	"fmt"
	"math"
	"strconv"

	"github.com/adamspd/medstudy/models"
)

// Field keys accepted in source records. The first key is the one used by
// the bundled data; the rest are aliases.
var (
	keysNumber      = []string{"number"}
	keysCategory    = []string{"category"}
	keysVisualAid   = []string{"uses_image", "usesVisualAid"}
	keysPrompt      = []string{"question", "prompt"}
	keysOptions     = []string{"options"}
	keysCorrect     = []string{"correct_option_index", "correctOptionIndex"}
	keysExplanation = []string{"more_information", "explanation"}
)

// Normalize converts parsed source data into canonical questions. Entries
// that are not records, or whose uses_image field is not explicitly false,
// are dropped. It never fails: bad fields fall back to defaults.
func Normalize(raw any) []models.Question {
	questions, _ := NormalizeWithReport(raw)
	return questions
}

// NormalizeWithReport is Normalize plus a report of the dropped entries and
// the fields that had to be defaulted on each accepted one.
func NormalizeWithReport(raw any) ([]models.Question, models.NormalizeReport) {
	var report models.NormalizeReport

	items, ok := raw.([]any)
	if !ok {
		return []models.Question{}, report
	}
	report.Received = len(items)

	questions := make([]models.Question, 0, len(items))
	for _, item := range items {
		rec, ok := asRecord(item)
		if !ok {
			report.Discarded++
			continue
		}
		if v, ok := lookup(rec, keysVisualAid); !ok || v != false {
			report.Discarded++
			continue
		}

		q, defaulted := normalizeRecord(rec, len(questions))
		questions = append(questions, q)
		if len(defaulted) > 0 {
			report.Defaulted = append(report.Defaulted, models.DefaultedEntry{ID: q.ID, Fields: defaulted})
		}
	}
	report.Accepted = len(questions)

	return questions, report
}

func normalizeRecord(rec map[string]any, position int) (models.Question, []string) {
	var defaulted []string

	// The id keeps the raw number whenever one is given, so a non-numeric
	// number still identifies the same question across re-imports.
	key := ""
	if v, ok := lookup(rec, keysNumber); ok && v != nil {
		key = stringify(v)
	}
	number, ok := lookupInt(rec, keysNumber)
	if !ok {
		number = position
		defaulted = append(defaulted, "number")
	}
	if key == "" {
		key = strconv.Itoa(number)
	}

	category := ""
	if v, ok := lookup(rec, keysCategory); ok {
		category = stringify(v)
	}
	if category == "" {
		category = models.UnknownCategory
		defaulted = append(defaulted, "category")
	}

	prompt := ""
	if v, ok := lookup(rec, keysPrompt); ok && v != nil {
		prompt = stringify(v)
	} else {
		defaulted = append(defaulted, "question")
	}

	options := []string{}
	if v, ok := lookup(rec, keysOptions); ok {
		if list, isList := v.([]any); isList {
			for _, opt := range list {
				options = append(options, stringify(opt))
			}
		} else {
			defaulted = append(defaulted, "options")
		}
	} else {
		defaulted = append(defaulted, "options")
	}

	correct, ok := lookupInt(rec, keysCorrect)
	if !ok {
		correct = 0
		defaulted = append(defaulted, "correct_option_index")
	}

	explanation := ""
	if v, ok := lookup(rec, keysExplanation); ok && v != nil {
		explanation = stringify(v)
	}

	return models.Question{
		ID:                 QuestionID(category, key),
		Number:             number,
		Category:           category,
		UsesVisualAid:      false,
		Prompt:             prompt,
		Options:            options,
		CorrectOptionIndex: correct,
		Explanation:        explanation,
	}, defaulted
}

// QuestionID derives the stable identity of a question.
func QuestionID(category, number string) string {
	return category + "__" + number
}

// asRecord accepts both map shapes a YAML decoder can produce.
func asRecord(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		rec := make(map[string]any, len(m))
		for k, val := range m {
			rec[fmt.Sprint(k)] = val
		}
		return rec, true
	}
	return nil, false
}

func lookup(rec map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := rec[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// lookupInt only accepts numbers; numeric strings count as invalid.
func lookupInt(rec map[string]any, keys []string) (int, bool) {
	v, ok := lookup(rec, keys)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return integral(float64(n))
	case float64:
		return integral(n)
	}
	return 0, false
}

func integral(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		if n, ok := integral(s); ok {
			return fmt.Sprintf("%d", n)
		}
	}
	return fmt.Sprint(v)
}
