package deck

import (
	"reflect"
	"testing"

	"github.com/adamspd/medstudy/models"
)

func record(fields map[string]any) map[string]any {
	rec := map[string]any{
		"number":               1,
		"category":             "Cardiology",
		"uses_image":           false,
		"question":             "Q?",
		"options":              []any{"a", "b", "c"},
		"correct_option_index": 2,
	}
	for k, v := range fields {
		if v == nil {
			delete(rec, k)
			continue
		}
		rec[k] = v
	}
	return rec
}

func TestNormalizeCompleteRecord(t *testing.T) {
	got := Normalize([]any{record(map[string]any{"more_information": "because"})})
	want := []models.Question{{
		ID:                 "Cardiology__1",
		Number:             1,
		Category:           "Cardiology",
		Prompt:             "Q?",
		Options:            []string{"a", "b", "c"},
		CorrectOptionIndex: 2,
		Explanation:        "because",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %+v, want %+v", got, want)
	}
}

func TestNormalizeVisualAidFilter(t *testing.T) {
	tests := []struct {
		name string
		flag any
		kept bool
	}{
		{"false", false, true},
		{"true", true, false},
		{"string false", "false", false},
		{"zero", 0, false},
		{"missing", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize([]any{record(map[string]any{"uses_image": tt.flag})})
			if (len(got) == 1) != tt.kept {
				t.Fatalf("kept = %v, want %v", len(got) == 1, tt.kept)
			}
		})
	}
}

func TestNormalizeNonListInput(t *testing.T) {
	for _, raw := range []any{nil, "text", 42, map[string]any{"a": 1}} {
		got := Normalize(raw)
		if got == nil || len(got) != 0 {
			t.Fatalf("Normalize(%v) = %v, want empty non-nil slice", raw, got)
		}
	}
}

func TestNormalizeDropsNonRecords(t *testing.T) {
	got, report := NormalizeWithReport([]any{"x", 5, record(nil), nil})
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if report.Received != 4 || report.Accepted != 1 || report.Discarded != 3 {
		t.Fatalf("report = %+v", report)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	raw := []any{
		record(map[string]any{"number": 7}),
		record(map[string]any{
			"number":               nil,
			"category":             nil,
			"question":             nil,
			"options":              "not a list",
			"correct_option_index": "2",
		}),
	}
	got, report := NormalizeWithReport(raw)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	q := got[1]
	if q.Number != 1 {
		t.Errorf("Number = %d, want position 1", q.Number)
	}
	if q.Category != models.UnknownCategory {
		t.Errorf("Category = %q, want %q", q.Category, models.UnknownCategory)
	}
	if q.ID != "Unknown__1" {
		t.Errorf("ID = %q, want Unknown__1", q.ID)
	}
	if q.Prompt != "" || len(q.Options) != 0 || q.Options == nil || q.CorrectOptionIndex != 0 {
		t.Errorf("defaults not applied: %+v", q)
	}

	if len(report.Defaulted) != 1 || report.Defaulted[0].ID != "Unknown__1" {
		t.Fatalf("Defaulted = %+v", report.Defaulted)
	}
	wantFields := []string{"number", "category", "question", "options", "correct_option_index"}
	if !reflect.DeepEqual(report.Defaulted[0].Fields, wantFields) {
		t.Fatalf("Fields = %v, want %v", report.Defaulted[0].Fields, wantFields)
	}
}

func TestNormalizeNumberUsesSurvivorPosition(t *testing.T) {
	raw := []any{
		record(map[string]any{"uses_image": true}),
		record(map[string]any{"number": nil}),
	}
	got := Normalize(raw)
	if len(got) != 1 || got[0].Number != 0 || got[0].ID != "Cardiology__0" {
		t.Fatalf("got %+v, want number 0", got)
	}
}

func TestNormalizeAliasesAndMapShapes(t *testing.T) {
	raw := []any{map[any]any{
		"number":             3.0,
		"category":           "Neurology",
		"usesVisualAid":      false,
		"prompt":             "Which nerve?",
		"options":            []any{"V", 7, nil},
		"correctOptionIndex": int64(1),
		"explanation":        "Facial nerve",
	}}
	got := Normalize(raw)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	q := got[0]
	if q.ID != "Neurology__3" || q.Prompt != "Which nerve?" || q.CorrectOptionIndex != 1 || q.Explanation != "Facial nerve" {
		t.Fatalf("got %+v", q)
	}
	if !reflect.DeepEqual(q.Options, []string{"V", "7", ""}) {
		t.Fatalf("Options = %q", q.Options)
	}
}

func TestNormalizeFractionalNumberIsInvalid(t *testing.T) {
	got, report := NormalizeWithReport([]any{record(map[string]any{"number": 2.5})})
	if got[0].Number != 0 {
		t.Fatalf("Number = %d, want 0", got[0].Number)
	}
	if got[0].ID != "Cardiology__2.5" {
		t.Fatalf("ID = %q, want the raw number", got[0].ID)
	}
	if len(report.Defaulted) != 1 || report.Defaulted[0].Fields[0] != "number" {
		t.Fatalf("Defaulted = %+v", report.Defaulted)
	}
}

func TestNormalizeStringNumberKeepsID(t *testing.T) {
	first := Normalize([]any{
		record(map[string]any{"number": "12", "question": "q12"}),
		record(map[string]any{"number": "13", "question": "q13"}),
	})
	if got := ids(first); !reflect.DeepEqual(got, []string{"Cardiology__12", "Cardiology__13"}) {
		t.Fatalf("ids = %v", got)
	}
	if first[0].Number != 0 || first[1].Number != 1 {
		t.Errorf("numbers = %d, %d, want positions", first[0].Number, first[1].Number)
	}

	reordered := Normalize([]any{
		record(map[string]any{"number": "13", "question": "q13"}),
		record(map[string]any{"number": "12", "question": "q12 edited"}),
	})
	merged := Merge(first, reordered)

	want := map[string]string{"Cardiology__12": "q12 edited", "Cardiology__13": "q13"}
	if len(merged) != len(want) {
		t.Fatalf("merged %d questions, want %d", len(merged), len(want))
	}
	for _, q := range merged {
		if want[q.ID] != q.Prompt {
			t.Errorf("%s = %q, want %q", q.ID, q.Prompt, want[q.ID])
		}
	}
}
