package deck

import (
	"errors"
	"testing"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		text    string
		wantLen int
		wantErr bool
	}{
		{"yaml list", "q.yaml", "- number: 1\n  category: A\n- number: 2\n", 2, false},
		{"json list", "q.json", `[{"number": 1}, {"number": 2}, {"number": 3}]`, 3, false},
		{"json suffix case", "Q.JSON", `[]`, 0, false},
		{"yaml scalar", "q.yaml", "just text", 0, false},
		{"yaml mapping", "q.yml", "a: 1\n", 0, false},
		{"empty", "q.yaml", "", 0, false},
		{"bad yaml", "q.yaml", "- [unclosed", 0, true},
		{"bad json", "q.json", `[{"number": }]`, 0, true},
		{"yaml parser accepts json", "q.txt", `[{"number": 1}]`, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseSource(tt.file, []byte(tt.text))
			if tt.wantErr {
				if !errors.Is(err, ErrUnparseable) {
					t.Fatalf("err = %v, want ErrUnparseable", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(items) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(items), tt.wantLen)
			}
		})
	}
}

func TestParseThenNormalizeYAML(t *testing.T) {
	text := `
- number: 4
  category: Endocrinology
  uses_image: false
  question: First-line drug for type 2 diabetes?
  options: [Metformin, Insulin]
  correct_option_index: 0
- number: 5
  category: Endocrinology
  uses_image: true
  question: Identify the gland
  options: [Thyroid, Adrenal]
  correct_option_index: 0
`
	items, err := ParseSource("endo.yaml", []byte(text))
	if err != nil {
		t.Fatal(err)
	}
	got := Normalize(items)
	if len(got) != 1 || got[0].ID != "Endocrinology__4" {
		t.Fatalf("got %+v", got)
	}
}
