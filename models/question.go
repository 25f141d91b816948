package models

import "time"

// Question represents a normalized multiple-choice question
type Question struct {
	ID                 string   `json:"id"`
	Number             int      `json:"number"`
	Category           string   `json:"category"`
	UsesVisualAid      bool     `json:"uses_image"`
	Prompt             string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
	Explanation        string   `json:"more_information,omitempty"`
}

// NormalizeReport describes what the normalizer had to fill in or drop
type NormalizeReport struct {
	Received  int              `json:"received"`
	Accepted  int              `json:"accepted"`
	Discarded int              `json:"discarded"`
	Defaulted []DefaultedEntry `json:"defaulted,omitempty"`
}

// DefaultedEntry lists the fields of one accepted record that took a default value
type DefaultedEntry struct {
	ID     string   `json:"id"`
	Fields []string `json:"fields"`
}

// Import types
type ImportSource struct {
	Name string `json:"name"`
	Data []byte `json:"-"`
}

type ImportResult struct {
	Sources           []SourceReport   `json:"sources"`
	TotalQuestions    int              `json:"total_questions"`
	ImportedQuestions int              `json:"imported_questions"`
	NewQuestions      int              `json:"new_questions"`
	UpdatedQuestions  int              `json:"updated_questions"`
	SkippedQuestions  int              `json:"skipped_questions"`
	StoreSize         int              `json:"store_size"`
	Errors            []string         `json:"errors"`
	Defaulted         []DefaultedEntry `json:"defaulted,omitempty"`
	TimeTaken         string           `json:"time_taken"`
}

// SourceReport summarises one imported file or paste
type SourceReport struct {
	Name        string `json:"name"`
	Fingerprint string `json:"fingerprint"`
	Accepted    int    `json:"accepted"`
	Discarded   int    `json:"discarded"`
	Error       string `json:"error,omitempty"`
}

// ImportRecord is one row of the import history
type ImportRecord struct {
	ID          int       `json:"id"`
	SourceName  string    `json:"source_name"`
	Fingerprint string    `json:"fingerprint"`
	Accepted    int       `json:"accepted"`
	Discarded   int       `json:"discarded"`
	ImportedAt  time.Time `json:"imported_at"`
}
