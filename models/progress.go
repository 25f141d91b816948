package models

// Ledger is the durable aggregate of every recorded study attempt
type Ledger struct {
	PerQuestion   map[string]QuestionProgress `json:"perQuestion"`
	Daily         map[string]DayProgress      `json:"daily"`
	Streak        int                         `json:"streak"`
	LastStudyDate string                      `json:"lastStudyDate"`
}

// QuestionProgress holds the attempt counters of a single question
type QuestionProgress struct {
	CorrectCount   int    `json:"correct"`
	IncorrectCount int    `json:"incorrect"`
	LastStudiedDay string `json:"last"`
}

func (p QuestionProgress) Attempts() int {
	return p.CorrectCount + p.IncorrectCount
}

// DayProgress holds the attempt counters of one calendar day
type DayProgress struct {
	StudiedCount   int `json:"studied"`
	CorrectCount   int `json:"correct"`
	IncorrectCount int `json:"incorrect"`
}

// ProgressRequest for recording a graded answer
type ProgressRequest struct {
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
}

// Stats represents the locally computed progress summary
type Stats struct {
	TotalQuestions int                     `json:"total_questions"`
	TotalStudied   int                     `json:"total_studied"`
	TotalCorrect   int                     `json:"total_correct"`
	Accuracy       float64                 `json:"accuracy"`
	Streak         int                     `json:"streak"`
	StoredStreak   int                     `json:"stored_streak"`
	LastStudyDate  string                  `json:"last_study_date,omitempty"`
	Timeline       []DayPoint              `json:"timeline"`
	WeakAreas      []WeakArea              `json:"weak_areas"`
	Categories     map[string]CategoryStat `json:"categories"`
}

// DayPoint is one entry of the recent-activity timeline
type DayPoint struct {
	Day     string `json:"day"`
	Studied int    `json:"studied"`
	Correct int    `json:"correct"`
}

// WeakArea is a frequently missed question
type WeakArea struct {
	QuestionID string  `json:"question_id"`
	Category   string  `json:"category"`
	Attempts   int     `json:"attempts"`
	Accuracy   float64 `json:"accuracy"`
}

// CategoryStat represents stats for a specific category
type CategoryStat struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}
