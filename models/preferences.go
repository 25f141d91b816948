package models

import "time"

// SessionSettings represents the stored start-screen choices
type SessionSettings struct {
	CategoryFilter string    `json:"category_filter"`
	Randomize      bool      `json:"randomize"`
	Size           int       `json:"size"`
	ShowInfo       bool      `json:"show_info"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SessionSettingsRequest for updating preferences
type SessionSettingsRequest struct {
	CategoryFilter *string `json:"category_filter,omitempty"`
	Randomize      *bool   `json:"randomize,omitempty"`
	Size           *int    `json:"size,omitempty"`
	ShowInfo       *bool   `json:"show_info,omitempty"`
}

const (
	MinSessionSize = 1
	MaxSessionSize = 200
)

// GetDefaultSettings returns the settings used before anything was saved
func GetDefaultSettings() *SessionSettings {
	return &SessionSettings{
		CategoryFilter: AllCategories,
		Randomize:      true,
		Size:           20,
		ShowInfo:       true,
		UpdatedAt:      time.Now(),
	}
}

// Apply copies the non-nil fields of the request onto s
func (r *SessionSettingsRequest) Apply(s *SessionSettings) {
	if r.CategoryFilter != nil {
		s.CategoryFilter = *r.CategoryFilter
	}
	if r.Randomize != nil {
		s.Randomize = *r.Randomize
	}
	if r.Size != nil {
		s.Size = *r.Size
	}
	if r.ShowInfo != nil {
		s.ShowInfo = *r.ShowInfo
	}
}
