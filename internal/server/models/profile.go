package models

import "time"

// Seniority levels accepted for candidate profiles.
var SeniorityLevels = []string{"Junior", "Semi-Senior", "Senior", "Lead"}

// ValidSeniority reports whether s is one of the accepted levels.
func ValidSeniority(s string) bool {
	for _, v := range SeniorityLevels {
		if v == s {
			return true
		}
	}
	return false
}

// Profile is the candidate-facing profile: skills, seniority and free-form
// experience/education text. The CV itself lives in object storage; CVKey
// holds its storage key.
type Profile struct {
	Email       string    `json:"email"`
	Nombre      string    `json:"nombre"`
	Seniority   *string   `json:"seniority"`
	Skills      []string  `json:"skills"`
	Experiencia string    `json:"experiencia"`
	Educacion   string    `json:"educacion"`
	CVKey       string    `json:"cv_key,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
