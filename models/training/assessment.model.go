package training

import (
	"time"

	"gorm.io/gorm"
)

// Assessment result values.
const (
	ResultPass = "PASS"
	ResultFail = "FAIL"
)

// AssessmentResult is the per-(participant, category) outcome. Re-assessment
// overwrites the row, it never appends. CategoryWeight is captured at
// assessment time so later weight reconfiguration does not rewrite history.
type AssessmentResult struct {
	gorm.Model
	ParticipantID  uint      `json:"participant_id" gorm:"index;not null;uniqueIndex:idx_participant_category"`
	CategoryID     uint      `json:"category_id" gorm:"index;not null;uniqueIndex:idx_participant_category"`
	Result         string    `json:"result"` // PASS, FAIL
	CategoryWeight float64   `json:"category_weight"`
	AssessmentDate time.Time `json:"assessment_date"`
	AssessorID     uint      `json:"assessor_id"`
}
