package entities

import "time"

// Answer statuses.
const (
	AnswerSaved     = "Saved"
	AnswerSubmitted = "Submitted"
)

// Answer is one checklist response for one asset of one audit. The
// (tenant, plan, asset, question) tuple is the unique key: re-submission
// overwrites the row, it never duplicates it.
type Answer struct {
	ID                 string    `gorm:"primaryKey" json:"id"` // uuid
	TenantID           uint      `gorm:"uniqueIndex:ux_answer_slot" json:"-"`
	AuditPlanID        uint      `gorm:"uniqueIndex:ux_answer_slot;index" json:"audit_plan_id"`
	AssetNumber        int       `gorm:"uniqueIndex:ux_answer_slot" json:"asset_number"`
	QuestionIndex      int       `gorm:"uniqueIndex:ux_answer_slot" json:"question_index"`
	QuestionText       string    `json:"question_text"`
	Response           string    `json:"response"`
	ResponseIsNegative bool      `json:"response_is_negative"`
	AssignedNc         string    `json:"assigned_nc"` // department label
	Note               string    `json:"note"`
	EvidenceName       string    `json:"evidence_name"`
	EvidenceDataURL    string    `json:"evidence_data_url"`
	Status             string    `gorm:"index" json:"status"` // Saved|Submitted
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
