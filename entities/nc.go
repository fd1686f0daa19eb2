package entities

import "time"

// NC record statuses. Assigned is the initial state; Closed ends a
// remediation cycle but the row is never deleted.
const (
	NcAssigned            = "Assigned"
	NcInProgress          = "In Progress"
	NcResolutionSubmitted = "Resolution Submitted"
	NcRework              = "Rework"
	NcClosed              = "Closed"
)

// NcRecord is the remediation task spawned by a negative submitted answer.
// At most one record exists per answer.
type NcRecord struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	TenantID          uint      `gorm:"uniqueIndex:ux_nc_answer" json:"-"`
	AnswerID          string    `gorm:"uniqueIndex:ux_nc_answer" json:"answer_id"`
	RootCause         string    `json:"root_cause"`
	ContainmentAction string    `json:"containment_action"`
	CorrectiveAction  string    `json:"corrective_action"`
	PreventiveAction  string    `json:"preventive_action"`
	EvidenceName      string    `json:"evidence_name"`
	AssignedUserID    *uint     `json:"assigned_user_id"`
	Status            string    `gorm:"index" json:"status"` // Assigned|In Progress|Resolution Submitted|Rework|Closed
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NcOpen reports whether a status still blocks audit completion.
func NcOpen(status string) bool {
	switch status {
	case NcAssigned, NcInProgress, NcRework:
		return true
	}
	return false
}
