package repository

import "audir/entities"

// RegisterRow is the joined register view the NC management surface reads:
// answer + owning plan + record + assignee.
type RegisterRow struct {
	AnswerID              string `json:"answer_id"`
	AssetNumber           int    `json:"asset_number"`
	QuestionIndex         int    `json:"question_index"`
	QuestionText          string `json:"question_text"`
	Response              string `json:"response"`
	AssignedNc            string `json:"assigned_nc"`
	Note                  string `json:"note"`
	SubmittedAt           string `json:"submitted_at"`
	AuditCode             string `json:"audit_code"`
	AuditType             string `json:"audit_type"`
	AuditSubtype          string `json:"audit_subtype"`
	StartDate             string `json:"start_date"`
	EndDate               string `json:"end_date"`
	AuditorName           string `json:"auditor_name"`
	RootCause             string `json:"root_cause"`
	ContainmentAction     string `json:"containment_action"`
	CorrectiveAction      string `json:"corrective_action"`
	PreventiveAction      string `json:"preventive_action"`
	EvidenceName          string `json:"evidence_name"`
	AssignedUserID        *uint  `json:"assigned_user_id"`
	AssignedUserFirstName string `json:"assigned_user_first_name"`
	AssignedUserLastName  string `json:"assigned_user_last_name"`
	AssignedUserEmail     string `json:"assigned_user_email"`
	NcStatus              string `json:"nc_status"`
}

type NcRepository interface {
	// EnsureForAnswer creates the record in Assigned state if it does not
	// exist, otherwise leaves the existing record untouched. Safe to call on
	// every negative submit.
	EnsureForAnswer(tenantID uint, answerID string) (*entities.NcRecord, error)
	FindByAnswer(tenantID uint, answerID string) (*entities.NcRecord, error)
	Save(rec *entities.NcRecord) error
	ClearAssignee(tenantID uint, answerID string) error
	ListJoined(tenantID uint) ([]RegisterRow, error)
	HasOpenForPlan(tenantID, planID uint) (bool, error)
	HasPendingReviewForPlan(tenantID, planID uint) (bool, error)
}
