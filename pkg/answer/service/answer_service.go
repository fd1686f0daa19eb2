package service

import (
	"audir/entities"
	"audir/pkg/identity"
)

// UpsertRequest is one field submission. Either AuditCode or AuditPlanID
// must resolve.
type UpsertRequest struct {
	AuditCode          string `json:"audit_code"`
	AuditPlanID        uint   `json:"audit_plan_id"`
	AssetNumber        *int   `json:"asset_number"`
	QuestionIndex      int    `json:"question_index"`
	QuestionText       string `json:"question_text"`
	Response           string `json:"response"`
	ResponseIsNegative bool   `json:"response_is_negative"`
	AssignedNc         string `json:"assigned_nc"`
	Note               string `json:"note"`
	EvidenceName       string `json:"evidence_name"`
	EvidenceDataURL    string `json:"evidence_data_url"`
	Status             string `json:"status"` // Saved|Submitted, default Saved
}

type AnswerService interface {
	Upsert(id identity.Identity, req UpsertRequest) (*entities.Answer, error)
	ListByAuditCode(id identity.Identity, code string) ([]entities.Answer, error)
}
