package service

import (
	"audir/entities"
	"audir/pkg/identity"
	"audir/pkg/nc/repository"
)

// Policy selects who may save/submit a resolution. The department-wide rule
// is the current behavior; the assigned-user rule is the older, narrower one
// kept available as configuration.
type Policy string

const (
	PolicyDepartment   Policy = "department"
	PolicyAssignedUser Policy = "assigned_user"
)

// ActionFields carries the remediation text; nil leaves a field untouched.
type ActionFields struct {
	RootCause         *string `json:"root_cause"`
	ContainmentAction *string `json:"containment_action"`
	CorrectiveAction  *string `json:"corrective_action"`
	PreventiveAction  *string `json:"preventive_action"`
	EvidenceName      *string `json:"evidence_name"`
}

type NcService interface {
	// UpsertAction moves a record through the status machine:
	// Assigned/Rework -> In Progress -> Resolution Submitted -> Closed|Rework.
	// Guard failures return before any write.
	UpsertAction(id identity.Identity, answerID string, fields ActionFields, status string) (*entities.NcRecord, error)
	AssignUser(id identity.Identity, answerID string, userID uint) (*entities.NcRecord, error)
	// ReassignDepartment moves the NC to another department and clears any
	// user assignment, which the new department re-establishes itself.
	ReassignDepartment(id identity.Identity, answerID, department string) error
	ListRecords(id identity.Identity) ([]repository.RegisterRow, error)
}
