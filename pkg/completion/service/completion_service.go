package service

import "audir/pkg/identity"

// Audit-level statuses derived from the ledger and NC records.
const (
	StatusCreated    = "Created"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

type AssetProgress struct {
	Asset     int `json:"asset"`
	Submitted int `json:"submitted"`
	Total     int `json:"total"`
}

// CompletionView is computed on demand; nothing here is stored.
type CompletionView struct {
	AuditCode        string          `json:"audit_code"`
	Status           string          `json:"status"`
	Submitted        int             `json:"submitted"`
	Total            int             `json:"total"`
	HasOpenNc        bool            `json:"has_open_nc"`
	HasPendingReview bool            `json:"has_pending_review"`
	Assets           []AssetProgress `json:"assets"`
}

type CompletionService interface {
	Compute(id identity.Identity, auditCode string) (*CompletionView, error)
}
