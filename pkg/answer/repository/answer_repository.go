package repository

import "audir/entities"

type AnswerRepository interface {
	// Upsert inserts or replaces the row keyed by
	// (tenant, plan, asset, question). The store's uniqueness constraint is
	// the only concurrency control: concurrent writes to the same slot
	// resolve last-writer-wins, never duplicate.
	Upsert(a *entities.Answer) error
	FindBySlot(tenantID, planID uint, asset, question int) (*entities.Answer, error)
	FindByID(tenantID uint, id string) (*entities.Answer, error)
	ListByPlan(tenantID, planID uint) ([]entities.Answer, error)
	UpdateAssignedNc(tenantID uint, answerID, department string) error
	// CountSubmittedByAsset returns submitted-answer counts per asset number
	// for one plan; the completion reducer checks each asset separately.
	CountSubmittedByAsset(tenantID, planID uint) (map[int]int, error)
	// HasUnresolvedNegative reports a submitted negative answer that has no
	// NC record yet (no department assigned, or the record write was lost).
	// Such an answer blocks completion even though no record exists.
	HasUnresolvedNegative(tenantID, planID uint) (bool, error)
}
