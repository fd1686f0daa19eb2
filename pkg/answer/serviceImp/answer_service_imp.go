package serviceImp

import (
	"fmt"

	"github.com/google/uuid"

	"audir/entities"
	answerRepo "audir/pkg/answer/repository"
	"audir/pkg/answer/service"
	"audir/pkg/apperr"
	"audir/pkg/identity"
	ncRepo "audir/pkg/nc/repository"
	planRepo "audir/pkg/plan/repository"
)

type answerSvc struct {
	answers answerRepo.AnswerRepository
	ncs     ncRepo.NcRepository
	plans   planRepo.PlanRepository
}

func New(a answerRepo.AnswerRepository, n ncRepo.NcRepository, p planRepo.PlanRepository) service.AnswerService {
	return &answerSvc{answers: a, ncs: n, plans: p}
}

func (s *answerSvc) Upsert(id identity.Identity, req service.UpsertRequest) (*entities.Answer, error) {
	plan, err := s.resolvePlan(id, req)
	if err != nil {
		return nil, err
	}
	if req.QuestionIndex < 0 {
		return nil, fmt.Errorf("question_index must be non-negative: %w", apperr.ErrValidation)
	}
	asset := 1
	if req.AssetNumber != nil {
		if *req.AssetNumber < 0 {
			return nil, fmt.Errorf("asset_number must be non-negative: %w", apperr.ErrValidation)
		}
		asset = *req.AssetNumber
	}
	status := req.Status
	if status == "" {
		status = entities.AnswerSaved
	}
	if status != entities.AnswerSaved && status != entities.AnswerSubmitted {
		return nil, fmt.Errorf("status %q: %w", status, apperr.ErrValidation)
	}

	a := &entities.Answer{
		ID:                 uuid.NewString(),
		TenantID:           id.TenantID,
		AuditPlanID:        plan.ID,
		AssetNumber:        asset,
		QuestionIndex:      req.QuestionIndex,
		QuestionText:       req.QuestionText,
		Response:           req.Response,
		ResponseIsNegative: req.ResponseIsNegative,
		AssignedNc:         req.AssignedNc,
		Note:               req.Note,
		EvidenceName:       req.EvidenceName,
		EvidenceDataURL:    req.EvidenceDataURL,
		Status:             status,
	}
	if err := s.answers.Upsert(a); err != nil {
		return nil, err
	}
	// Re-read: a conflicting slot keeps its original id and created_at.
	stored, err := s.answers.FindBySlot(id.TenantID, plan.ID, asset, req.QuestionIndex)
	if err != nil {
		return nil, err
	}

	// The only place an NC record is ever spawned. Re-runs on every negative
	// submit, so an earlier crash between the two writes heals on retry.
	// A negative submit without a department is accepted here; it blocks
	// completion until the assignment lands (the aggregator sees no record).
	if stored.Status == entities.AnswerSubmitted && stored.ResponseIsNegative && stored.AssignedNc != "" {
		if _, err := s.ncs.EnsureForAnswer(id.TenantID, stored.ID); err != nil {
			return nil, fmt.Errorf("spawn nc record: %w", err)
		}
	}
	return stored, nil
}

func (s *answerSvc) ListByAuditCode(id identity.Identity, code string) ([]entities.Answer, error) {
	plan, err := s.plans.ResolveByCode(id.TenantID, code)
	if err != nil {
		return nil, err
	}
	return s.answers.ListByPlan(id.TenantID, plan.ID)
}

func (s *answerSvc) resolvePlan(id identity.Identity, req service.UpsertRequest) (*entities.AuditPlan, error) {
	if req.AuditCode != "" {
		return s.plans.ResolveByCode(id.TenantID, req.AuditCode)
	}
	if req.AuditPlanID != 0 {
		return s.plans.ResolveByID(id.TenantID, req.AuditPlanID)
	}
	return nil, fmt.Errorf("audit_code or audit_plan_id required: %w", apperr.ErrNotFound)
}
