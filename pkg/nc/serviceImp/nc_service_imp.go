package serviceImp

import (
	"fmt"
	"strings"

	"audir/entities"
	answerRepo "audir/pkg/answer/repository"
	"audir/pkg/apperr"
	"audir/pkg/identity"
	ncRepo "audir/pkg/nc/repository"
	"audir/pkg/nc/service"
	planRepo "audir/pkg/plan/repository"
	userRepo "audir/pkg/userdir/repository"
)

type ncSvc struct {
	ncs     ncRepo.NcRepository
	answers answerRepo.AnswerRepository
	plans   planRepo.PlanRepository
	users   userRepo.UserRepository
	policy  service.Policy
}

func New(n ncRepo.NcRepository, a answerRepo.AnswerRepository, p planRepo.PlanRepository, u userRepo.UserRepository, policy service.Policy) service.NcService {
	if policy == "" {
		policy = service.PolicyDepartment
	}
	return &ncSvc{ncs: n, answers: a, plans: p, users: u, policy: policy}
}

func (s *ncSvc) UpsertAction(id identity.Identity, answerID string, fields service.ActionFields, status string) (*entities.NcRecord, error) {
	ans, err := s.answers.FindByID(id.TenantID, answerID)
	if err != nil {
		return nil, err
	}
	rec, err := s.ncs.FindByAnswer(id.TenantID, answerID)
	if err != nil {
		return nil, err
	}

	switch status {
	case entities.NcInProgress, entities.NcResolutionSubmitted:
		if err := s.guardResolution(id, ans, rec); err != nil {
			return nil, err
		}
		if err := guardWorkTransition(rec.Status, status); err != nil {
			return nil, err
		}
	case entities.NcClosed, entities.NcRework:
		if err := s.guardReview(id, ans); err != nil {
			return nil, err
		}
		// Reviewing a record that is not awaiting review is a state error,
		// except the idempotent retry of the same target.
		if rec.Status != entities.NcResolutionSubmitted && rec.Status != status {
			return nil, fmt.Errorf("record is %q, not %q: %w", rec.Status, entities.NcResolutionSubmitted, apperr.ErrValidation)
		}
	default:
		return nil, fmt.Errorf("status %q: %w", status, apperr.ErrValidation)
	}

	applyFields(rec, fields)
	rec.Status = status
	// Rework deliberately keeps assigned_user_id: the record returns to the
	// same assignee.
	if err := s.ncs.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *ncSvc) AssignUser(id identity.Identity, answerID string, userID uint) (*entities.NcRecord, error) {
	ans, err := s.answers.FindByID(id.TenantID, answerID)
	if err != nil {
		return nil, err
	}
	rec, err := s.ncs.FindByAnswer(id.TenantID, answerID)
	if err != nil {
		return nil, err
	}
	if rec.AssignedUserID != nil {
		// Reassigning an already-assigned record is a Manager action.
		if !id.IsManager() {
			return nil, fmt.Errorf("record already assigned: %w", apperr.ErrForbidden)
		}
	} else if !id.IsManager() && !id.SameDepartment(ans.AssignedNc) {
		return nil, fmt.Errorf("assign requires membership in %q: %w", ans.AssignedNc, apperr.ErrForbidden)
	}

	target, err := s.users.FindByID(id.TenantID, userID)
	if err != nil {
		return nil, err
	}
	if !sameDept(target.Department, ans.AssignedNc) {
		return nil, fmt.Errorf("user %d is in %q, record is assigned to %q: %w",
			userID, target.Department, ans.AssignedNc, apperr.ErrInvalidAssignee)
	}
	if target.Status != "active" {
		return nil, fmt.Errorf("user %d is not active: %w", userID, apperr.ErrInvalidAssignee)
	}

	rec.AssignedUserID = &target.ID
	if err := s.ncs.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *ncSvc) ReassignDepartment(id identity.Identity, answerID, department string) error {
	if department == "" {
		return fmt.Errorf("department is required: %w", apperr.ErrValidation)
	}
	ans, err := s.answers.FindByID(id.TenantID, answerID)
	if err != nil {
		return err
	}
	if _, err := s.ncs.FindByAnswer(id.TenantID, answerID); err != nil {
		return err
	}
	if !id.IsManager() && !id.SameDepartment(ans.AssignedNc) {
		plan, err := s.plans.ResolveByID(id.TenantID, ans.AuditPlanID)
		if err != nil {
			return err
		}
		if !id.MatchesName(plan.AuditorName) {
			return fmt.Errorf("reassign department: %w", apperr.ErrForbidden)
		}
	}
	if err := s.answers.UpdateAssignedNc(id.TenantID, answerID, department); err != nil {
		return err
	}
	// Changing department invalidates any prior user assignment.
	return s.ncs.ClearAssignee(id.TenantID, answerID)
}

func (s *ncSvc) ListRecords(id identity.Identity) ([]ncRepo.RegisterRow, error) {
	return s.ncs.ListJoined(id.TenantID)
}

// guardResolution decides who may save or submit remediation work.
func (s *ncSvc) guardResolution(id identity.Identity, ans *entities.Answer, rec *entities.NcRecord) error {
	if s.policy == service.PolicyAssignedUser && rec.AssignedUserID != nil {
		if *rec.AssignedUserID != id.UserID {
			return fmt.Errorf("record is assigned to another user: %w", apperr.ErrForbidden)
		}
		return nil
	}
	if !id.SameDepartment(ans.AssignedNc) {
		return fmt.Errorf("resolution requires membership in %q: %w", ans.AssignedNc, apperr.ErrForbidden)
	}
	return nil
}

// guardReview: closing and rework are reserved for Managers and the audit's
// own auditor, so the department under audit cannot certify itself.
func (s *ncSvc) guardReview(id identity.Identity, ans *entities.Answer) error {
	if id.IsManager() {
		return nil
	}
	plan, err := s.plans.ResolveByID(id.TenantID, ans.AuditPlanID)
	if err != nil {
		return err
	}
	if id.MatchesName(plan.AuditorName) {
		return nil
	}
	return fmt.Errorf("close/rework requires Manager role or the owning auditor: %w", apperr.ErrForbidden)
}

func guardWorkTransition(from, to string) error {
	switch from {
	case entities.NcAssigned, entities.NcInProgress, entities.NcRework:
		return nil
	case to:
		// idempotent retry of the same target state
		return nil
	default:
		return fmt.Errorf("cannot move %q to %q: %w", from, to, apperr.ErrValidation)
	}
}

func applyFields(rec *entities.NcRecord, f service.ActionFields) {
	if f.RootCause != nil {
		rec.RootCause = *f.RootCause
	}
	if f.ContainmentAction != nil {
		rec.ContainmentAction = *f.ContainmentAction
	}
	if f.CorrectiveAction != nil {
		rec.CorrectiveAction = *f.CorrectiveAction
	}
	if f.PreventiveAction != nil {
		rec.PreventiveAction = *f.PreventiveAction
	}
	if f.EvidenceName != nil {
		rec.EvidenceName = *f.EvidenceName
	}
}

func sameDept(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	return a != "" && strings.EqualFold(a, b)
}
