package serviceImp

import (
	answerRepo "audir/pkg/answer/repository"
	"audir/pkg/completion/service"
	"audir/pkg/identity"
	ncRepo "audir/pkg/nc/repository"
	planRepo "audir/pkg/plan/repository"
	templateRepo "audir/pkg/template/repository"
)

type completionSvc struct {
	plans     planRepo.PlanRepository
	templates templateRepo.TemplateRepository
	answers   answerRepo.AnswerRepository
	ncs       ncRepo.NcRepository
}

func New(p planRepo.PlanRepository, t templateRepo.TemplateRepository, a answerRepo.AnswerRepository, n ncRepo.NcRepository) service.CompletionService {
	return &completionSvc{plans: p, templates: t, answers: a, ncs: n}
}

// Compute re-derives the audit status from current store state. Reads are
// unguarded: a result stale by one concurrent write is acceptable, the
// reduction converges once writes settle.
func (s *completionSvc) Compute(id identity.Identity, auditCode string) (*service.CompletionView, error) {
	plan, err := s.plans.ResolveByCode(id.TenantID, auditCode)
	if err != nil {
		return nil, err
	}
	perAsset, err := s.templates.QuestionCount(id.TenantID, plan.AuditType)
	if err != nil {
		return nil, err
	}

	assets := plan.AssetScope
	if len(assets) == 0 {
		assets = []int{1}
	}
	counts, err := s.answers.CountSubmittedByAsset(id.TenantID, plan.ID)
	if err != nil {
		return nil, err
	}

	view := &service.CompletionView{
		AuditCode: auditCode,
		Total:     perAsset * len(assets),
		Assets:    make([]service.AssetProgress, 0, len(assets)),
	}
	allAssetsDone := true
	for _, asset := range assets {
		submitted := counts[asset]
		view.Submitted += submitted
		// Every asset must individually reach the per-asset total; a surplus
		// on one asset cannot cover a gap on another.
		if submitted < perAsset {
			allAssetsDone = false
		}
		view.Assets = append(view.Assets, service.AssetProgress{Asset: asset, Submitted: submitted, Total: perAsset})
	}

	view.HasOpenNc, err = s.ncs.HasOpenForPlan(id.TenantID, plan.ID)
	if err != nil {
		return nil, err
	}
	if !view.HasOpenNc {
		// A submitted negative answer that never grew a record blocks
		// completion the same way an open record does.
		view.HasOpenNc, err = s.answers.HasUnresolvedNegative(id.TenantID, plan.ID)
		if err != nil {
			return nil, err
		}
	}
	view.HasPendingReview, err = s.ncs.HasPendingReviewForPlan(id.TenantID, plan.ID)
	if err != nil {
		return nil, err
	}

	switch {
	case view.Submitted == 0:
		view.Status = service.StatusCreated
	// An unknown or empty template (total 0) can never complete; reporting
	// Completed on zero expected work would be a false positive.
	case view.Total > 0 && allAssetsDone && !view.HasOpenNc && !view.HasPendingReview:
		view.Status = service.StatusCompleted
	default:
		view.Status = service.StatusInProgress
	}
	return view, nil
}
