package serviceImp

import (
	"fmt"
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"audir/database"
	"audir/entities"
	answerRepoImp "audir/pkg/answer/repositoryImp"
	"audir/pkg/completion/service"
	"audir/pkg/identity"
	ncRepoImp "audir/pkg/nc/repositoryImp"
	planRepoImp "audir/pkg/plan/repositoryImp"
	templateRepoImp "audir/pkg/template/repositoryImp"
)

type fixture struct {
	db   *gorm.DB
	svc  service.CompletionService
	plan *entities.AuditPlan
}

func newFixture(t *testing.T, questions int, assetScope []int) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	qs := make([]string, questions)
	for i := range qs {
		qs[i] = fmt.Sprintf("Question %d", i+1)
	}
	tmpl := &entities.AuditTemplate{TenantID: 1, Name: "Safety Walk", Questions: qs}
	if err := db.Create(tmpl).Error; err != nil {
		t.Fatalf("seed template: %v", err)
	}
	plan := &entities.AuditPlan{
		TenantID:    1,
		Code:        "AB12CD",
		AuditType:   "Safety Walk",
		AuditorName: "Rita Kwan",
		AssetScope:  assetScope,
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	svc := New(planRepoImp.New(db), templateRepoImp.New(db), answerRepoImp.New(db), ncRepoImp.New(db))
	return &fixture{db: db, svc: svc, plan: plan}
}

func (f *fixture) answer(t *testing.T, asset, question int, status string, negative bool, dept string) *entities.Answer {
	t.Helper()
	a := &entities.Answer{
		ID:                 uuid.NewString(),
		TenantID:           1,
		AuditPlanID:        f.plan.ID,
		AssetNumber:        asset,
		QuestionIndex:      question,
		Response:           "Yes",
		ResponseIsNegative: negative,
		AssignedNc:         dept,
		Status:             status,
	}
	if negative {
		a.Response = "No"
	}
	if err := f.db.Create(a).Error; err != nil {
		t.Fatalf("seed answer: %v", err)
	}
	return a
}

func (f *fixture) ncRecord(t *testing.T, answerID, status string) {
	t.Helper()
	rec := &entities.NcRecord{TenantID: 1, AnswerID: answerID, Status: status}
	if err := f.db.Create(rec).Error; err != nil {
		t.Fatalf("seed nc record: %v", err)
	}
}

var caller = identity.Identity{TenantID: 1, UserID: 1, Role: entities.RoleAuditor, DisplayName: "Rita Kwan"}

func (f *fixture) compute(t *testing.T) *service.CompletionView {
	t.Helper()
	view, err := f.svc.Compute(caller, "AB12CD")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return view
}

func TestNoAnswersMeansCreated(t *testing.T) {
	f := newFixture(t, 3, nil)
	view := f.compute(t)
	if view.Status != service.StatusCreated {
		t.Fatalf("status = %q, want Created", view.Status)
	}
	if view.Total != 3 || view.Submitted != 0 {
		t.Fatalf("counts = %d/%d, want 0/3", view.Submitted, view.Total)
	}
}

func TestSavedAnswersDoNotCount(t *testing.T) {
	f := newFixture(t, 3, nil)
	f.answer(t, 1, 0, entities.AnswerSaved, false, "")
	f.answer(t, 1, 1, entities.AnswerSaved, false, "")

	view := f.compute(t)
	if view.Submitted != 0 {
		t.Fatalf("saved answers counted: %d", view.Submitted)
	}
	if view.Status != service.StatusCreated {
		t.Fatalf("status = %q, want Created", view.Status)
	}
}

func TestAllSubmittedCleanIsCompleted(t *testing.T) {
	f := newFixture(t, 3, nil)
	for q := 0; q < 3; q++ {
		f.answer(t, 1, q, entities.AnswerSubmitted, false, "")
	}
	view := f.compute(t)
	if view.Status != service.StatusCompleted {
		t.Fatalf("status = %q, want Completed", view.Status)
	}
	if view.Submitted != 3 || view.Total != 3 {
		t.Fatalf("counts = %d/%d, want 3/3", view.Submitted, view.Total)
	}
}

func TestOpenNcBlocksCompletion(t *testing.T) {
	f := newFixture(t, 3, nil)
	var neg *entities.Answer
	for q := 0; q < 3; q++ {
		if q == 1 {
			neg = f.answer(t, 1, q, entities.AnswerSubmitted, true, "Safety")
			continue
		}
		f.answer(t, 1, q, entities.AnswerSubmitted, false, "")
	}
	f.ncRecord(t, neg.ID, entities.NcAssigned)

	view := f.compute(t)
	if view.Status != service.StatusInProgress {
		t.Fatalf("status = %q, want In Progress", view.Status)
	}
	if !view.HasOpenNc {
		t.Fatalf("HasOpenNc = false with an Assigned record")
	}

	// closing the record releases the audit
	if err := f.db.Model(&entities.NcRecord{}).Where("answer_id = ?", neg.ID).
		Update("status", entities.NcClosed).Error; err != nil {
		t.Fatalf("close record: %v", err)
	}
	view = f.compute(t)
	if view.Status != service.StatusCompleted {
		t.Fatalf("status after close = %q, want Completed", view.Status)
	}
}

func TestPendingReviewBlocksCompletion(t *testing.T) {
	f := newFixture(t, 3, nil)
	var neg *entities.Answer
	for q := 0; q < 3; q++ {
		if q == 0 {
			neg = f.answer(t, 1, q, entities.AnswerSubmitted, true, "Safety")
			continue
		}
		f.answer(t, 1, q, entities.AnswerSubmitted, false, "")
	}
	f.ncRecord(t, neg.ID, entities.NcResolutionSubmitted)

	view := f.compute(t)
	if view.Status != service.StatusInProgress {
		t.Fatalf("status = %q, want In Progress: a submitted resolution still awaits review", view.Status)
	}
	if view.HasOpenNc {
		t.Fatalf("Resolution Submitted misreported as open")
	}
	if !view.HasPendingReview {
		t.Fatalf("HasPendingReview = false with a Resolution Submitted record")
	}
}

func TestUnresolvedNegativeBlocksCompletion(t *testing.T) {
	f := newFixture(t, 3, nil)
	// negative submit that never got a department, so no record exists
	f.answer(t, 1, 0, entities.AnswerSubmitted, true, "")
	f.answer(t, 1, 1, entities.AnswerSubmitted, false, "")
	f.answer(t, 1, 2, entities.AnswerSubmitted, false, "")

	view := f.compute(t)
	if view.Status != service.StatusInProgress {
		t.Fatalf("status = %q, want In Progress", view.Status)
	}
	if !view.HasOpenNc {
		t.Fatalf("unresolved negative not reported as open work")
	}
}

func TestEveryAssetMustFinishIndividually(t *testing.T) {
	f := newFixture(t, 2, []int{1, 2})
	// asset 1 over-delivers with an index beyond the checklist, asset 2 is short
	f.answer(t, 1, 0, entities.AnswerSubmitted, false, "")
	f.answer(t, 1, 1, entities.AnswerSubmitted, false, "")
	f.answer(t, 1, 2, entities.AnswerSubmitted, false, "")
	f.answer(t, 2, 0, entities.AnswerSubmitted, false, "")

	view := f.compute(t)
	if view.Total != 4 {
		t.Fatalf("total = %d, want 4", view.Total)
	}
	if view.Submitted != 4 {
		t.Fatalf("submitted = %d, want 4", view.Submitted)
	}
	// raw counts match the total, yet asset 2 is not done
	if view.Status != service.StatusInProgress {
		t.Fatalf("status = %q, want In Progress: surplus on one asset cannot cover another", view.Status)
	}

	f.answer(t, 2, 1, entities.AnswerSubmitted, false, "")
	if view = f.compute(t); view.Status != service.StatusCompleted {
		t.Fatalf("status = %q, want Completed", view.Status)
	}
}

func TestUnknownTemplateNeverCompletes(t *testing.T) {
	f := newFixture(t, 3, nil)
	f.plan.AuditType = "No Such Template"
	if err := f.db.Save(f.plan).Error; err != nil {
		t.Fatalf("repoint plan: %v", err)
	}
	f.answer(t, 1, 0, entities.AnswerSubmitted, false, "")

	view := f.compute(t)
	if view.Total != 0 {
		t.Fatalf("total = %d, want 0", view.Total)
	}
	if view.Status != service.StatusInProgress {
		t.Fatalf("status = %q, want In Progress: zero expected work can never be Completed", view.Status)
	}
}

func TestRemediationLifecycleEndToEnd(t *testing.T) {
	f := newFixture(t, 3, nil)
	neg := f.answer(t, 1, 0, entities.AnswerSubmitted, true, "Safety")
	f.answer(t, 1, 1, entities.AnswerSubmitted, false, "")
	f.answer(t, 1, 2, entities.AnswerSubmitted, false, "")
	f.ncRecord(t, neg.ID, entities.NcAssigned)

	for _, step := range []struct {
		status string
		want   string
	}{
		{entities.NcAssigned, service.StatusInProgress},
		{entities.NcInProgress, service.StatusInProgress},
		{entities.NcResolutionSubmitted, service.StatusInProgress},
		{entities.NcRework, service.StatusInProgress},
		{entities.NcClosed, service.StatusCompleted},
	} {
		if err := f.db.Model(&entities.NcRecord{}).Where("answer_id = ?", neg.ID).
			Update("status", step.status).Error; err != nil {
			t.Fatalf("set %s: %v", step.status, err)
		}
		if view := f.compute(t); view.Status != step.want {
			t.Fatalf("record %s: audit = %q, want %q", step.status, view.Status, step.want)
		}
	}
}
