package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"audir/database"
	"audir/entities"
	"audir/pkg/identity"
	planRepoImp "audir/pkg/plan/repositoryImp"
)

func TestGenerateCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := generateCode()
		if len(code) != 6 {
			t.Fatalf("len(%q) = %d, want 6", code, len(code))
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", code, r)
			}
		}
	}
}

func TestCodeAlphabetDropsLookalikes(t *testing.T) {
	for _, r := range "01OI" {
		if strings.ContainsRune(codeAlphabet, r) {
			t.Errorf("alphabet contains lookalike %q", r)
		}
	}
}

func newCtx(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	identity.Store(c, identity.Identity{TenantID: 1, UserID: 1, Role: entities.RoleManager, DisplayName: "Olga Meyer"})
	return c, rec
}

func newCtrl(t *testing.T) (*PlanCtrl, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return &PlanCtrl{repo: planRepoImp.New(db)}, db
}

func TestCreateAssignsCode(t *testing.T) {
	ctrl, _ := newCtrl(t)
	c, rec := newCtx(t, http.MethodPost, "/audit-plans",
		`{"audit_type":"Safety Walk","auditor_name":"Rita Kwan","asset_scope":[1,2]}`)

	if err := ctrl.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201: %s", rec.Code, rec.Body)
	}
	var p entities.AuditPlan
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(p.Code) != 6 {
		t.Fatalf("plan code %q, want 6 chars", p.Code)
	}
	if len(p.AssetScope) != 2 {
		t.Fatalf("asset scope lost: %v", p.AssetScope)
	}
}

func TestCreateRequiresAuditType(t *testing.T) {
	ctrl, _ := newCtrl(t)
	c, rec := newCtx(t, http.MethodPost, "/audit-plans", `{"auditor_name":"Rita Kwan"}`)
	if err := ctrl.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestUpdatePatchesOnlyGivenFields(t *testing.T) {
	ctrl, db := newCtrl(t)
	p := &entities.AuditPlan{TenantID: 1, Code: "AB12CD", AuditType: "Safety Walk", AuditorName: "Rita Kwan", Site: "Plant 4"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	c, rec := newCtx(t, http.MethodPut, "/audit-plans/"+strconv.Itoa(int(p.ID)), `{"auditor_name":"Sam Ito"}`)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(p.ID)))
	if err := ctrl.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body)
	}

	var after entities.AuditPlan
	if err := db.First(&after, p.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if after.AuditorName != "Sam Ito" {
		t.Fatalf("auditor_name = %q, want Sam Ito", after.AuditorName)
	}
	if after.Site != "Plant 4" || after.Code != "AB12CD" {
		t.Fatalf("untouched fields changed: %+v", after)
	}
}

func TestUpdateUnknownPlanIs404(t *testing.T) {
	ctrl, _ := newCtrl(t)
	c, rec := newCtx(t, http.MethodPut, "/audit-plans/99", `{"auditor_name":"Sam Ito"}`)
	c.SetParamNames("id")
	c.SetParamValues("99")
	if err := ctrl.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}
