package controllerImp

import (
	"math/rand"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"audir/entities"
	"audir/pkg/apperr"
	"audir/pkg/identity"
	"audir/pkg/plan/controller"
	repo "audir/pkg/plan/repository"
)

type PlanCtrl struct{ repo repo.PlanRepository }

func New(r repo.PlanRepository) controller.PlanController { return &PlanCtrl{r} }

// codeAlphabet drops lookalike characters (0/O, 1/I) so codes survive being
// read off a printed QR sheet.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateCode() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

func (h *PlanCtrl) List(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	out, err := h.repo.List(id.TenantID)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type planReq struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	AuditType    string `json:"audit_type"`
	AuditSubtype string `json:"audit_subtype"`
	AuditorName  string `json:"auditor_name"`
	Department   string `json:"department"`
	LocationCity string `json:"location_city"`
	Site         string `json:"site"`
	Country      string `json:"country"`
	Region       string `json:"region"`
	AuditNote    string `json:"audit_note"`
	ResponseType string `json:"response_type"`
	AssetScope   []int  `json:"asset_scope"`
}

func (h *PlanCtrl) Create(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	var req planReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.AuditType == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "audit_type is required"})
	}
	p := &entities.AuditPlan{
		TenantID:     id.TenantID,
		Code:         generateCode(),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		AuditType:    req.AuditType,
		AuditSubtype: req.AuditSubtype,
		AuditorName:  req.AuditorName,
		Department:   req.Department,
		LocationCity: req.LocationCity,
		Site:         req.Site,
		Country:      req.Country,
		Region:       req.Region,
		AuditNote:    req.AuditNote,
		ResponseType: req.ResponseType,
		AssetScope:   req.AssetScope,
	}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

type planPatch struct {
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	AuditorName  *string `json:"auditor_name"`
	Department   *string `json:"department"`
	LocationCity *string `json:"location_city"`
	Site         *string `json:"site"`
	Country      *string `json:"country"`
	Region       *string `json:"region"`
	AuditNote    *string `json:"audit_note"`
	ResponseType *string `json:"response_type"`
	AssetScope   *[]int  `json:"asset_scope"`
}

func (h *PlanCtrl) Update(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	pid, _ := strconv.Atoi(c.Param("id"))
	var patch planPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.repo.ResolveByID(id.TenantID, uint(pid))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = *patch.EndDate
	}
	if patch.AuditorName != nil {
		p.AuditorName = *patch.AuditorName
	}
	if patch.Department != nil {
		p.Department = *patch.Department
	}
	if patch.LocationCity != nil {
		p.LocationCity = *patch.LocationCity
	}
	if patch.Site != nil {
		p.Site = *patch.Site
	}
	if patch.Country != nil {
		p.Country = *patch.Country
	}
	if patch.Region != nil {
		p.Region = *patch.Region
	}
	if patch.AuditNote != nil {
		p.AuditNote = *patch.AuditNote
	}
	if patch.ResponseType != nil {
		p.ResponseType = *patch.ResponseType
	}
	if patch.AssetScope != nil {
		p.AssetScope = *patch.AssetScope
	}
	if err := h.repo.Update(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}
