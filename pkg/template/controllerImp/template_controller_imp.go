package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"audir/entities"
	"audir/pkg/identity"
	"audir/pkg/template/controller"
	repo "audir/pkg/template/repository"
)

type TemplateCtrl struct{ repo repo.TemplateRepository }

func New(r repo.TemplateRepository) controller.TemplateController { return &TemplateCtrl{r} }

func (h *TemplateCtrl) List(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	out, err := h.repo.List(id.TenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type templateReq struct {
	Name      string   `json:"name"`
	Note      string   `json:"note"`
	Tags      []string `json:"tags"`
	Questions []string `json:"questions"`
}

func (h *TemplateCtrl) Create(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	var req templateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	t := &entities.AuditTemplate{
		TenantID:  id.TenantID,
		Name:      req.Name,
		Note:      req.Note,
		Tags:      req.Tags,
		Questions: req.Questions,
	}
	if err := h.repo.Create(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}
