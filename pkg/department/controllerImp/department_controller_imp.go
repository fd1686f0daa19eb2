package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"audir/entities"
	repo "audir/pkg/department/repository"
	"audir/pkg/identity"
)

type DepartmentCtrl struct{ repo repo.DepartmentRepository }

func New(r repo.DepartmentRepository) *DepartmentCtrl { return &DepartmentCtrl{r} }

func (h *DepartmentCtrl) List(c echo.Context) error {
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

func (h *DepartmentCtrl) Create(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	d := &entities.Department{TenantID: id.TenantID, Name: req.Name}
	if err := h.repo.Create(d); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, d)
}
