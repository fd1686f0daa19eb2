package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"audir/pkg/identity"
	"audir/pkg/userdir/controller"
	repo "audir/pkg/userdir/repository"
)

type UserCtrl struct{ repo repo.UserRepository }

func New(r repo.UserRepository) controller.UserController { return &UserCtrl{r} }

// List returns the tenant's users; ?department= narrows to active members
// of one department (the assignment dropdown).
func (h *UserCtrl) List(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	if dept := c.QueryParam("department"); dept != "" {
		out, err := h.repo.ListByDepartment(id.TenantID, dept)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	out, err := h.repo.List(id.TenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
