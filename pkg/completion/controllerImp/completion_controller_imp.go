package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"audir/pkg/apperr"
	"audir/pkg/completion/controller"
	svc "audir/pkg/completion/service"
	"audir/pkg/identity"
)

type CompletionCtrl struct{ svc svc.CompletionService }

func New(s svc.CompletionService) controller.CompletionController { return &CompletionCtrl{s} }

func (h *CompletionCtrl) Compute(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	// The :id segment carries the plan code here.
	view, err := h.svc.Compute(id, c.Param("id"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, view)
}
