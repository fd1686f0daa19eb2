package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"audir/pkg/answer/controller"
	svc "audir/pkg/answer/service"
	"audir/pkg/apperr"
	"audir/pkg/identity"
)

type AnswerCtrl struct{ svc svc.AnswerService }

func New(s svc.AnswerService) controller.AnswerController { return &AnswerCtrl{s} }

func (h *AnswerCtrl) Upsert(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	var req svc.UpsertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	a, err := h.svc.Upsert(id, req)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AnswerCtrl) List(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	code := c.QueryParam("audit_code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "audit_code is required"})
	}
	out, err := h.svc.ListByAuditCode(id, code)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
