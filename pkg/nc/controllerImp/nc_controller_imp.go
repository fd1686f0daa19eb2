package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"audir/pkg/apperr"
	"audir/pkg/identity"
	"audir/pkg/nc/controller"
	svc "audir/pkg/nc/service"
)

type NcCtrl struct{ svc svc.NcService }

func New(s svc.NcService) controller.NcController { return &NcCtrl{s} }

type actionReq struct {
	AnswerID string `json:"answer_id"`
	svc.ActionFields
	Status string `json:"status"`
}

func (h *NcCtrl) UpsertAction(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	var req actionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.AnswerID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "answer_id is required"})
	}
	rec, err := h.svc.UpsertAction(id, req.AnswerID, req.ActionFields, req.Status)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

type assignReq struct {
	AnswerID       string `json:"answer_id"`
	AssignedUserID uint   `json:"assigned_user_id"`
	// Status is echoed by existing clients; assignment never changes status.
	Status string `json:"status"`
}

func (h *NcCtrl) AssignUser(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	var req assignReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.AnswerID == "" || req.AssignedUserID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "answer_id and assigned_user_id are required"})
	}
	rec, err := h.svc.AssignUser(id, req.AnswerID, req.AssignedUserID)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

type reassignReq struct {
	AnswerID   string `json:"answer_id"`
	Department string `json:"department"`
}

func (h *NcCtrl) ReassignDepartment(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	var req reassignReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.AnswerID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "answer_id is required"})
	}
	if err := h.svc.ReassignDepartment(id, req.AnswerID, req.Department); err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NcCtrl) List(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	rows, err := h.svc.ListRecords(id)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}
