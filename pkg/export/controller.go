package export

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"audir/pkg/apperr"
	"audir/pkg/identity"
	svc "audir/pkg/nc/service"
)

type Ctrl struct{ ncs svc.NcService }

func NewCtrl(ncs svc.NcService) *Ctrl { return &Ctrl{ncs} }

func (h *Ctrl) Download(c echo.Context) error {
	id, ok := identity.From(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no identity"})
	}
	rows, err := h.ncs.ListRecords(id)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	blob, err := Register(rows)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="nc-register.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", blob)
}
