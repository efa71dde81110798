package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jagung/pkg/geomap/service"
)

type GeomapCtrl struct{ svc service.GeomapService }

func New(svc service.GeomapService) *GeomapCtrl { return &GeomapCtrl{svc} }

func (h *GeomapCtrl) Markers(c echo.Context) error {
	view, err := h.svc.Markers(c.QueryParam("status"), c.QueryParam("fertility"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, view)
}
