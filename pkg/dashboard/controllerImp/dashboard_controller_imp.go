package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jagung/pkg/dashboard/controller"
	"jagung/pkg/dashboard/service"
)

type dashCtrl struct{ svc service.DashboardService }

func New(svc service.DashboardService) controller.DashboardController { return &dashCtrl{svc} }

func respond(c echo.Context, v any, err error) error {
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, v)
}

func (h *dashCtrl) Metrics(c echo.Context) error {
	v, err := h.svc.Metrics()
	return respond(c, v, err)
}

func (h *dashCtrl) Fertility(c echo.Context) error {
	v, err := h.svc.FertilityDistribution()
	return respond(c, v, err)
}

func (h *dashCtrl) Status(c echo.Context) error {
	v, err := h.svc.StatusDistribution()
	return respond(c, v, err)
}

func (h *dashCtrl) HarvestTrend(c echo.Context) error {
	v, err := h.svc.MonthlyHarvestTrend()
	return respond(c, v, err)
}

func (h *dashCtrl) Profit(c echo.Context) error {
	v, err := h.svc.ProfitBreakdown()
	return respond(c, v, err)
}

func (h *dashCtrl) Summary(c echo.Context) error {
	v, err := h.svc.BlockSummary()
	return respond(c, v, err)
}

type saveSummaryReq struct {
	Rows []service.SummaryEdit `json:"rows"`
}

func (h *dashCtrl) SaveSummary(c echo.Context) error {
	var req saveSummaryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	v, err := h.svc.SaveBlockSummary(req.Rows)
	return respond(c, v, err)
}

type deleteBlocksReq struct {
	IDs []string `json:"ids"`
}

func (h *dashCtrl) DeleteBlocks(c echo.Context) error {
	var req deleteBlocksReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	n, err := h.svc.DeleteBlocks(req.IDs)
	return respond(c, map[string]int{"deleted": n}, err)
}
