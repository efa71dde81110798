package controller

import "github.com/labstack/echo/v4"

type DashboardController interface {
	Metrics(c echo.Context) error
	Fertility(c echo.Context) error
	Status(c echo.Context) error
	HarvestTrend(c echo.Context) error
	Profit(c echo.Context) error
	Summary(c echo.Context) error
	SaveSummary(c echo.Context) error
	DeleteBlocks(c echo.Context) error
}
