package router

import (
	"github.com/labstack/echo/v4"

	authSvc "jagung/pkg/auth/service"
	"jagung/pkg/middleware"
)

func New(
	e *echo.Echo,
	auth authSvc.AuthService,
	authCtrl interface {
		Login(echo.Context) error
		Logout(echo.Context) error
		WhoAmI(echo.Context) error
	},
	tableCtrl interface {
		Get(echo.Context) error
		Save(echo.Context) error
		DeleteRows(echo.Context) error
		Import(echo.Context) error
		Export(echo.Context) error
	},
	dashCtrl interface {
		Metrics(echo.Context) error
		Fertility(echo.Context) error
		Status(echo.Context) error
		HarvestTrend(echo.Context) error
		Profit(echo.Context) error
		Summary(echo.Context) error
		SaveSummary(echo.Context) error
		DeleteBlocks(echo.Context) error
	},
	geoCtrl interface{ Markers(echo.Context) error },
	adminCtrl interface {
		GetUsers(echo.Context) error
		SaveUsers(echo.Context) error
		Wipe(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.POST("/login", authCtrl.Login)
	e.GET("/health", healthCtrl.Health)

	api := e.Group("", middleware.Session(auth))
	api.POST("/logout", authCtrl.Logout)
	api.GET("/whoami", authCtrl.WhoAmI)

	api.GET("/dashboard", dashCtrl.Metrics)
	api.GET("/dashboard/fertility", dashCtrl.Fertility)
	api.GET("/dashboard/status", dashCtrl.Status)
	api.GET("/dashboard/harvest-trend", dashCtrl.HarvestTrend)
	api.GET("/dashboard/profit", dashCtrl.Profit)
	api.GET("/dashboard/summary", dashCtrl.Summary)

	api.GET("/tables/:name", tableCtrl.Get)
	api.GET("/tables/:name/export", tableCtrl.Export)
	api.GET("/map/markers", geoCtrl.Markers)

	// Viewer accounts are read-only past this point.
	w := api.Group("", middleware.RequireWriter())
	w.PUT("/tables/:name", tableCtrl.Save)
	w.POST("/tables/:name/rows/delete", tableCtrl.DeleteRows)
	w.POST("/tables/:name/import", tableCtrl.Import)
	w.PUT("/dashboard/summary", dashCtrl.SaveSummary)
	w.POST("/dashboard/summary/delete", dashCtrl.DeleteBlocks)

	adm := api.Group("/admin", middleware.RequireAdmin())
	adm.GET("/users", adminCtrl.GetUsers)
	adm.PUT("/users", adminCtrl.SaveUsers)
	adm.POST("/wipe", adminCtrl.Wipe)

	return e
}
