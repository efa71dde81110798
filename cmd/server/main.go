package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"jagung/config"
	"jagung/router"

	// Store
	storeImp "jagung/pkg/datastore/repositoryImp"

	// Auth
	authCtrlImp "jagung/pkg/auth/controllerImp"
	authSvcImp "jagung/pkg/auth/serviceImp"

	// Tables
	tableCtrlImp "jagung/pkg/tables/controllerImp"
	tableSvcImp "jagung/pkg/tables/serviceImp"

	// Dashboard
	dashCtrlImp "jagung/pkg/dashboard/controllerImp"
	dashSvcImp "jagung/pkg/dashboard/serviceImp"

	// Map
	geoCtrlImp "jagung/pkg/geomap/controllerImp"
	geoSvcImp "jagung/pkg/geomap/serviceImp"

	// Admin + Health
	adminCtrlImp "jagung/pkg/admin/controllerImp"
	healthCtrlImp "jagung/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Table store over the CSV files + default accounts
	store := storeImp.New(cfg.DataDir, cfg.UsersFile)
	if err := storeImp.SeedDefaultUsers(store); err != nil {
		log.Fatalf("seed users: %v", err)
	}

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// Static front end
	e.Static("/static", cfg.StaticDir)
	e.File("/", cfg.StaticDir+"/index.html")
	if _, err := os.Stat(cfg.StaticDir + "/index.html"); err != nil {
		log.Printf("WARN: %s/index.html not found: %v", cfg.StaticDir, err)
	}

	// 4) Services
	auth := authSvcImp.New(store)
	tables := tableSvcImp.New(store)
	dash := dashSvcImp.New(store)
	geo := geoSvcImp.New(store, cfg.CenterLat, cfg.CenterLon)

	// 5) Controllers
	authCtrl := authCtrlImp.New(auth)
	tableCtrl := tableCtrlImp.New(tables)
	dashCtrl := dashCtrlImp.New(dash)
	geoCtrl := geoCtrlImp.New(geo)
	adminCtrl := adminCtrlImp.New(store)
	hCtrl := healthCtrlImp.NewHealthCtrl(cfg.DataDir)

	// 6) Router
	r := router.New(e, auth, authCtrl, tableCtrl, dashCtrl, geoCtrl, adminCtrl, hCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
