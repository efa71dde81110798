package controller

import "github.com/labstack/echo/v4"

type TableController interface {
	Get(c echo.Context) error
	Save(c echo.Context) error
	DeleteRows(c echo.Context) error
	Import(c echo.Context) error
	Export(c echo.Context) error
}
