package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"jagung/pkg/fileio"
	"jagung/pkg/tables/controller"
	"jagung/pkg/tables/service"
	"jagung/pkg/tabular"
)

type tableCtrl struct{ svc service.TableService }

func New(svc service.TableService) controller.TableController { return &tableCtrl{svc} }

func fail(c echo.Context, err error) error {
	if errors.Is(err, service.ErrUnknownTable) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown table"})
	}
	if errors.Is(err, service.ErrBadMode) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (h *tableCtrl) Get(c echo.Context) error {
	t, err := h.svc.Get(c.Param("name"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *tableCtrl) Save(c echo.Context) error {
	var t tabular.Table
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Save(c.Param("name"), t)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type deleteReq struct {
	IDs []string `json:"ids"`
}

func (h *tableCtrl) DeleteRows(c echo.Context) error {
	var req deleteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, n, err := h.svc.DeleteRows(c.Param("name"), req.IDs)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": n, "table": out})
}

func (h *tableCtrl) Import(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot open upload"})
	}
	defer f.Close()

	incoming, err := fileio.Decode(fh.Filename, f)
	if err != nil {
		// Parse failure aborts the import; nothing is written.
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read uploaded file: " + err.Error()})
	}

	mode := service.ImportMode(c.FormValue("mode"))
	out, err := h.svc.Import(c.Param("name"), incoming, mode)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"rows": out.Len(), "table": out})
}

func (h *tableCtrl) Export(c echo.Context) error {
	name := c.Param("name")
	t, err := h.svc.Get(name)
	if err != nil {
		return fail(c, err)
	}
	switch c.QueryParam("format") {
	case "xlsx":
		data, err := fileio.EncodeXLSX(t)
		if err != nil {
			return fail(c, err)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`.xlsx"`)
		return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		data, err := fileio.EncodeCSV(t)
		if err != nil {
			return fail(c, err)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`.csv"`)
		return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
	}
}
