package controllerImp

import (
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

var appStart = time.Now()

type HealthCtrl struct {
	dataDir string
}

func NewHealthCtrl(dataDir string) *HealthCtrl { return &HealthCtrl{dataDir: dataDir} }

func (h *HealthCtrl) Health(c echo.Context) error {
	dataOK := true
	dataErr := ""
	if info, err := os.Stat(h.dataDir); err != nil {
		dataOK = false
		dataErr = "stat: " + err.Error()
	} else if !info.IsDir() {
		dataOK = false
		dataErr = h.dataDir + " is not a directory"
	}

	status := http.StatusOK
	if !dataOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": dataOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"data_dir": sub{OK: dataOK, Err: dataErr},
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
