package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jagung/entities"
	"jagung/pkg/datastore/repository"
	"jagung/pkg/tabular"
)

// AdminCtrl is the settings surface: editing the users table and the
// full data wipe. Routes mounting it must be gated on the Admin role.
type AdminCtrl struct{ store repository.TableStore }

func New(store repository.TableStore) *AdminCtrl { return &AdminCtrl{store} }

func (h *AdminCtrl) GetUsers(c echo.Context) error {
	users, err := h.store.Load(entities.TableUsers)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminCtrl) SaveUsers(c echo.Context) error {
	var t tabular.Table
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.store.Save(entities.TableUsers, t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	fresh, err := h.store.Load(entities.TableUsers)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, fresh)
}

// Wipe resets every domain table to its header-only form. The users
// table is untouched.
func (h *AdminCtrl) Wipe(c echo.Context) error {
	for _, name := range entities.DomainTables {
		empty := tabular.New(entities.Schemas[name]...)
		if err := h.store.Save(name, empty); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "all data cleared"})
}
