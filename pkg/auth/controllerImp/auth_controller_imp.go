package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jagung/entities"
	"jagung/pkg/auth/controller"
	"jagung/pkg/auth/service"
)

const CookieName = "SESSION_TOKEN"

type authCtrl struct{ svc service.AuthService }

func New(svc service.AuthService) controller.AuthController { return &authCtrl{svc} }

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	sess, err := h.svc.Authenticate(req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}
	c.SetCookie(&http.Cookie{Name: CookieName, Value: sess.Token, Path: "/", HttpOnly: true})
	return c.JSON(http.StatusOK, sess)
}

func (h *authCtrl) Logout(c echo.Context) error {
	if ck, err := c.Cookie(CookieName); err == nil {
		h.svc.Logout(ck.Value)
	}
	c.SetCookie(&http.Cookie{Name: CookieName, Value: "", Path: "/", MaxAge: -1})
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	sess, _ := c.Get("session").(*entities.Session)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
	}
	return c.JSON(http.StatusOK, sess)
}
