package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/discover-zimbabwe/internal/service"
	"github.com/njprem/discover-zimbabwe/internal/util"
)

type SessionHandler struct {
	sessions *service.SessionStore
}

// loginRequest carries a password field for form compatibility only; it is
// never checked.
type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password"`
}

func RegisterSession(e *echo.Echo, sessions *service.SessionStore) {
	handler := &SessionHandler{sessions: sessions}

	g := e.Group("/api/v1/session")
	g.GET("", handler.current)
	g.POST("/login", handler.login)
	g.POST("/logout", handler.logout)
}

func (h *SessionHandler) current(c echo.Context) error {
	session, ok := h.sessions.Current()
	if !ok {
		return c.JSON(http.StatusOK, util.Data("session", nil))
	}
	return c.JSON(http.StatusOK, util.Data("session", session))
}

func (h *SessionHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(service.NoticeEmailRequired))
	}

	session, err := h.sessions.Login(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(service.Notice(err)))
	}
	return c.JSON(http.StatusOK, util.Data("session", session))
}

func (h *SessionHandler) logout(c echo.Context) error {
	h.sessions.Logout()
	return c.JSON(http.StatusOK, util.Data("session", nil))
}
