package http

import (
	"github.com/labstack/echo/v4"

	"github.com/njprem/discover-zimbabwe/internal/domain"
	"github.com/njprem/discover-zimbabwe/internal/service"
)

const contextSessionKey = "session"

// AttachSession snapshots the active session at the start of the request so
// the request logger can report who made it.
func AttachSession(sessions *service.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if session, ok := sessions.Current(); ok {
				c.Set(contextSessionKey, session)
			}
			return next(c)
		}
	}
}

func CurrentSession(c echo.Context) (*domain.Session, bool) {
	session, ok := c.Get(contextSessionKey).(*domain.Session)
	return session, ok && session != nil
}
