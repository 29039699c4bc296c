package brochure

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (a *App) handleLogin(c echo.Context) error {
	if !a.loginLimiter.allow(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, echo.Map{
			"success": false,
			"error":   "too many login attempts, try again later",
		})
	}
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "malformed request"})
	}
	// Compare both fields unconditionally and report one generic error
	// so a response never reveals which of the two was wrong.
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.Config.AdminUsername))
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.Config.AdminPassword))
	if userOK&passOK != 1 {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"error":   "invalid username or password",
		})
	}
	if err := setAdminSession(c, req.Username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (a *App) handleLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (a *App) handleAuthCheck(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"authenticated": false})
	}
	return c.JSON(http.StatusOK, echo.Map{"authenticated": true})
}

func (a *App) handleContentGet(c echo.Context) error {
	doc := a.Resolver.Resolve(c.Request().Context())
	return c.JSON(http.StatusOK, doc)
}

func (a *App) handleContentPut(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	var doc ContentDocument
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed document"})
	}
	return a.persistAndRegenerate(c, doc)
}

// handleContentReset restores the bundled default document. It goes
// through the same persist path as a save so the store and the cache
// stay in agreement.
func (a *App) handleContentReset(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	return a.persistAndRegenerate(c, DefaultContent())
}

func (a *App) persistAndRegenerate(c echo.Context, doc ContentDocument) error {
	err := a.Resolver.Persist(c.Request().Context(), doc)
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Error()})
	case errors.Is(err, ErrNotConfigured):
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "content store not configured"})
	case err != nil:
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	// Regeneration failure is a soft warning: the cache expires on its
	// own at the end of the interval, so the save still succeeded.
	if err := a.regen.Invalidate("/"); err != nil {
		c.Logger().Warnf("regeneration after save failed: %v", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (a *App) handleRevalidate(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	if err := a.regen.Invalidate("/"); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"revalidated": true,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return Render(c, a.Views.AdminEditor(a.Config, CsrfToken(c)))
}
