package brochure

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	doc := a.Resolver.Resolve(c.Request().Context())
	return Render(c, a.Views.Home(doc, a.Config))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	// The JSON surface gets JSON errors; pages get styled pages.
	if isAPIPath(c.Request().URL.Path) {
		msg := http.StatusText(code)
		if ok {
			if s, isString := he.Message.(string); isString {
				msg = s
			}
		}
		if code >= 500 {
			c.Logger().Errorf("server error: %v", err)
			// Store diagnostics stay out of unauthenticated responses.
			if !IsAdmin(c) {
				msg = http.StatusText(code)
			}
		}
		_ = c.JSON(code, echo.Map{"error": msg})
		return
	}
	if ok && code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
