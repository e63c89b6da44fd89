package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AppController handles the routes that aren't about the directory itself:
// the redirect into the front-end and the health check.
type AppController struct{}

func NewAppController() *AppController {
	return &AppController{}
}

func (c *AppController) RedirectToApp(ctx echo.Context) error {
	return ctx.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
}

func (c *AppController) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
