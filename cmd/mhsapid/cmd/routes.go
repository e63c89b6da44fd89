package cmd

import (
	"github.com/labstack/echo/v4"
	"github.com/mergington-edu/mhs/pkg/config"
	"github.com/mergington-edu/mhs/pkg/mhsapid/web"
	"github.com/mergington-edu/mhs/pkg/mhsapid/webapi"
	"github.com/mergington-edu/mhs/pkg/mhsapid/webapi/apimiddleware"
	"github.com/mergington-edu/mhs/pkg/mhsdb/stor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouteDependencies struct {
	e      *echo.Echo
	config config.Configer
	stors  *stor.Stors
}

func setupRoutes(deps RouteDependencies) {
	deps.e.Use(apimiddleware.RequestLogger(apimiddleware.RequestLoggerConfig{}))
	deps.e.Use(apimiddleware.Metrics(apimiddleware.MetricsConfig{}))

	appController := webapi.NewAppController()
	deps.e.GET("/", appController.RedirectToApp)
	deps.e.GET("/healthz", appController.GetHealth)
	deps.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	activityController := webapi.NewActivityController(deps.stors.ActivityStor)
	deps.e.GET("/activities", activityController.IndexActivities)
	deps.e.POST("/activities/:activityName/signup", activityController.SignupForActivity)
	deps.e.DELETE("/activities/:activityName/unregister", activityController.UnregisterFromActivity)

	setupStaticRoutes(deps)
}

// setupStaticRoutes serves the embedded web app unless MHS_STATIC_DIR points
// at an on-disk directory to serve instead.
func setupStaticRoutes(deps RouteDependencies) {
	if staticDir := deps.config.GetKey("MHS_STATIC_DIR"); staticDir != "" {
		deps.e.Static("/static", staticDir)
		return
	}

	deps.e.StaticFS("/static", web.StaticFS())
}
