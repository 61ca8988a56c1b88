package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/ziflex/lecho/v2"
)

// NewServer creates an echo server with all node routes mounted and its
// logging routed through the given zerolog logger.
func NewServer(log zerolog.Logger, ctrl *Controller) *echo.Echo {

	elog := lecho.From(log)

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))

	server.POST("/transactions/new", ctrl.NewTransaction)
	server.GET("/mine", ctrl.Mine)
	server.GET("/chain", ctrl.Chain)
	server.POST("/nodes/register", ctrl.RegisterNodes)
	server.GET("/nodes", ctrl.Nodes)
	server.GET("/nodes/resolve", ctrl.ResolveConflicts)

	return server
}
