package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func NewApp(handler SchedulerHandler, gatherer prometheus.Gatherer) *fiber.App {
	app := fiber.New()
	app.Use(requestLogger)
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/priority", handler.Priority)
		v1.Get("/demo", handler.Demo)
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return app
}

// requestLogger attaches a logger tagged with the route to the user context.
func requestLogger(ctx *fiber.Ctx) error {
	logger := log.Logger.With().
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Logger()
	ctx.SetUserContext(logger.WithContext(ctx.UserContext()))
	return ctx.Next()
}
