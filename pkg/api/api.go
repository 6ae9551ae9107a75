package api

import (
	"time"

	"github.com/fako1024/potwatch/pkg/monitor"
	"github.com/fatih/stopwatch"
	"github.com/gofiber/fiber/v2"
)

// API denotes a REST status API for the monitor
type API struct {
	monitor *monitor.Monitor
	router  *fiber.App
	started *stopwatch.Stopwatch
}

// New instantiates a new API
func New(m *monitor.Monitor, endpoint string) *API {

	api := API{
		monitor: m,
		router:  fiber.New(),
		started: stopwatch.Start(0),
	}

	// Setup routes
	api.router.Get("/healthz", api.handleHealthz())
	api.router.Get("/status", api.handleStatus())

	// Start to listen in goroutine
	go func() {
		if err := api.router.Listen(endpoint); err != nil {
			panic(err)
		}
	}()

	return &api
}

func (api *API) handleHealthz() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		return c.SendString("ok")
	}
}

func (api *API) handleStatus() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		return c.JSON(struct {
			monitor.Status
			Uptime string `json:"uptime"`
		}{
			Status: api.monitor.Status(),
			Uptime: api.started.ElapsedTime().Round(time.Second).String(),
		})
	}
}
