// notate-server hosts games over HTTP and WebSocket: clients create games,
// submit moves in algebraic notation and receive resolved moves and board
// snapshots.
package main

import (
	"flag"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/mpolden/notate/internal/controller"
	"github.com/mpolden/notate/internal/service"
)

var listenAddr = flag.String("addr", ":3000", "Listen address")

func main() {
	flag.Parse()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(recover.New())

	manager := service.NewManager()
	gameController := controller.NewGameController(manager)
	wsController := controller.NewWebSocketController(manager)

	// WebSocket routes
	app.Use("/ws/*", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/game/:gameId", websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}))

	// REST routes
	api := app.Group("/api")
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.Create)
	gameRoutes.Post("/:gameId/move", gameController.Move)
	gameRoutes.Get("/:gameId", gameController.State)
	gameRoutes.Get("/:gameId/svg", gameController.SVG)

	log.Fatal(app.Listen(*listenAddr))
}
