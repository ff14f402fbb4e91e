// Package controller exposes games over HTTP and WebSocket.
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/mpolden/notate/internal/errors"
	"github.com/mpolden/notate/internal/render"
	"github.com/mpolden/notate/internal/service"
)

// GameController handles the REST game endpoints.
type GameController struct {
	manager *service.Manager
}

// NewGameController creates a controller backed by the given manager.
func NewGameController(manager *service.Manager) *GameController {
	return &GameController{manager: manager}
}

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move string `json:"move"`
}

// Create starts a new game, optionally from a FEN position.
func (gc *GameController) Create(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	id, err := gc.manager.Create(req.FEN)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"game_id": id,
	})
}

// Move resolves and applies a move token on a game.
func (gc *GameController) Move(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	move, err := gc.manager.Move(c.Params("gameId"), req.Move)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"move":  move.String(),
		"start": move.Start.String(),
		"end":   move.End.String(),
	})
}

// State returns the current position of a game.
func (gc *GameController) State(c *fiber.Ctx) error {
	board, err := gc.manager.State(c.Params("gameId"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"fen":   board.FEN(),
		"board": render.Text(board),
		"turn":  board.SideToMove().String(),
	})
}

// SVG returns the current position of a game as an SVG image.
func (gc *GameController) SVG(c *fiber.Ctx) error {
	board, err := gc.manager.State(c.Params("gameId"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	render.SVG(c.Response().BodyWriter(), board)
	return nil
}

// statusForError maps the resolution error taxonomy onto HTTP statuses.
// All resolution failures are client errors; the board is untouched and
// the client may retry with a corrected token.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrMalformedToken),
		errors.Is(err, apperrors.ErrNoLegalSource),
		errors.Is(err, apperrors.ErrAmbiguousSource),
		errors.Is(err, apperrors.ErrInvalidFEN):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
