package controller

import (
	"log"

	"github.com/gofiber/websocket/v2"

	"github.com/mpolden/notate/internal/render"
	"github.com/mpolden/notate/internal/service"
)

// WebSocketController handles live play over a WebSocket connection.
type WebSocketController struct {
	manager *service.Manager
}

// NewWebSocketController creates a controller backed by the given manager.
func NewWebSocketController(manager *service.Manager) *WebSocketController {
	return &WebSocketController{manager: manager}
}

type wsRequest struct {
	Move string `json:"move"`
}

type wsResponse struct {
	Move  string `json:"move,omitempty"`
	FEN   string `json:"fen,omitempty"`
	Board string `json:"board,omitempty"`
	Turn  string `json:"turn,omitempty"`
	Error string `json:"error,omitempty"`
}

// HandleConnection reads move tokens from the connection and answers each
// with the resolved move and resulting position, or the resolution error.
// The connection drives exactly one game; the manager serializes moves.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")

	// Send the current position on connect
	if err := wsc.sendState(c, gameID, ""); err != nil {
		log.Printf("ws: %v", err)
		return
	}

	for {
		var req wsRequest
		if err := c.ReadJSON(&req); err != nil {
			log.Printf("ws read: %v", err)
			return
		}

		move, err := wsc.manager.Move(gameID, req.Move)
		if err != nil {
			if writeErr := c.WriteJSON(wsResponse{Error: err.Error()}); writeErr != nil {
				log.Printf("ws write: %v", writeErr)
				return
			}
			continue
		}

		if err := wsc.sendState(c, gameID, move.String()); err != nil {
			log.Printf("ws: %v", err)
			return
		}
	}
}

// sendState writes the identified game's position to the connection.
func (wsc *WebSocketController) sendState(c *websocket.Conn, gameID, move string) error {
	board, err := wsc.manager.State(gameID)
	if err != nil {
		return c.WriteJSON(wsResponse{Error: err.Error()})
	}
	return c.WriteJSON(wsResponse{
		Move:  move,
		FEN:   board.FEN(),
		Board: render.Text(board),
		Turn:  board.SideToMove().String(),
	})
}
