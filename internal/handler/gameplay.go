package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/ugaemi/cleannile/internal/game"
	"github.com/ugaemi/cleannile/internal/session"
	"github.com/ugaemi/cleannile/internal/ws"
)

// GameplayHandler handles in-run messages.
type GameplayHandler struct {
	sm     *session.Manager
	router *Router
}

// NewGameplayHandler creates a new gameplay handler.
func NewGameplayHandler(sm *session.Manager, router *Router) *GameplayHandler {
	return &GameplayHandler{sm: sm, router: router}
}

// HandlePlayerMove applies one movement input to the client's run. Either a
// key name or a direction is accepted.
func (h *GameplayHandler) HandlePlayerMove(client *ws.Client, msg ws.Message) {
	var req ws.PlayerMoveRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid move data"))
		return
	}

	dir := req.Direction
	if req.Key != "" {
		dir = game.ParseKey(req.Key)
	}
	if dir == game.DirNone {
		client.SendMessage(ws.NewErrorMessage("unknown direction"))
		return
	}

	s, ok := findSession(h.sm, h.router, client, true)
	if !ok {
		return
	}

	if err := s.Move(dir); err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	slog.Debug("player moved", "session", s.Code, "direction", dir.String())
}
