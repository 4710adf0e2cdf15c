package handler

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ugaemi/cleannile/internal/account"
	"github.com/ugaemi/cleannile/internal/game"
	"github.com/ugaemi/cleannile/internal/session"
	"github.com/ugaemi/cleannile/internal/ws"
)

// RunHandler handles run lifecycle messages.
type RunHandler struct {
	sm     *session.Manager
	router *Router
}

// NewRunHandler creates a new run handler.
func NewRunHandler(sm *session.Manager, router *Router) *RunHandler {
	return &RunHandler{
		sm:     sm,
		router: router,
	}
}

// HandleStartRun creates a session for the named player and starts it. A
// client already bound to a run leaves it first.
func (h *RunHandler) HandleStartRun(client *ws.Client, msg ws.Message) {
	var req ws.StartRunRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid start data"))
		return
	}

	profile, err := account.NewProfile(req.Name)
	if err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	h.leave(client)

	s := h.sm.CreateSession(profile.Name)
	unsubscribe := s.Subscribe(pushSnapshots(client))
	h.router.Bind(client.ID, binding{code: s.Code, owner: true, unsubscribe: unsubscribe})

	sendRunInfo(client, s, false)

	if err := s.Start(); err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	slog.Info("player started run", "player", profile.Name, "profile", profile.ID, "session", s.Code)
}

// HandleJoinRun attaches the client to an existing run as a spectator.
func (h *RunHandler) HandleJoinRun(client *ws.Client, msg ws.Message) {
	var req ws.JoinRunRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" {
		client.SendMessage(ws.NewErrorMessage("code is required"))
		return
	}

	s := h.sm.GetSession(req.Code)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("run not found"))
		return
	}

	h.leave(client)

	unsubscribe := s.Subscribe(pushSnapshots(client))
	stop := make(chan struct{})
	var once sync.Once
	release := func() {
		once.Do(func() {
			unsubscribe()
			close(stop)
		})
	}
	h.router.Bind(client.ID, binding{code: s.Code, unsubscribe: release})
	sendRunInfo(client, s, true)
	go h.watchClose(client, s, stop)

	slog.Info("spectator joined run", "client", client.ID, "session", s.Code)
}

// HandleRestartRun resets the client's run to its initial layout.
func (h *RunHandler) HandleRestartRun(client *ws.Client, _ ws.Message) {
	s, ok := h.ownedSession(client)
	if !ok {
		return
	}

	if err := s.Restart(); err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
	}
}

// HandleExitRun tears down an owned run or stops spectating.
func (h *RunHandler) HandleExitRun(client *ws.Client, _ ws.Message) {
	h.leave(client)
}

// HandleDisconnect handles client disconnection.
func (h *RunHandler) HandleDisconnect(client *ws.Client) {
	h.leave(client)
}

func (h *RunHandler) leave(client *ws.Client) {
	b, ok := h.router.Unbind(client.ID)
	if !ok {
		return
	}

	if b.unsubscribe != nil {
		b.unsubscribe()
	}
	if b.owner {
		h.sm.RemoveSession(b.code)
	}

	slog.Info("client left run", "client", client.ID, "session", b.code, "owner", b.owner)
}

// watchClose releases a spectator once the watched run exits and tells the
// client about it. It returns early when stop closes.
func (h *RunHandler) watchClose(client *ws.Client, s *session.Session, stop <-chan struct{}) {
	select {
	case <-stop:
		return
	case <-s.Done():
	}

	b, ok := h.router.UnbindRun(client.ID, s.Code)
	if !ok {
		return
	}
	b.unsubscribe()

	msg, _ := ws.NewMessage(ws.TypeRunClosed, ws.RunClosed{Code: s.Code})
	client.SendMessage(msg)
	slog.Info("spectator released from closed run", "client", client.ID, "session", s.Code)
}

// ownedSession returns the session the client owns, reporting an error to
// the client otherwise.
func (h *RunHandler) ownedSession(client *ws.Client) (*session.Session, bool) {
	return findSession(h.sm, h.router, client, true)
}

func findSession(sm *session.Manager, router *Router, client *ws.Client, ownerOnly bool) (*session.Session, bool) {
	b, ok := router.Binding(client.ID)
	if !ok {
		client.SendMessage(ws.NewErrorMessage("not in a run"))
		return nil, false
	}
	if ownerOnly && !b.owner {
		client.SendMessage(ws.NewErrorMessage("spectators cannot control the run"))
		return nil, false
	}

	s := sm.GetSession(b.code)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("run not found"))
		return nil, false
	}
	return s, true
}

func sendRunInfo(client *ws.Client, s *session.Session, spectator bool) {
	resp, _ := ws.NewMessage(ws.TypeRunInfo, ws.RunInfo{
		Code:       s.Code,
		PlayerName: s.PlayerName,
		Spectator:  spectator,
		Snapshot:   s.Snapshot(),
	})
	client.SendMessage(resp)
}

// pushSnapshots forwards every snapshot to client as run_state, followed by
// run_over when the run has just finished.
func pushSnapshots(client *ws.Client) session.Listener {
	return func(snap game.Snapshot) {
		state, err := ws.NewMessage(ws.TypeRunState, snap)
		if err != nil {
			slog.Error("failed to encode run state", "client", client.ID, "error", err)
			return
		}
		client.SendMessage(state)

		if snap.Status == game.StatusInProgress {
			return
		}
		over, _ := ws.NewMessage(ws.TypeRunOver, ws.RunOver{
			Status:  snap.Status,
			Score:   snap.Score,
			Elapsed: snap.Elapsed,
		})
		client.SendMessage(over)
	}
}
