package handler

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ugaemi/cleannile/internal/audio"
	"github.com/ugaemi/cleannile/internal/session"
	"github.com/ugaemi/cleannile/internal/store"
	"github.com/ugaemi/cleannile/internal/ws"
)

// binding ties a client to the run it owns or watches.
type binding struct {
	code        string
	owner       bool
	unsubscribe func()
}

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	run      *RunHandler
	gameplay *GameplayHandler
	settings *SettingsHandler

	// bindings tracks client ID -> run binding, shared across handlers.
	bindings map[string]binding
	mu       sync.RWMutex
}

// NewRouter creates a new message router.
func NewRouter(sm *session.Manager, recorder store.Recorder, volume *audio.Volume) *Router {
	r := &Router{
		bindings: make(map[string]binding),
	}
	r.run = NewRunHandler(sm, r)
	r.gameplay = NewGameplayHandler(sm, r)
	r.settings = NewSettingsHandler(recorder, volume)
	return r
}

// Bind maps a client ID to a run.
func (r *Router) Bind(clientID string, b binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[clientID] = b
}

// Unbind removes and returns a client's run binding.
func (r *Router) Unbind(clientID string) (binding, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bindings[clientID]
	delete(r.bindings, clientID)
	return b, ok
}

// UnbindRun removes a client's binding only while it still points at code.
func (r *Router) UnbindRun(clientID, code string) (binding, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bindings[clientID]
	if !ok || b.code != code {
		return binding{}, false
	}
	delete(r.bindings, clientID)
	return b, true
}

// Binding returns the run binding for a client.
func (r *Router) Binding(clientID string) (binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[clientID]
	return b, ok
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	// Run control
	case ws.TypeStartRun:
		r.run.HandleStartRun(cm.Client, msg)
	case ws.TypeJoinRun:
		r.run.HandleJoinRun(cm.Client, msg)
	case ws.TypeRestartRun:
		r.run.HandleRestartRun(cm.Client, msg)
	case ws.TypeExitRun:
		r.run.HandleExitRun(cm.Client, msg)

	// Gameplay
	case ws.TypePlayerMove:
		r.gameplay.HandlePlayerMove(cm.Client, msg)

	// Settings
	case ws.TypeGetStats:
		r.settings.HandleGetStats(cm.Client, msg)
	case ws.TypeSetVolume:
		r.settings.HandleSetVolume(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.run.HandleDisconnect(client)
}
