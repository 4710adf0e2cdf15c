package ws

import (
	"encoding/json"

	"github.com/ugaemi/cleannile/internal/game"
	"github.com/ugaemi/cleannile/internal/store"
)

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message types - Run control
const (
	TypeStartRun   = "start_run"
	TypeJoinRun    = "join_run"
	TypeRestartRun = "restart_run"
	TypeExitRun    = "exit_run"
	TypeRunClosed  = "run_closed"
)

// Message types - Gameplay
const (
	TypePlayerMove = "player_move"
	TypeRunState   = "run_state"
	TypeRunOver    = "run_over"
)

// Message types - System
const (
	TypeError     = "error"
	TypeRunInfo   = "run_info"
	TypeGetStats  = "get_stats"
	TypeStats     = "stats"
	TypeSetVolume = "set_volume"
	TypeVolume    = "volume"
)

// StartRunRequest asks for a new run under the given player name.
type StartRunRequest struct {
	Name string `json:"name"`
}

// JoinRunRequest attaches a spectator to an existing run.
type JoinRunRequest struct {
	Code string `json:"code"`
}

// PlayerMoveRequest carries either a raw key name or a direction.
type PlayerMoveRequest struct {
	Key       string         `json:"key,omitempty"`
	Direction game.Direction `json:"direction,omitempty"`
}

// SetVolumeRequest changes the master volume or toggles mute.
type SetVolumeRequest struct {
	Level      *float64 `json:"level,omitempty"`
	ToggleMute bool     `json:"toggle_mute,omitempty"`
}

// RunInfo is sent when a client starts or joins a run.
type RunInfo struct {
	Code       string        `json:"code"`
	PlayerName string        `json:"player_name"`
	Spectator  bool          `json:"spectator"`
	Snapshot   game.Snapshot `json:"snapshot"`
}

// RunOver is sent once when a run is won or lost.
type RunOver struct {
	Status  game.Status `json:"status"`
	Score   int         `json:"score"`
	Elapsed int         `json:"elapsed"`
}

// RunClosed tells a spectator that the run it was watching has ended.
type RunClosed struct {
	Code string `json:"code"`
}

// StatsInfo reports the recorded statistics.
type StatsInfo struct {
	store.Stats
	AverageScore int `json:"average_score"`
}

// VolumeInfo reports the current audio settings.
type VolumeInfo struct {
	Level float64 `json:"level"`
	Muted bool    `json:"muted"`
}

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}
