package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ugaemi/cleannile/internal/audio"
	"github.com/ugaemi/cleannile/internal/store"
	"github.com/ugaemi/cleannile/internal/ws"
)

const statsTimeout = 3 * time.Second

// SettingsHandler serves statistics and audio settings.
type SettingsHandler struct {
	recorder store.Recorder
	volume   *audio.Volume
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(recorder store.Recorder, volume *audio.Volume) *SettingsHandler {
	return &SettingsHandler{recorder: recorder, volume: volume}
}

// HandleGetStats replies with the recorded statistics.
func (h *SettingsHandler) HandleGetStats(client *ws.Client, _ ws.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
	defer cancel()

	st, err := h.recorder.Stats(ctx)
	if err != nil {
		slog.Error("failed to read stats", "client", client.ID, "error", err)
		client.SendMessage(ws.NewErrorMessage("stats unavailable"))
		return
	}

	resp, _ := ws.NewMessage(ws.TypeStats, ws.StatsInfo{
		Stats:        st,
		AverageScore: st.AverageScore(),
	})
	client.SendMessage(resp)
}

// HandleSetVolume updates the master volume and replies with the result.
func (h *SettingsHandler) HandleSetVolume(client *ws.Client, msg ws.Message) {
	var req ws.SetVolumeRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid volume data"))
		return
	}

	if req.Level != nil {
		h.volume.SetLevel(*req.Level)
	}
	if req.ToggleMute {
		h.volume.ToggleMute()
	}

	resp, _ := ws.NewMessage(ws.TypeVolume, ws.VolumeInfo{
		Level: h.volume.Level(),
		Muted: h.volume.Muted(),
	})
	client.SendMessage(resp)
}
