package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ugaemi/cleannile/internal/audio"
	"github.com/ugaemi/cleannile/internal/session"
	"github.com/ugaemi/cleannile/internal/store"
	storemock "github.com/ugaemi/cleannile/internal/store/mock"
	"github.com/ugaemi/cleannile/internal/ws"
)

func TestHandleGetStats(t *testing.T) {
	env := setupRouter(t)
	client := mockClient("c1")
	ctx := context.Background()

	require.NoError(t, env.recorder.SaveBestScore(ctx, 1500))
	require.NoError(t, env.recorder.SaveGameStats(ctx, 1500, 40*time.Second))
	require.NoError(t, env.recorder.SaveGameStats(ctx, 500, 20*time.Second))

	send(t, env.router, client, ws.TypeGetStats, nil)

	info := decode[ws.StatsInfo](t, findMessageByType(drainMessages(client), ws.TypeStats))
	assert.Equal(t, store.Stats{BestScore: 1500, TotalGames: 2, TotalScore: 2000, TotalSeconds: 60}, info.Stats)
	assert.Equal(t, 1000, info.AverageScore)
}

func TestHandleGetStats_RecorderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := storemock.NewMockRecorder(ctrl)
	recorder.EXPECT().Stats(gomock.Any()).Return(store.Stats{}, errors.New("connection refused"))

	r := NewRouter(session.NewManager(session.Options{}), recorder, audio.NewVolume(1))
	client := mockClient("c1")

	send(t, r, client, ws.TypeGetStats, nil)

	errMsg := decode[ws.ErrorMessage](t, findMessageByType(drainMessages(client), ws.TypeError))
	assert.Equal(t, "stats unavailable", errMsg.Message)
}

func TestHandleSetVolume(t *testing.T) {
	level := func(v float64) *float64 { return &v }

	tests := []struct {
		name      string
		req       ws.SetVolumeRequest
		wantLevel float64
		wantMuted bool
	}{
		{"set level", ws.SetVolumeRequest{Level: level(0.25)}, 0.25, false},
		{"clamps high", ws.SetVolumeRequest{Level: level(3)}, 1, false},
		{"zero mutes", ws.SetVolumeRequest{Level: level(0)}, 0, true},
		{"toggle mute", ws.SetVolumeRequest{ToggleMute: true}, 0, true},
		{"no change", ws.SetVolumeRequest{}, 0.8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRouter(t)
			client := mockClient("c1")

			send(t, env.router, client, ws.TypeSetVolume, tt.req)

			info := decode[ws.VolumeInfo](t, findMessageByType(drainMessages(client), ws.TypeVolume))
			assert.InDelta(t, tt.wantLevel, info.Level, 1e-9)
			assert.Equal(t, tt.wantMuted, info.Muted)
			assert.Equal(t, tt.wantMuted, env.volume.Muted())
		})
	}
}
