package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWith(treasures, powerUps []Collectible) State {
	return State{
		Player:    NewPlayer(),
		Treasures: treasures,
		PowerUps:  powerUps,
		Status:    StatusInProgress,
	}
}

func TestCollectPickups(t *testing.T) {
	tests := []struct {
		name       string
		item       Collectible
		health     int
		wantEvents int
		checkAfter func(t *testing.T, s *State)
	}{
		{
			name:       "coin adjacent to player",
			item:       Collectible{ID: 1, Position: Vec3{Z: 1}, Category: CategoryCoin},
			wantEvents: 1,
			checkAfter: func(t *testing.T, s *State) {
				assert.True(t, s.Treasures[0].Collected)
				assert.Equal(t, TreasureReward, s.Score)
			},
		},
		{
			name:       "gem and key pay the treasure reward",
			item:       Collectible{ID: 2, Position: Vec3{X: 1}, Category: CategoryKey},
			wantEvents: 1,
			checkAfter: func(t *testing.T, s *State) {
				assert.Equal(t, TreasureReward, s.Score)
			},
		},
		{
			name:       "speed boost activates for ten seconds",
			item:       Collectible{ID: 6, Position: Vec3{Y: 2}, Category: CategorySpeedBoost},
			wantEvents: 1,
			checkAfter: func(t *testing.T, s *State) {
				assert.Equal(t, SpeedBoostReward, s.Score)
				assert.True(t, s.Player.SpeedBoost.Active)
				assert.Equal(t, SpeedBoostDuration, s.Player.SpeedBoost.Remaining)
			},
		},
		{
			name:       "shield activates for fifteen seconds",
			item:       Collectible{ID: 7, Position: Vec3{X: -1}, Category: CategoryShield},
			wantEvents: 1,
			checkAfter: func(t *testing.T, s *State) {
				assert.Equal(t, ShieldReward, s.Score)
				assert.True(t, s.Player.Shield.Active)
				assert.Equal(t, ShieldDuration, s.Player.Shield.Remaining)
			},
		},
		{
			name:       "boundary distance does not collect",
			item:       Collectible{ID: 1, Position: Vec3{X: 1.5}, Category: CategoryCoin},
			wantEvents: 0,
			checkAfter: func(t *testing.T, s *State) {
				assert.False(t, s.Treasures[0].Collected)
				assert.Equal(t, 0, s.Score)
			},
		},
		{
			name:       "just inside boundary collects",
			item:       Collectible{ID: 1, Position: Vec3{X: 1.499999}, Category: CategoryCoin},
			wantEvents: 1,
			checkAfter: func(t *testing.T, s *State) {
				assert.True(t, s.Treasures[0].Collected)
			},
		},
		{
			name:       "already collected is ignored",
			item:       Collectible{ID: 1, Position: Vec3{}, Category: CategoryCoin, Collected: true},
			wantEvents: 0,
			checkAfter: func(t *testing.T, s *State) {
				assert.Equal(t, 0, s.Score)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateWith([]Collectible{tt.item}, nil)
			events := CollectPickups(&s)
			assert.Len(t, events, tt.wantEvents)
			tt.checkAfter(t, &s)
		})
	}
}

func TestCollectPickups_HealthPowerUp(t *testing.T) {
	s := stateWith(nil, []Collectible{
		{ID: 1, Position: Vec3{X: 1}, Category: CategoryHealth, Value: 25},
	})
	s.Player.Health = 60

	events := CollectPickups(&s)

	require.Len(t, events, 1)
	assert.Equal(t, CategoryHealth, events[0].Category)
	assert.Equal(t, HealthReward, events[0].Points)
	assert.Equal(t, 85, s.Player.Health)
	assert.Equal(t, HealthReward, s.Score)
	assert.True(t, s.PowerUps[0].Collected)
}

func TestCollectPickups_HealthCappedAtMax(t *testing.T) {
	s := stateWith(nil, []Collectible{
		{ID: 1, Position: Vec3{}, Category: CategoryHealth, Value: 25},
	})
	s.Player.Health = 90

	CollectPickups(&s)

	assert.Equal(t, MaxHealth, s.Player.Health)
}

func TestCollectPickups_AwardsOnce(t *testing.T) {
	s := stateWith([]Collectible{
		{ID: 1, Position: Vec3{}, Category: CategoryCoin},
	}, nil)

	// Inside range at 1.4, out at 1.6, back in at 1.4.
	s.Player.Position = Vec3{X: 1.4}
	assert.Len(t, CollectPickups(&s), 1)

	s.Player.Position = Vec3{X: 1.6}
	assert.Len(t, CollectPickups(&s), 0)

	s.Player.Position = Vec3{X: 1.4}
	assert.Len(t, CollectPickups(&s), 0)

	assert.Equal(t, TreasureReward, s.Score)
	assert.True(t, s.Treasures[0].Collected)
}

func TestCollectPickups_MultipleInRange(t *testing.T) {
	s := stateWith([]Collectible{
		{ID: 1, Position: Vec3{X: 0.5}, Category: CategoryCoin},
		{ID: 2, Position: Vec3{X: -0.5}, Category: CategoryGem},
		{ID: 3, Position: Vec3{X: 8}, Category: CategoryKey},
	}, []Collectible{
		{ID: 1, Position: Vec3{Z: 0.5}, Category: CategoryHealth, Value: 25},
	})

	events := CollectPickups(&s)

	assert.Len(t, events, 3)
	assert.Equal(t, 2*TreasureReward+HealthReward, s.Score)
	assert.False(t, s.Treasures[2].Collected)
}

func TestReward(t *testing.T) {
	tests := []struct {
		category Category
		expected int
	}{
		{CategoryCoin, 100},
		{CategoryGem, 100},
		{CategoryKey, 100},
		{CategorySpeedBoost, 200},
		{CategoryShield, 300},
		{CategoryHealth, 50},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Reward(tt.category))
		})
	}
}
