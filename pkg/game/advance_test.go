package game

import (
	"testing"

	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AdvanceScroll(t *testing.T) {
	s := newRunningSession(t)
	s.state.TargetLevel = 1

	s.Advance()
	assert.InDelta(t, 20.0, s.state.Scroll, 1e-9)

	for i := 0; i < 100; i++ {
		s.Advance()
	}
	assert.Equal(t, 100.0, s.state.Scroll)
}

func TestSession_AdvanceAxe(t *testing.T) {
	s := newRunningSession(t)
	s.state.Axe = types.AxeAnimation{Active: true, Side: types.Left}

	for i := 1; i < constants.AxeFrames; i++ {
		s.Advance()
		require.True(t, s.state.Axe.Active, "frame %d", i)
	}
	assert.InDelta(t, 0.95, s.state.Axe.Progress(), 1e-9)

	s.Advance()
	assert.False(t, s.state.Axe.Active)
}

func TestAdvanceParticles(t *testing.T) {
	particles := []types.Particle{
		{Position: kinematic.Vector{X: 0, Y: 0}, Velocity: kinematic.Vector{X: 1, Y: -2}, Life: 1},
		{Position: kinematic.Vector{X: 5, Y: 5}, Velocity: kinematic.Vector{X: 0, Y: 0}, Life: 0.02},
		{Position: kinematic.Vector{X: 9, Y: 9}, Velocity: kinematic.Vector{X: -1, Y: 0}, Life: 0.5},
	}

	got := advanceParticles(particles)

	require.Len(t, got, 2)
	assert.Equal(t, kinematic.Vector{X: 1, Y: -2}, got[0].Position)
	assert.InDelta(t, 0.98, got[0].Life, 1e-9)
	assert.Equal(t, kinematic.Vector{X: 8, Y: 9}, got[1].Position)
	assert.InDelta(t, 0.48, got[1].Life, 1e-9)
	// the input is left untouched
	assert.Equal(t, 1.0, particles[0].Life)
}

func TestAdvanceFragments(t *testing.T) {
	fragments := []types.FallingFragment{
		{Side: types.Left, Position: kinematic.Vector{X: 10, Y: 598}, RotationSpeed: 0.1},
		{Side: types.Right, Position: kinematic.Vector{X: 20, Y: 590}, RotationSpeed: -0.1},
	}

	got := advanceFragments(fragments, 600)

	require.Len(t, got, 1)
	assert.Equal(t, types.Right, got[0].Side)
	assert.Equal(t, kinematic.Vector{X: 20, Y: 595}, got[0].Position)
	assert.InDelta(t, -0.1, got[0].Rotation, 1e-9)
}

func TestSession_AdvanceFall(t *testing.T) {
	tests := []struct {
		name          string
		score         int
		highScore     int
		wantHighScore int
		wantEvents    []types.EventType
	}{
		{
			name:          "new high score",
			score:         5,
			highScore:     3,
			wantHighScore: 5,
			wantEvents:    []types.EventType{types.EventHighScore, types.EventGameOverShown},
		},
		{
			name:          "tie keeps the high score",
			score:         3,
			highScore:     3,
			wantHighScore: 3,
			wantEvents:    []types.EventType{types.EventGameOverShown},
		},
		{
			name:          "lower score",
			score:         1,
			highScore:     3,
			wantHighScore: 3,
			wantEvents:    []types.EventType{types.EventGameOverShown},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRunningSession(t)
			s.state.Score = tt.score
			s.state.HighScore = tt.highScore
			s.state.Player = types.Alive{Side: types.Left}
			require.True(t, s.terminate(types.ReasonCollision))
			s.DrainEvents()

			for i := 1; i < constants.FallFrames; i++ {
				s.Advance()
				require.Equal(t, types.Dying{Side: types.Left, Frame: i}, s.state.Player)
				require.Equal(t, types.PhaseDying, s.Phase())
			}
			assert.Empty(t, s.DrainEvents())

			s.Advance()

			assert.Equal(t, types.Dead{Side: types.Left}, s.state.Player)
			assert.Equal(t, types.PhaseGameOverShown, s.Phase())
			assert.Equal(t, tt.wantHighScore, s.state.HighScore)

			events := s.DrainEvents()
			assert.Equal(t, tt.wantEvents, eventTypes(events))
			last := events[len(events)-1]
			assert.Equal(t, types.ReasonCollision, last.Reason)
			assert.Equal(t, tt.score, last.Score)

			// resting on the game-over screen changes nothing
			s.Advance()
			assert.Equal(t, types.Dead{Side: types.Left}, s.state.Player)
			assert.Empty(t, s.DrainEvents())
		})
	}
}
