package game

import (
	"testing"

	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ApplyMove(t *testing.T) {
	tests := []struct {
		name         string
		branches     []types.Branch
		scroll       float64
		targetLevel  int
		timeLeft     float64
		move         types.Side
		wantResult   MoveResult
		wantPhase    types.Phase
		wantScore    int
		wantBranches []types.Branch
		wantEvents   []types.EventType
		wantTime     float64
	}{
		{
			name:         "safe move grows a branch above the target level",
			branches:     []types.Branch{{Side: types.Left, Level: 0}},
			scroll:       0,
			targetLevel:  0,
			timeLeft:     0.5,
			move:         types.Right,
			wantResult:   MoveResult{Applied: true, Alive: true},
			wantPhase:    types.PhaseRunning,
			wantScore:    1,
			wantBranches: []types.Branch{{Side: types.Left, Level: 0}, {Side: types.Left, Level: 2}},
			wantEvents:   []types.EventType{types.EventMoveResolved},
			wantTime:     0.8,
		},
		{
			name:         "no branch grows when the target level is occupied",
			branches:     []types.Branch{{Side: types.Left, Level: 0}, {Side: types.Right, Level: 1}},
			scroll:       0,
			targetLevel:  0,
			timeLeft:     0.5,
			move:         types.Left,
			wantResult:   MoveResult{Applied: true, Alive: true},
			wantPhase:    types.PhaseRunning,
			wantScore:    1,
			wantBranches: []types.Branch{{Side: types.Left, Level: 0}, {Side: types.Right, Level: 1}},
			wantEvents:   []types.EventType{types.EventMoveResolved},
			wantTime:     0.8,
		},
		{
			name:         "moving into a branch at head height ends the run",
			branches:     []types.Branch{{Side: types.Left, Level: 0}},
			scroll:       300,
			targetLevel:  3,
			timeLeft:     0.5,
			move:         types.Left,
			wantResult:   MoveResult{Applied: true, Alive: false},
			wantPhase:    types.PhaseDying,
			wantScore:    0,
			wantBranches: []types.Branch{{Side: types.Left, Level: 0}},
			wantEvents:   []types.EventType{types.EventGameOver},
			wantTime:     0.8,
		},
		{
			name:         "the collision tolerance reaches above the head",
			branches:     []types.Branch{{Side: types.Right, Level: 0}},
			scroll:       290,
			targetLevel:  3,
			timeLeft:     0.5,
			move:         types.Right,
			wantResult:   MoveResult{Applied: true, Alive: false},
			wantPhase:    types.PhaseDying,
			wantScore:    0,
			wantBranches: []types.Branch{{Side: types.Right, Level: 0}},
			wantEvents:   []types.EventType{types.EventGameOver},
			wantTime:     0.8,
		},
		{
			name:         "a branch just above the tolerance is safe",
			branches:     []types.Branch{{Side: types.Right, Level: 0}},
			scroll:       289,
			targetLevel:  2,
			timeLeft:     0.5,
			move:         types.Right,
			wantResult:   MoveResult{Applied: true, Alive: true},
			wantPhase:    types.PhaseRunning,
			wantScore:    1,
			wantBranches: []types.Branch{{Side: types.Right, Level: 0}, {Side: types.Left, Level: 4}},
			wantEvents:   []types.EventType{types.EventMoveResolved},
			wantTime:     0.8,
		},
		{
			name:         "branches scrolled off the bottom are pruned",
			branches:     []types.Branch{{Side: types.Right, Level: 0}},
			scroll:       700,
			targetLevel:  7,
			timeLeft:     0.5,
			move:         types.Right,
			wantResult:   MoveResult{Applied: true, Alive: true},
			wantPhase:    types.PhaseRunning,
			wantScore:    1,
			wantBranches: []types.Branch{{Side: types.Left, Level: 9}},
			wantEvents:   []types.EventType{types.EventMoveResolved},
			wantTime:     0.8,
		},
		{
			name:         "boost is clamped",
			branches:     []types.Branch{{Side: types.Left, Level: 0}},
			scroll:       0,
			targetLevel:  0,
			timeLeft:     0.95,
			move:         types.Right,
			wantResult:   MoveResult{Applied: true, Alive: true},
			wantPhase:    types.PhaseRunning,
			wantScore:    1,
			wantBranches: []types.Branch{{Side: types.Left, Level: 0}, {Side: types.Left, Level: 2}},
			wantEvents:   []types.EventType{types.EventMoveResolved},
			wantTime:     constants.MaxTime,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRunningSession(t)
			s.state.Branches = tt.branches
			s.state.Scroll = tt.scroll
			s.state.TargetLevel = tt.targetLevel
			s.state.TimeLeft = tt.timeLeft

			result := s.ApplyMove(tt.move)

			assert.Equal(t, tt.wantResult, result)
			assert.Equal(t, tt.wantPhase, s.Phase())
			assert.Equal(t, tt.wantScore, s.state.Score)
			assert.Equal(t, tt.wantBranches, s.state.Branches)
			assert.Equal(t, tt.wantEvents, eventTypes(s.DrainEvents()))
			assert.InDelta(t, tt.wantTime, s.state.TimeLeft, 1e-9)
			assert.Equal(t, tt.move, s.state.Player.PlayerSide())
			assert.Equal(t, tt.targetLevel+1, s.state.TargetLevel)
			assert.Equal(t, types.AxeAnimation{Active: true, Side: tt.move}, s.state.Axe)
		})
	}
}

func TestSession_ApplyMoveCollisionSpawnsDebris(t *testing.T) {
	s := newRunningSession(t)
	s.state.Branches = []types.Branch{{Side: types.Left, Level: 0}}
	s.state.Scroll = 300
	s.state.TargetLevel = 3

	s.ApplyMove(types.Left)

	require.Len(t, s.state.Particles, constants.ParticlesPerBurst)
	// the burst starts half a branch below the hit baseline
	for _, p := range s.state.Particles {
		assert.Equal(t, 460.0, p.Position.Y)
	}
	assert.Empty(t, s.state.Fragments)
	assert.Equal(t, types.Dying{Side: types.Left}, s.state.Player)
}

func TestSession_ApplyMoveDetachesPassedBranch(t *testing.T) {
	s := newRunningSession(t)
	s.state.Branches = []types.Branch{{Side: types.Left, Level: 0}}
	s.state.Scroll = 400
	s.state.TargetLevel = 4

	result := s.ApplyMove(types.Right)

	require.True(t, result.Alive)
	assert.Equal(t, []types.Branch{{Side: types.Left, Level: 0}}, result.Broken)
	assert.Equal(t, []types.Branch{{Side: types.Left, Level: 6}}, s.state.Branches)

	require.Len(t, s.state.Fragments, 1)
	fragment := s.state.Fragments[0]
	assert.Equal(t, types.Left, fragment.Side)
	// left of the trunk, at the level's position under the target scroll
	assert.Equal(t, kinematic.Vector{X: -10, Y: 500}, fragment.Position)
	assert.Equal(t, 0.0, fragment.Rotation)
	assert.InDelta(t, -0.05, fragment.RotationSpeed, 1e-9)
	assert.Len(t, s.state.Particles, constants.ParticlesPerBurst)

	assert.Equal(t, []types.EventType{types.EventBranchDetached, types.EventMoveResolved}, eventTypes(s.DrainEvents()))
}

func TestSession_ApplyMoveKeepsBranchOnPlayerSide(t *testing.T) {
	s := newRunningSession(t)
	s.state.Branches = []types.Branch{{Side: types.Right, Level: 0}}
	s.state.Scroll = 100
	s.state.TargetLevel = 4

	result := s.ApplyMove(types.Right)

	require.True(t, result.Alive)
	assert.Empty(t, result.Broken)
	assert.Empty(t, s.state.Fragments)
}

func TestSession_ApplyMoveIgnoredWhenNotRunning(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Session)
	}{
		{name: "idle", setup: func(s *Session) { s.state.Started = false }},
		{name: "dying", setup: func(s *Session) { s.state.Player = types.Dying{Side: types.Left} }},
		{name: "game over shown", setup: func(s *Session) { s.state.Player = types.Dead{Side: types.Left} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRunningSession(t)
			tt.setup(s)
			before := s.State()

			result := s.ApplyMove(types.Right)

			assert.Equal(t, MoveResult{}, result)
			assert.Equal(t, before, s.State())
			assert.Empty(t, s.DrainEvents())
		})
	}
}
