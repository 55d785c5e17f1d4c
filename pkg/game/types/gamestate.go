package types

import (
	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/google/uuid"
)

// Phase is the state of a session, derived from the player state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseDying
	PhaseGameOverShown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseDying:
		return "dying"
	case PhaseGameOverShown:
		return "gameover"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// GameState is the mutable world of one session.
type GameState struct {
	// RunID identifies the current run; it changes on every start
	RunID uuid.UUID
	// Started is false until the first run starts
	Started bool
	// Player is the player variant
	Player PlayerState
	// Score is the number of surviving moves in the current run
	Score int
	// HighScore is the best score known to the session
	HighScore int
	// TimeLeft is the remaining time in [0, MaxTime]
	TimeLeft float64
	// Scroll is the eased camera offset in pixels
	Scroll float64
	// TargetLevel is the number of levels the camera has been asked to advance
	TargetLevel int
	// Branches are the active branches in spawn order
	Branches []Branch
	// Fragments are the detached branches still falling
	Fragments []FallingFragment
	// Particles are the live debris particles
	Particles []Particle
	// Axe is the swing animation
	Axe AxeAnimation
}

// NewGameState returns the state of a session that has not started yet.
func NewGameState(highScore int) *GameState {
	return &GameState{
		Player:    Alive{Side: Right},
		HighScore: highScore,
		TimeLeft:  constants.MaxTime,
	}
}

// Phase derives the session phase from the player variant.
func (g *GameState) Phase() Phase {
	if !g.Started {
		return PhaseIdle
	}
	switch g.Player.(type) {
	case Dying:
		return PhaseDying
	case Dead:
		return PhaseGameOverShown
	default:
		return PhaseRunning
	}
}

// Copy returns a deep copy of the game state.
func (g *GameState) Copy() *GameState {
	c := *g
	c.Branches = append([]Branch(nil), g.Branches...)
	c.Fragments = append([]FallingFragment(nil), g.Fragments...)
	c.Particles = append([]Particle(nil), g.Particles...)
	return &c
}
