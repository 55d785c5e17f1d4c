package game

import (
	"math/rand/v2"

	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/geometry"
	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/google/uuid"
)

// RandomSource supplies uniform values in [0, 1).
// *rand.Rand satisfies it; tests can script the sequence.
type RandomSource interface {
	Float64() float64
}

// Session owns the world of one player. It is not safe for concurrent use:
// a single owner (the GameManager) mutates it from its tick.
type Session struct {
	state     *types.GameState
	geometry  geometry.Geometry
	rng       RandomSource
	events    []types.Event
	endReason types.GameOverReason
}

// NewSessionOptions contains options for creating a new Session.
type NewSessionOptions struct {
	Width     float64
	Height    float64
	HighScore int
	// Seed feeds the branch and debris generator when Random is nil
	Seed uint64
	// Random overrides the seeded generator
	Random RandomSource
}

// NewSession creates an idle session.
func NewSession(opts NewSessionOptions) *Session {
	rng := opts.Random
	if rng == nil {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	}
	return &Session{
		state:    types.NewGameState(opts.HighScore),
		geometry: geometry.New(opts.Width, opts.Height),
		rng:      rng,
	}
}

// Phase returns the current phase of the session.
func (s *Session) Phase() types.Phase {
	return s.state.Phase()
}

// State returns a copy of the world.
func (s *Session) State() *types.GameState {
	return s.state.Copy()
}

// Geometry returns the current viewport geometry.
func (s *Session) Geometry() geometry.Geometry {
	return s.geometry
}

// Start begins the first run. It is ignored unless the session is idle.
func (s *Session) Start() bool {
	if s.Phase() != types.PhaseIdle {
		log.Debug("Ignoring start request in phase %s", s.Phase())
		return false
	}
	s.reset()
	return true
}

// Restart begins a new run once the game-over screen is shown.
func (s *Session) Restart() bool {
	if s.Phase() != types.PhaseGameOverShown {
		log.Debug("Ignoring restart request in phase %s", s.Phase())
		return false
	}
	s.reset()
	return true
}

func (s *Session) reset() {
	st := s.state
	st.RunID = uuid.New()
	st.Started = true
	st.Player = types.Alive{Side: types.Right}
	st.Score = 0
	st.TimeLeft = constants.MaxTime
	st.Scroll = 0
	st.TargetLevel = 0
	st.Axe = types.AxeAnimation{}
	st.Fragments = nil
	st.Particles = nil
	st.Branches = nil
	st.Branches = append(st.Branches, types.Branch{
		Side:  GenerateSide(st.Branches, 0, s.rng),
		Level: 0,
	})
	s.endReason = types.ReasonNone

	log.Info("Run %s started", st.RunID)
	s.emit(types.Event{Type: types.EventRunStarted, Side: types.Right})
}

// terminate moves a running session into the death fall.
// It returns false when the run already ended, so the transition happens once.
func (s *Session) terminate(reason types.GameOverReason) bool {
	if s.Phase() != types.PhaseRunning {
		return false
	}
	side := s.state.Player.PlayerSide()
	s.state.Player = types.Dying{Side: side}
	s.endReason = reason

	log.Info("Run %s ended by %s with score %d", s.state.RunID, reason, s.state.Score)
	s.emit(types.Event{Type: types.EventGameOver, Side: side, Reason: reason})
	return true
}

// Resize recomputes the geometry for a new viewport without resetting the run.
// Pixel positions are rescaled so the world keeps its layout.
func (s *Session) Resize(width, height float64) {
	next := geometry.New(width, height)
	if !next.Valid() {
		log.Warn("Ignoring invalid viewport %.0fx%.0f", width, height)
		return
	}

	if s.geometry.Valid() && s.geometry.Scale != next.Scale {
		ratio := next.Scale / s.geometry.Scale
		st := s.state
		st.Scroll *= ratio
		for i := range st.Fragments {
			st.Fragments[i].Position = st.Fragments[i].Position.Scale(ratio)
		}
		for i := range st.Particles {
			st.Particles[i].Position = st.Particles[i].Position.Scale(ratio)
			st.Particles[i].Velocity = st.Particles[i].Velocity.Scale(ratio)
			st.Particles[i].Size *= ratio
		}
	}

	log.Debug("Viewport resized to %.0fx%.0f", width, height)
	s.geometry = next
}

// DrainEvents returns and clears the events emitted since the last call.
func (s *Session) DrainEvents() []types.Event {
	events := s.events
	s.events = nil
	return events
}

func (s *Session) emit(event types.Event) {
	event.RunID = s.state.RunID
	event.Score = s.state.Score
	s.events = append(s.events, event)
}
