package game

import (
	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/kinematic"
	"github.com/Quelsed/azngameahun/pkg/log"
)

// Advance moves every continuous timeline forward by one tick:
// the axe swing, the scroll easing, debris, falling fragments and the death fall.
// Visual timelines keep running after the run ends so debris settles on the game-over screen.
func (s *Session) Advance() {
	st := s.state
	st.Axe = advanceAxe(st.Axe)
	st.Scroll = kinematic.Approach(st.Scroll, s.targetScroll(), constants.ScrollEasing, constants.ScrollSnap)
	st.Particles = advanceParticles(st.Particles)
	st.Fragments = advanceFragments(st.Fragments, s.geometry.Height)
	s.advanceFall()
}

// advanceFall steps the death fall and, on its last frame, commits the high
// score and shows the game-over screen.
func (s *Session) advanceFall() {
	st := s.state
	dying, ok := st.Player.(types.Dying)
	if !ok {
		return
	}

	dying.Frame++
	if dying.Frame < constants.FallFrames {
		st.Player = dying
		return
	}

	if st.Score > st.HighScore {
		st.HighScore = st.Score
		log.Info("New high score %d", st.HighScore)
		s.emit(types.Event{Type: types.EventHighScore, Side: dying.Side})
	}
	st.Player = types.Dead{Side: dying.Side}
	s.emit(types.Event{Type: types.EventGameOverShown, Side: dying.Side, Reason: s.endReason})
}
