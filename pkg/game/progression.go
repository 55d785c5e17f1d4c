package game

import (
	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/log"
)

// MoveResult is the outcome of one move.
type MoveResult struct {
	// Applied is false when the move was ignored because no run is active
	Applied bool
	// Alive is false when the move ran into a branch
	Alive bool
	// Broken lists the branches that broke off
	Broken []types.Branch
}

// ApplyMove resolves a move to the given side.
//
// Collision is checked against the current eased scroll, while detaching
// uses the target scroll so fragments start falling as the branch passes the
// player. Pruning uses the eased scroll again.
func (s *Session) ApplyMove(side types.Side) MoveResult {
	st := s.state
	if st.Phase() != types.PhaseRunning {
		log.Debug("Ignoring move to %s in phase %s", side, st.Phase())
		return MoveResult{}
	}

	st.Player = types.Alive{Side: side}
	st.Axe = types.AxeAnimation{Active: true, Side: side}
	st.TargetLevel++
	st.TimeLeft = BoostTime(st.TimeLeft, st.Score)

	if s.hitsBranch(side) {
		s.spawnParticles(s.playerX(side), s.geometry.Height-s.geometry.PlayerSize-constants.HitDebrisBaseline, side)
		s.terminate(types.ReasonCollision)
		return MoveResult{Applied: true, Alive: false}
	}

	var broken []types.Branch
	kept := make([]types.Branch, 0, len(st.Branches)+1)
	for _, b := range st.Branches {
		if s.passedBranch(b, side) {
			broken = append(broken, b)
			s.breakBranch(b)
			continue
		}
		kept = append(kept, b)
	}
	st.Branches = kept

	s.growBranch()

	visible := make([]types.Branch, 0, len(st.Branches))
	for _, b := range st.Branches {
		if !s.belowViewport(b) {
			visible = append(visible, b)
		}
	}
	st.Branches = visible

	st.Score++
	s.emit(types.Event{Type: types.EventMoveResolved, Side: side})
	log.Trace("Move to %s resolved, score %d", side, st.Score)

	return MoveResult{Applied: true, Alive: true, Broken: broken}
}

// growBranch adds a branch above the target level when the target level is empty.
func (s *Session) growBranch() {
	st := s.state
	for _, b := range st.Branches {
		if b.Level == st.TargetLevel {
			return
		}
	}
	level := st.TargetLevel + 1
	st.Branches = append(st.Branches, types.Branch{
		Side:  GenerateSide(st.Branches, level, s.rng),
		Level: level,
	})
}
