package game

import (
	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/game/types"
)

// hitsBranch reports whether a branch on the given side overlaps the
// player's head band at the current eased scroll.
// The branch is extended downwards by CollisionTolerance so near misses count as hits.
func (s *Session) hitsBranch(side types.Side) bool {
	g := s.geometry
	playerY := g.Height - g.PlayerSize - constants.CollisionBaseline
	headY := playerY + g.PlayerSize*constants.HeadOffset
	headHeight := g.PlayerSize * constants.HeadHeight

	for _, b := range s.state.Branches {
		y := g.LevelY(b.Level) + s.state.Scroll
		if y+g.BranchHeight+constants.CollisionTolerance >= headY &&
			y <= headY+headHeight &&
			b.Side == side {
			return true
		}
	}
	return false
}

// passedBranch reports whether a branch on the vacated side will be below the
// player once the camera reaches its target, so it must break off now.
func (s *Session) passedBranch(b types.Branch, side types.Side) bool {
	g := s.geometry
	band := g.Height - g.PlayerSize - constants.DetachBaseline
	y := g.LevelY(b.Level) + s.targetScroll()
	return y+g.BranchHeight > band+constants.DetachMargin && b.Side != side
}

// belowViewport reports whether a branch scrolled fully out of view at the current eased scroll.
func (s *Session) belowViewport(b types.Branch) bool {
	g := s.geometry
	return g.LevelY(b.Level)+s.state.Scroll >= g.Height+g.BranchHeight
}

func (s *Session) targetScroll() float64 {
	return float64(s.state.TargetLevel) * s.geometry.LevelHeight
}

// playerX returns the left edge of the standing player.
func (s *Session) playerX(side types.Side) float64 {
	if side == types.Left {
		return s.geometry.TrunkLeft() - s.geometry.PlayerSize
	}
	return s.geometry.TrunkRight()
}
