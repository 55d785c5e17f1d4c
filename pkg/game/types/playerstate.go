package types

import "github.com/Quelsed/azngameahun/pkg/game/constants"

// PlayerState is one of Alive, Dying or Dead.
type PlayerState interface {
	// PlayerSide returns the side of the trunk the player is on.
	PlayerSide() Side
	playerState()
}

// Alive is a player that can still move.
type Alive struct {
	Side Side
}

func (p Alive) PlayerSide() Side { return p.Side }
func (Alive) playerState()       {}

// Dying is a player playing the fall animation after a hit or a timeout.
type Dying struct {
	Side  Side
	Frame int
}

func (p Dying) PlayerSide() Side { return p.Side }
func (Dying) playerState()       {}

// Progress returns the fall progress in [0, 1].
func (p Dying) Progress() float64 {
	return float64(p.Frame) / float64(constants.FallFrames)
}

// Dead is a player resting in the final death pose.
type Dead struct {
	Side Side
}

func (p Dead) PlayerSide() Side { return p.Side }
func (Dead) playerState()       {}

// FallProgress returns how far the death fall has advanced for any player state.
func FallProgress(p PlayerState) float64 {
	switch player := p.(type) {
	case Dying:
		return player.Progress()
	case Dead:
		return 1
	default:
		return 0
	}
}
