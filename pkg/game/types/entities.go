package types

import (
	"fmt"

	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/kinematic"
)

// Side is one of the two sides of the trunk.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the other side of the trunk.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// ParseSide parses "left" or "right".
func ParseSide(s string) (Side, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, fmt.Errorf("unknown side: %q", s)
	}
}

func (s Side) MarshalText() ([]byte, error) {
	if s != Left && s != Right {
		return nil, fmt.Errorf("unknown side: %d", s)
	}
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(b []byte) error {
	side, err := ParseSide(string(b))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// Branch is an obstacle fixed to the trunk at a discrete level.
type Branch struct {
	Side  Side `json:"side"`
	Level int  `json:"level"`
}

// FallingFragment is a branch that broke off and is falling out of view.
// Its position is in screen space and no longer follows the scroll.
type FallingFragment struct {
	Side          Side             `json:"side"`
	Position      kinematic.Vector `json:"position"`
	Rotation      float64          `json:"rotation"`
	RotationSpeed float64          `json:"rotationSpeed"`
}

// Particle is a piece of debris spawned at a break or hit point.
type Particle struct {
	Position kinematic.Vector `json:"position"`
	Velocity kinematic.Vector `json:"velocity"`
	Size     float64          `json:"size"`
	Color    string           `json:"color"`
	Life     float64          `json:"life"`
}

// AxeAnimation is the swing started by every move.
type AxeAnimation struct {
	Active bool `json:"active"`
	Side   Side `json:"side"`
	Frame  int  `json:"frame"`
}

// Progress returns the swing progress in [0, 1].
func (a AxeAnimation) Progress() float64 {
	return float64(a.Frame) / float64(constants.AxeFrames)
}
