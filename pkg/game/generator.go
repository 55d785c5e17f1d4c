package game

import "github.com/Quelsed/azngameahun/pkg/game/types"

// GenerateSide picks the side of a new branch at the given level.
//
// Rules, first match wins:
//  1. both sides already occupy the level: Left
//  2. one side occupies the level: the other side
//  3. the two most recent branches share a side: the other side
//  4. otherwise a uniformly random side
//
// Rules 1 and 2 cannot trigger while every level holds at most one branch.
func GenerateSide(branches []types.Branch, level int, rng RandomSource) types.Side {
	var left, right bool
	for _, b := range branches {
		if b.Level != level {
			continue
		}
		if b.Side == types.Left {
			left = true
		} else {
			right = true
		}
	}

	switch {
	case left && right:
		return types.Left
	case left:
		return types.Right
	case right:
		return types.Left
	}

	if n := len(branches); n >= 2 && branches[n-1].Side == branches[n-2].Side {
		return branches[n-1].Side.Opposite()
	}

	if rng.Float64() < 0.5 {
		return types.Left
	}
	return types.Right
}
