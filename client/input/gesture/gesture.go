// Package gesture maps pointer gestures to moves.
package gesture

import (
	"math"

	"github.com/Quelsed/azngameahun/pkg/game/types"
)

// SwipeThreshold is the horizontal distance a touch must travel to count as a swipe
const SwipeThreshold = 30.0

// Swipe maps the horizontal travel of a touch to a side.
// Short swipes are not moves.
func Swipe(dx float64) (types.Side, bool) {
	if math.Abs(dx) <= SwipeThreshold {
		return types.Left, false
	}
	if dx > 0 {
		return types.Right, true
	}
	return types.Left, true
}

// Tap maps a tap or click to the half of the screen it hit.
func Tap(x, width float64) types.Side {
	if x < width/2 {
		return types.Left
	}
	return types.Right
}

// Touch resolves a finished touch: a swipe when it travelled far enough, a tap otherwise.
func Touch(startX, endX, width float64) types.Side {
	if side, ok := Swipe(endX - startX); ok {
		return side
	}
	return Tap(endX, width)
}
