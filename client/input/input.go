package input

import (
	"github.com/Quelsed/azngameahun/client/input/gesture"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reader collects moves from keys, clicks and touches.
type Reader struct {
	touchStart map[ebiten.TouchID]float64
	touchLast  map[ebiten.TouchID]float64
	touchIDs   []ebiten.TouchID
}

func NewReader() *Reader {
	return &Reader{
		touchStart: make(map[ebiten.TouchID]float64),
		touchLast:  make(map[ebiten.TouchID]float64),
	}
}

// Moves returns the moves requested since the previous call, in order.
// It must be called once per update so touches are tracked.
func (r *Reader) Moves(width float64) []types.Side {
	var moves []types.Side

	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		moves = append(moves, types.Left)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		moves = append(moves, types.Right)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		moves = append(moves, gesture.Tap(float64(x), width))
	}

	r.touchIDs = inpututil.AppendJustPressedTouchIDs(r.touchIDs[:0])
	for _, id := range r.touchIDs {
		x, _ := ebiten.TouchPosition(id)
		r.touchStart[id] = float64(x)
	}
	r.touchIDs = ebiten.AppendTouchIDs(r.touchIDs[:0])
	for _, id := range r.touchIDs {
		x, _ := ebiten.TouchPosition(id)
		r.touchLast[id] = float64(x)
	}
	r.touchIDs = inpututil.AppendJustReleasedTouchIDs(r.touchIDs[:0])
	for _, id := range r.touchIDs {
		start, ok := r.touchStart[id]
		if ok {
			moves = append(moves, gesture.Touch(start, r.touchLast[id], width))
		}
		delete(r.touchStart, id)
		delete(r.touchLast, id)
	}

	return moves
}

// Reset forgets touches in progress, e.g. when an overlay took the input.
func (r *Reader) Reset() {
	clear(r.touchStart)
	clear(r.touchLast)
}

// IsConfirmJustPressed reports the keys that start or restart a run.
// Clicks and taps are left to the overlay buttons.
func IsConfirmJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
			// The button 0 might not be the A button.
			return true
		}
	}
	return false
}

// IsQuitJustPressed returns a boolean value indicating whether the quit key is just pressed.
func IsQuitJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
