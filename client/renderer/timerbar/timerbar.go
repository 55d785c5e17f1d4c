// Package timerbar smooths the timer value shown in the HUD.
package timerbar

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EaseDuration is how long the bar takes to reach a new value, in seconds.
const EaseDuration float32 = 0.15

// TimerBar eases the bar towards the timer value.
// Boosts jump by up to a third of the bar, so the bar eases there instead.
type TimerBar struct {
	value  float32
	target float32
	tween  *gween.Tween
}

// SetTarget starts easing towards v. A target equal to the current one keeps the running tween.
func (b *TimerBar) SetTarget(v float32) {
	if v == b.target {
		return
	}
	b.target = v
	// draining is slow and continuous, only refills are eased
	if v < b.value {
		b.value = v
		b.tween = nil
		return
	}
	b.tween = gween.New(b.value, v, EaseDuration, ease.OutQuad)
}

// Update advances the tween by dt seconds and returns the value to draw.
func (b *TimerBar) Update(dt float32) float32 {
	if b.tween != nil {
		v, done := b.tween.Update(dt)
		b.value = v
		if done {
			b.value = b.target
			b.tween = nil
		}
	}
	return b.value
}

func (b *TimerBar) Value() float32 {
	return b.value
}
