package game

import (
	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/game/types"
)

// SpeedMultiplier is 1 + floor(score/20)*0.5.
func SpeedMultiplier(score int) float64 {
	return 1 + float64(score/constants.SpeedStepScore)*constants.SpeedStepBonus
}

// DecayTime drains one tick of time, never going below zero.
func DecayTime(timeLeft float64, score int) float64 {
	timeLeft -= constants.BaseDecay * SpeedMultiplier(score)
	if timeLeft < 0 {
		return 0
	}
	return timeLeft
}

// BoostTime refills time for a move, never going above MaxTime.
func BoostTime(timeLeft float64, score int) float64 {
	timeLeft += constants.TimeBoost / SpeedMultiplier(score)
	if timeLeft > constants.MaxTime {
		return constants.MaxTime
	}
	return timeLeft
}

// TimerBand is the color band of the visible timer.
type TimerBand int

const (
	TimerGreen TimerBand = iota
	TimerAmber
	TimerRed
)

// Color returns the hex color of the band.
func (b TimerBand) Color() string {
	switch b {
	case TimerAmber:
		return "#f39c12"
	case TimerRed:
		return "#e74c3c"
	default:
		return "#2ecc71"
	}
}

// TimerBandFor returns the band for a timer value.
func TimerBandFor(timeLeft float64) TimerBand {
	switch {
	case timeLeft >= constants.TimerGreenThreshold:
		return TimerGreen
	case timeLeft >= constants.TimerAmberThreshold:
		return TimerAmber
	default:
		return TimerRed
	}
}

// TickTimer drains the timer of a running session. It returns false when the
// session is not running or when the time ran out on this tick, in which case
// the terminal transition has already been applied.
func (s *Session) TickTimer() bool {
	if s.Phase() != types.PhaseRunning {
		return false
	}
	s.state.TimeLeft = DecayTime(s.state.TimeLeft, s.state.Score)
	if s.state.TimeLeft <= 0 {
		s.terminate(types.ReasonTimeout)
		return false
	}
	return true
}
