package types

import "github.com/google/uuid"

// EventType identifies what happened during a tick.
type EventType int

const (
	EventRunStarted EventType = iota
	EventMoveResolved
	EventBranchDetached
	EventGameOver
	EventHighScore
	EventGameOverShown
)

func (t EventType) String() string {
	switch t {
	case EventRunStarted:
		return "run_started"
	case EventMoveResolved:
		return "move_resolved"
	case EventBranchDetached:
		return "branch_detached"
	case EventGameOver:
		return "game_over"
	case EventHighScore:
		return "high_score"
	case EventGameOverShown:
		return "game_over_shown"
	default:
		return "unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// GameOverReason explains a terminal transition.
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonCollision
	ReasonTimeout
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonCollision:
		return "collision"
	case ReasonTimeout:
		return "timeout"
	default:
		return "none"
	}
}

func (r GameOverReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Event is emitted by a session and drained by its owner once per tick.
type Event struct {
	Type   EventType      `json:"type"`
	RunID  uuid.UUID      `json:"runId"`
	Score  int            `json:"score"`
	Side   Side           `json:"side"`
	Reason GameOverReason `json:"reason"`
}
