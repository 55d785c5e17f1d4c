package models

// HighScore is the best score stored under a named slot.
type HighScore struct {
	Slot      string `json:"slot"`
	Score     int    `json:"score"`
	UpdatedAt int64  `json:"updated_at"`
}

// Run is a finished run.
type Run struct {
	ID      string `json:"id"`
	Score   int    `json:"score"`
	Reason  string `json:"reason"`
	EndedAt int64  `json:"ended_at"`
}
