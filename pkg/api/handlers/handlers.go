package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Quelsed/azngameahun/pkg/clients"
	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/repositories"
	"github.com/Quelsed/azngameahun/pkg/repositories/models"
)

// MaxRunsLimit caps the limit query parameter of /runs
const MaxRunsLimit = 100

func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func HandleGetHighScore(repository repositories.Repository, slot string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		highScore, err := repository.GetHighScore(r.Context(), slot)
		if err != nil {
			if !repositories.IsNotFound(err) {
				log.Error("failed to get high score: %v", err)
				http.Error(w, "Failed to get high score", http.StatusInternalServerError)
				return
			}
			highScore = &models.HighScore{Slot: slot}
		}
		writeJSON(w, http.StatusOK, highScore)
	}
}

func HandleListRuns(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := repositories.DefaultRunsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > MaxRunsLimit {
				http.Error(w, "Limit must be between 1 and 100", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		runs, err := repository.ListRuns(r.Context(), limit)
		if err != nil {
			log.Error("failed to list runs: %v", err)
			http.Error(w, "Failed to list runs", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, runs)
	}
}

// SessionSummary is the JSON view of a session.
type SessionSummary struct {
	ID        string    `json:"id"`
	ClientID  uint32    `json:"clientID"`
	CreatedAt time.Time `json:"createdAt"`
	Phase     string    `json:"phase"`
	Score     int       `json:"score"`
	HighScore int       `json:"highScore"`
}

func summarize(r *http.Request, session *clients.Session) SessionSummary {
	summary := SessionSummary{
		ID:        session.ID.String(),
		ClientID:  session.ClientID,
		CreatedAt: session.CreatedAt,
		HighScore: session.HighScore,
	}
	frame, err := session.State.Get(r.Context())
	if err != nil {
		log.Warn("failed to get frame of session %s: %v", session.ID, err)
		return summary
	}
	summary.Phase = frame.HUD.Phase
	summary.Score = frame.HUD.Score
	if frame.HUD.HighScore > summary.HighScore {
		summary.HighScore = frame.HUD.HighScore
	}
	return summary
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
