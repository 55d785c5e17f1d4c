package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Quelsed/azngameahun/pkg/clients"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/messages"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func HandleListSessions(sm *clients.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions := sm.List()
		summaries := make([]SessionSummary, 0, len(sessions))
		for _, session := range sessions {
			summaries = append(summaries, summarize(r, session))
		}
		writeJSON(w, http.StatusOK, summaries)
	}
}

func HandleCreateSession(sm *clients.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// the session outlives the request and runs until it is deleted
		session, err := sm.Create(context.WithoutCancel(r.Context()))
		if err != nil {
			log.Error("failed to create session: %v", err)
			http.Error(w, "Failed to create session", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, summarize(r, session))
	}
}

func HandleGetSession(sm *clients.SessionManager) http.HandlerFunc {
	return withSession(sm, func(w http.ResponseWriter, r *http.Request, session *clients.Session) {
		writeJSON(w, http.StatusOK, summarize(r, session))
	})
}

func HandleDeleteSession(sm *clients.SessionManager) http.HandlerFunc {
	return withSession(sm, func(w http.ResponseWriter, r *http.Request, session *clients.Session) {
		if err := sm.Remove(session.ID); err != nil {
			if errors.Is(err, clients.ErrSessionNotFound) {
				http.Error(w, "Session not found", http.StatusNotFound)
				return
			}
			log.Error("failed to remove session: %v", err)
			http.Error(w, "Failed to remove session", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// HandleGetFrame returns the latest frame of a session as JSON.
func HandleGetFrame(sm *clients.SessionManager) http.HandlerFunc {
	return withSession(sm, func(w http.ResponseWriter, r *http.Request, session *clients.Session) {
		frame, err := session.State.Get(r.Context())
		if err != nil {
			log.Error("failed to get frame: %v", err)
			http.Error(w, "Failed to get frame", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, frame)
	})
}

func HandleStart(sm *clients.SessionManager) http.HandlerFunc {
	return withSession(sm, func(w http.ResponseWriter, r *http.Request, session *clients.Session) {
		accepted(w, session.Manager.RequestStart())
	})
}

func HandleRestart(sm *clients.SessionManager) http.HandlerFunc {
	return withSession(sm, func(w http.ResponseWriter, r *http.Request, session *clients.Session) {
		accepted(w, session.Manager.RequestRestart())
	})
}

func HandleMove(sm *clients.SessionManager) http.HandlerFunc {
	return withSession(sm, func(w http.ResponseWriter, r *http.Request, session *clients.Session) {
		side, err := types.ParseSide(mux.Vars(r)["side"])
		if err != nil {
			http.Error(w, "Side must be left or right", http.StatusBadRequest)
			return
		}
		accepted(w, session.Manager.RequestMove(side))
	})
}

func HandleResize(sm *clients.SessionManager) http.HandlerFunc {
	return withSession(sm, func(w http.ResponseWriter, r *http.Request, session *clients.Session) {
		viewport := &messages.ClientResize{}
		if err := json.NewDecoder(r.Body).Decode(viewport); err != nil {
			http.Error(w, "Invalid viewport", http.StatusBadRequest)
			return
		}
		if viewport.Width <= 0 || viewport.Height <= 0 {
			http.Error(w, "Width and height must be positive", http.StatusBadRequest)
			return
		}
		accepted(w, session.Manager.ResizeViewport(viewport.Width, viewport.Height))
	})
}

// withSession resolves the sessionID route variable.
func withSession(sm *clients.SessionManager, next func(w http.ResponseWriter, r *http.Request, session *clients.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(mux.Vars(r)["sessionID"])
		if err != nil {
			http.Error(w, "Invalid session ID", http.StatusBadRequest)
			return
		}
		session, err := sm.Get(id)
		if err != nil {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		next(w, r, session)
	}
}

// accepted reports a queued command. Input is applied on the next tick.
func accepted(w http.ResponseWriter, err error) {
	if err != nil {
		http.Error(w, "Command queue is full", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
