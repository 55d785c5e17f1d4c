package clients

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Quelsed/azngameahun/pkg/game"
	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/queue"
	"github.com/Quelsed/azngameahun/pkg/render"
	"github.com/Quelsed/azngameahun/pkg/repositories"
	"github.com/Quelsed/azngameahun/pkg/state"
	"github.com/Quelsed/azngameahun/pkg/workers"
	"github.com/google/uuid"
)

const (
	// ClientIDMaxRetries represents the maximum number of retries when generating a unique ID
	ClientIDMaxRetries = 1024
	// DefaultViewportWidth and DefaultViewportHeight size a session until its client reports a viewport
	DefaultViewportWidth  = 400
	DefaultViewportHeight = 600
)

// Session is one independent game served to a remote client.
type Session struct {
	ID        uuid.UUID
	ClientID  uint32
	CreatedAt time.Time
	// HighScore is the stored high score when the session was created
	HighScore int
	Manager   *game.GameManager
	State     state.StateManager
	Events    *EventManager

	cancel context.CancelFunc
	done   chan struct{}
}

// SessionManager creates, tracks and stops sessions.
type SessionManager struct {
	sessions     map[uuid.UUID]*Session
	clientIDs    map[uint32]uuid.UUID
	sessionsLock sync.RWMutex
	nextID       uint32

	repository      repositories.Repository
	saveRequestChan chan<- workers.SaveRequest
	assets          render.AssetSet
	tickInterval    time.Duration
	highScoreSlot   string
	seed            func() uint64
}

type NewSessionManagerOptions struct {
	// Repository provides the stored high score of new sessions. Optional.
	Repository repositories.Repository
	// SaveRequestChan receives high scores and finished runs. Optional.
	SaveRequestChan chan<- workers.SaveRequest
	Assets          render.AssetSet
	TickInterval    time.Duration
	HighScoreSlot   string
	// Seed returns the generator seed of a new session. Defaults to the clock.
	Seed func() uint64
}

func NewSessionManager(opts NewSessionManagerOptions) *SessionManager {
	seed := opts.Seed
	if seed == nil {
		seed = func() uint64 { return uint64(time.Now().UnixNano()) }
	}
	slot := opts.HighScoreSlot
	if slot == "" {
		slot = repositories.DefaultHighScoreSlot
	}
	return &SessionManager{
		sessions:        make(map[uuid.UUID]*Session),
		clientIDs:       make(map[uint32]uuid.UUID),
		nextID:          1,
		repository:      opts.Repository,
		saveRequestChan: opts.SaveRequestChan,
		assets:          opts.Assets,
		tickInterval:    opts.TickInterval,
		highScoreSlot:   slot,
		seed:            seed,
	}
}

// Create starts a new idle session whose game loop runs until ctx is done or the session is removed.
func (sm *SessionManager) Create(ctx context.Context) (*Session, error) {
	highScore := game.LoadHighScore(ctx, sm.repository, sm.highScoreSlot)

	sm.sessionsLock.Lock()
	defer sm.sessionsLock.Unlock()

	clientID, err := sm.generateUniqueID(ClientIDMaxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate a unique ID: %v", err)
	}

	events := NewEventManager()
	stateManager := state.NewInMemoryStateManager()
	manager := game.NewGameManager(game.NewGameManagerOptions{
		Session: game.NewSession(game.NewSessionOptions{
			Width:     DefaultViewportWidth,
			Height:    DefaultViewportHeight,
			HighScore: highScore,
			Seed:      sm.seed(),
		}),
		CommandQueue:    queue.NewInMemoryQueue(queue.DefaultQueueBufferSize),
		StateManager:    stateManager,
		Assets:          sm.assets,
		SaveRequestChan: sm.saveRequestChan,
		EventHandler:    events.Trigger,
		TickInterval:    sm.tickInterval,
		HighScoreSlot:   sm.highScoreSlot,
	})

	sessionCtx, cancel := context.WithCancel(ctx)
	session := &Session{
		ID:        uuid.New(),
		ClientID:  clientID,
		CreatedAt: time.Now(),
		HighScore: highScore,
		Manager:   manager,
		State:     stateManager,
		Events:    events,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	sm.sessions[session.ID] = session
	sm.clientIDs[clientID] = session.ID

	go func() {
		defer close(session.done)
		if err := manager.Start(sessionCtx); err != nil {
			log.Warn("Game loop of session %s did not run: %v", session.ID, err)
		}
	}()

	log.Info("Session %s created for client %d", session.ID, clientID)
	return session, nil
}

// Get returns the session with the given id or ErrSessionNotFound.
func (sm *SessionManager) Get(id uuid.UUID) (*Session, error) {
	sm.sessionsLock.RLock()
	defer sm.sessionsLock.RUnlock()
	session, ok := sm.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// List returns every session, oldest first.
func (sm *SessionManager) List() []*Session {
	sm.sessionsLock.RLock()
	defer sm.sessionsLock.RUnlock()
	sessions := make([]*Session, 0, len(sm.sessions))
	for _, session := range sm.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ClientID < sessions[j].ClientID })
	return sessions
}

// Remove stops the session and waits for its game loop to exit.
func (sm *SessionManager) Remove(id uuid.UUID) error {
	sm.sessionsLock.Lock()
	session, ok := sm.sessions[id]
	if ok {
		delete(sm.sessions, id)
		delete(sm.clientIDs, session.ClientID)
	}
	sm.sessionsLock.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	session.stop()
	log.Info("Session %s removed", id)
	return nil
}

// Close stops every session.
func (sm *SessionManager) Close() {
	for _, session := range sm.List() {
		if err := sm.Remove(session.ID); err != nil {
			log.Warn("Failed to remove session %s: %v", session.ID, err)
		}
	}
}

func (s *Session) stop() {
	s.Manager.Stop()
	s.cancel()
	<-s.done
}

// generateUniqueID generates a unique client ID with a maximum number of retries
// it reads from the sessions, so it needs to be locked before calling
func (sm *SessionManager) generateUniqueID(maxRetries int) (uint32, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := sm.nextID
		sm.nextID++
		if id == 0 {
			// 0 is reserved for the server
			continue
		}
		if _, ok := sm.clientIDs[id]; !ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}
