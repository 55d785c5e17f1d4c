package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/queue"
	"github.com/Quelsed/azngameahun/pkg/render"
	"github.com/Quelsed/azngameahun/pkg/repositories"
	"github.com/Quelsed/azngameahun/pkg/repositories/models"
	"github.com/Quelsed/azngameahun/pkg/state"
	"github.com/Quelsed/azngameahun/pkg/workers"
)

// GameManager drives one session on a fixed tick.
// Input arrives through the command queue and is applied at the start of the next tick.
type GameManager struct {
	session         *Session
	commandQueue    queue.Queue
	stateManager    state.StateManager
	assets          render.AssetSet
	saveRequestChan chan<- workers.SaveRequest
	eventHandler    func(types.Event)
	tickInterval    time.Duration
	highScoreSlot   string
	tick            uint64

	lock    sync.Mutex
	running bool
	stopped bool
	cancel  context.CancelFunc
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Session      *Session
	CommandQueue queue.Queue
	// StateManager receives every rendered frame. Optional.
	StateManager state.StateManager
	Assets       render.AssetSet
	// SaveRequestChan receives high scores and finished runs. Optional.
	SaveRequestChan chan<- workers.SaveRequest
	// EventHandler is called for every session event after it is persisted. Optional.
	EventHandler  func(types.Event)
	TickInterval  time.Duration
	HighScoreSlot string
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	commandQueue := opts.CommandQueue
	if commandQueue == nil {
		commandQueue = queue.NewInMemoryQueue(queue.DefaultQueueBufferSize)
	}
	assets := opts.Assets
	if assets == nil {
		assets = render.NoAssets{}
	}
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = constants.TickInterval
	}
	slot := opts.HighScoreSlot
	if slot == "" {
		slot = repositories.DefaultHighScoreSlot
	}
	return &GameManager{
		session:         opts.Session,
		commandQueue:    commandQueue,
		stateManager:    opts.StateManager,
		assets:          assets,
		saveRequestChan: opts.SaveRequestChan,
		eventHandler:    opts.EventHandler,
		tickInterval:    tickInterval,
		highScoreSlot:   slot,
	}
}

// LoadHighScore reads the stored high score for slot.
// A missing record or a failing repository yields 0.
func LoadHighScore(ctx context.Context, repository repositories.Repository, slot string) int {
	if repository == nil {
		return 0
	}
	highScore, err := repository.GetHighScore(ctx, slot)
	if err != nil {
		if !repositories.IsNotFound(err) {
			log.Warn("Failed to load high score, starting from 0: %v", err)
		}
		return 0
	}
	return highScore.Score
}

// Start runs the game loop until ctx is done or Stop is called.
func (gm *GameManager) Start(ctx context.Context) error {
	gm.lock.Lock()
	if gm.stopped {
		gm.lock.Unlock()
		return fmt.Errorf("game manager is stopped")
	}
	if gm.running {
		gm.lock.Unlock()
		return fmt.Errorf("game manager is already running")
	}
	ctx, cancel := context.WithCancel(ctx)
	gm.cancel = cancel
	gm.running = true
	gm.lock.Unlock()

	defer func() {
		cancel()
		gm.lock.Lock()
		gm.running = false
		gm.lock.Unlock()
	}()

	if err := gm.publish(ctx, gm.session.Render(gm.assets)); err != nil {
		log.Error("Failed to publish initial frame: %v", err)
	}

	ticker := time.NewTicker(gm.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := gm.Tick(ctx); err != nil {
				log.Error("Failed to run game tick: %v", err)
			}
		}
	}
}

// Stop cancels the game loop. It is safe to call more than once.
func (gm *GameManager) Stop() {
	gm.lock.Lock()
	defer gm.lock.Unlock()
	if gm.stopped {
		return
	}
	gm.stopped = true
	if gm.cancel != nil {
		gm.cancel()
	}
}

// Tick runs one iteration of the game loop and returns the rendered frame.
// Callers that own their own loop (the desktop client) call it directly instead of Start.
func (gm *GameManager) Tick(ctx context.Context) (*render.Frame, error) {
	gm.processCommands()
	gm.session.TickTimer()
	gm.session.Advance()

	gm.tick++
	frame := gm.session.Render(gm.assets)
	frame.Tick = gm.tick

	gm.dispatchEvents()

	if err := gm.publish(ctx, frame); err != nil {
		return nil, err
	}
	return frame, nil
}

func (gm *GameManager) RequestMove(side types.Side) error {
	return gm.enqueue(MoveCommand{Side: side})
}

func (gm *GameManager) RequestStart() error {
	return gm.enqueue(StartCommand{})
}

func (gm *GameManager) RequestRestart() error {
	return gm.enqueue(RestartCommand{})
}

// ResizeViewport schedules a geometry change for the next tick.
func (gm *GameManager) ResizeViewport(width, height float64) error {
	return gm.enqueue(ResizeCommand{Width: width, Height: height})
}

func (gm *GameManager) enqueue(command interface{}) error {
	if err := gm.commandQueue.Enqueue(command); err != nil {
		log.Warn("Dropping %T: %v", command, err)
		return err
	}
	return nil
}

// processCommands applies every queued command in arrival order.
func (gm *GameManager) processCommands() {
	pending, err := gm.commandQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read commands: %v", err)
		return
	}
	for _, item := range pending {
		switch command := item.(type) {
		case MoveCommand:
			gm.session.ApplyMove(command.Side)
		case StartCommand:
			gm.session.Start()
		case RestartCommand:
			gm.session.Restart()
		case ResizeCommand:
			gm.session.Resize(command.Width, command.Height)
		default:
			log.Warn("Unknown command type: %T", item)
		}
	}
}

// dispatchEvents forwards the events of this tick to persistence and to the event handler.
func (gm *GameManager) dispatchEvents() {
	for _, event := range gm.session.DrainEvents() {
		switch event.Type {
		case types.EventHighScore:
			gm.requestSave(workers.SaveRequest{
				Type:  workers.SaveRequestHighScore,
				Slot:  gm.highScoreSlot,
				Score: event.Score,
			})
		case types.EventGameOverShown:
			gm.requestSave(workers.SaveRequest{
				Type: workers.SaveRequestRun,
				Run: &models.Run{
					ID:      event.RunID.String(),
					Score:   event.Score,
					Reason:  event.Reason.String(),
					EndedAt: time.Now().UnixMilli(),
				},
			})
		}

		if gm.eventHandler != nil {
			gm.eventHandler(event)
		}
	}
}

// requestSave never blocks the tick; a full channel drops the request.
func (gm *GameManager) requestSave(saveRequest workers.SaveRequest) {
	if gm.saveRequestChan == nil {
		return
	}
	select {
	case gm.saveRequestChan <- saveRequest:
	default:
		log.Warn("Save request channel is full, dropping request of type %d", saveRequest.Type)
	}
}

func (gm *GameManager) publish(ctx context.Context, frame *render.Frame) error {
	if gm.stateManager == nil {
		return nil
	}
	if err := gm.stateManager.Set(ctx, frame); err != nil {
		return fmt.Errorf("failed to publish frame: %v", err)
	}
	return nil
}
