package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Quelsed/azngameahun/client/assets"
	clientgame "github.com/Quelsed/azngameahun/client/game"
	"github.com/Quelsed/azngameahun/pkg/game"
	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/messages"
	"github.com/Quelsed/azngameahun/pkg/network"
	"github.com/Quelsed/azngameahun/pkg/queue"
	"github.com/Quelsed/azngameahun/pkg/render"
	"github.com/Quelsed/azngameahun/pkg/repositories"
	"github.com/Quelsed/azngameahun/pkg/state"
	"github.com/Quelsed/azngameahun/pkg/version"
	"github.com/Quelsed/azngameahun/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	ScreenWidth  = 400
	ScreenHeight = 600
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	serverAddr := flag.String("server", "", "WebSocket URL of a game server, e.g. ws://localhost:9090/ws. Plays locally when empty")
	assetsDir := flag.String("assets", "assets", "Directory with the sprite images")
	debug := flag.Bool("debug", false, "Show debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", logger.Level())

	log.Info("Starting client version %s", version.Get())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	images := assets.LoadImages(*assetsDir, render.DefaultAssetPaths)

	gameOpts := clientgame.NewGameOptions{
		Debug:  *debug,
		Images: images,
	}
	var shutdown func()
	if *serverAddr != "" {
		shutdown = remote(ctx, *serverAddr, &gameOpts)
	} else {
		shutdown = local(ctx, images, &gameOpts)
	}
	defer shutdown()

	g, err := clientgame.NewGame(gameOpts)
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Lumberjack")
	ebiten.SetTPS(constants.TickRate)
	if err := ebiten.RunGame(g); err != nil && !clientgame.IsTermination(err) {
		log.Error("Failed to run game: %v", err)
	}
}

// local runs the game in process and persists scores to LUMBERJACK_DATABASE_URL.
func local(ctx context.Context, images render.AssetSet, opts *clientgame.NewGameOptions) func() {
	connStr := os.Getenv("LUMBERJACK_DATABASE_URL")
	if connStr == "" {
		connStr = "sqlite://lumberjack.db"
	}
	repository, err := repositories.NewRepositoryFromURL(ctx, connStr)
	if err != nil {
		// the game still runs, the high score just starts from 0
		log.Warn("Failed to open repository, scores will not be saved: %v", err)
		repository = repositories.NewInMemoryRepository()
	}

	saveRequestChan := make(chan workers.SaveRequest, 100)
	saveWorker := workers.NewSaveWorker(workers.NewSaveWorkerOptions{
		Repository:      repository,
		SaveRequestChan: saveRequestChan,
	})
	workerCtx, stopWorker := context.WithCancel(ctx)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		saveWorker.Start(workerCtx)
	}()

	slot := repositories.DefaultHighScoreSlot
	manager := game.NewGameManager(game.NewGameManagerOptions{
		Session: game.NewSession(game.NewSessionOptions{
			Width:     ScreenWidth,
			Height:    ScreenHeight,
			HighScore: game.LoadHighScore(ctx, repository, slot),
			Seed:      uint64(time.Now().UnixNano()),
		}),
		CommandQueue:    queue.NewInMemoryQueue(queue.DefaultQueueBufferSize),
		Assets:          images,
		SaveRequestChan: saveRequestChan,
		HighScoreSlot:   slot,
	})

	// ebiten updates at the simulation tick rate, so every update is one tick
	opts.Commander = manager
	opts.Frames = manager.Tick

	return func() {
		stopWorker()
		<-workerDone
		if err := repository.Close(context.Background()); err != nil {
			log.Error("Failed to close repository: %v", err)
		}
	}
}

// remote plays a session hosted by the server at addr.
func remote(ctx context.Context, addr string, opts *clientgame.NewGameOptions) func() {
	frames := state.NewInMemoryStateManager()
	sessionChan := make(chan *messages.ServerSession, 1)
	client := network.NewWSClient(network.NewWSClientOptions{
		ServerAddr:   addr,
		StateManager: frames,
		SessionChan:  sessionChan,
	})
	if err := client.Connect(); err != nil {
		panic(fmt.Sprintf("Failed to connect to server: %v", err))
	}

	errChan := make(chan error, 1)
	go func() {
		if err := client.HandleMessages(ctx); err != nil {
			errChan <- err
		}
	}()

	select {
	case session := <-sessionChan:
		log.Info("Playing session %s as client %d (best %d)", session.SessionID, session.ClientID, session.HighScore)
	case <-time.After(5 * time.Second):
		panic("Timed out waiting for a session from the server")
	}

	opts.Commander = client
	opts.Frames = frames.Get
	opts.ErrChan = errChan

	return func() {
		if err := client.Close(); err != nil {
			log.Debug("Failed to close connection: %v", err)
		}
	}
}
