package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Quelsed/azngameahun/pkg/api"
	"github.com/Quelsed/azngameahun/pkg/assets"
	"github.com/Quelsed/azngameahun/pkg/clients"
	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/network"
	"github.com/Quelsed/azngameahun/pkg/render"
	"github.com/Quelsed/azngameahun/pkg/repositories"
	"github.com/Quelsed/azngameahun/pkg/version"
	"github.com/Quelsed/azngameahun/pkg/workers"
)

func main() {
	port := flag.Int("port", 9090, "port to listen on")
	assetsDir := flag.String("assets", "assets", "directory served under /assets/")
	slot := flag.String("high-score-slot", repositories.DefaultHighScoreSlot, "slot the high score is stored under")
	saveInterval := flag.Duration("save-interval", workers.DefaultSaveInterval, "how often finished runs are flushed to the database")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", logger.Level())

	log.Info("Starting server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connStr := os.Getenv("LUMBERJACK_DATABASE_URL")
	if connStr == "" {
		connStr = "sqlite://lumberjack.db"
	}
	repository, err := repositories.NewRepositoryFromURL(ctx, connStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(context.Background())

	saveRequestChannelSize := 100
	saveRequestChan := make(chan workers.SaveRequest, saveRequestChannelSize)
	saveWorker := workers.NewSaveWorker(workers.NewSaveWorkerOptions{
		Repository:      repository,
		SaveRequestChan: saveRequestChan,
		Interval:        *saveInterval,
	})
	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		saveWorker.Start(workerCtx)
	}()

	sprites := assets.NewFileSet(*assetsDir)
	sprites.LoadAll(render.DefaultAssetPaths)

	sessionManager := clients.NewSessionManager(clients.NewSessionManagerOptions{
		Repository:      repository,
		SaveRequestChan: saveRequestChan,
		Assets:          sprites,
		TickInterval:    constants.TickInterval,
		HighScoreSlot:   *slot,
	})

	apiServerOpts := api.NewAPIServerOptions{
		Port:           *port,
		Repository:     repository,
		SessionManager: sessionManager,
		WSHandler: network.NewWSHandler(network.NewWSHandlerOptions{
			SessionManager: sessionManager,
		}),
		AssetsDir:     *assetsDir,
		HighScoreSlot: *slot,
	}
	tlsCertFile := os.Getenv("LUMBERJACK_API_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("LUMBERJACK_API_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
	// sessions may still emit their last events, so the worker stops after them
	sessionManager.Close()
	stopWorker()
	<-workerDone
}
