package network

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Quelsed/azngameahun/pkg/clients"
	"github.com/Quelsed/azngameahun/pkg/messages"
	"github.com/Quelsed/azngameahun/pkg/repositories"
	"github.com/Quelsed/azngameahun/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWSHandler_Session(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repository := repositories.NewInMemoryRepository()
	require.NoError(t, repository.SetHighScore(ctx, repositories.DefaultHighScoreSlot, 7))

	sm := clients.NewSessionManager(clients.NewSessionManagerOptions{
		Repository:   repository,
		TickInterval: 5 * time.Millisecond,
		Seed:         func() uint64 { return 1 },
	})
	defer sm.Close()

	server := httptest.NewServer(NewWSHandler(NewWSHandlerOptions{
		SessionManager: sm,
		FrameInterval:  5 * time.Millisecond,
	}))
	defer server.Close()

	frames := state.NewInMemoryStateManager()
	sessionChan := make(chan *messages.ServerSession, 1)
	eventChan := make(chan *messages.ServerEvent, 16)
	client := NewWSClient(NewWSClientOptions{
		ServerAddr:   "ws" + strings.TrimPrefix(server.URL, "http"),
		StateManager: frames,
		SessionChan:  sessionChan,
		EventChan:    eventChan,
	})
	require.NoError(t, client.Connect())
	defer client.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		client.HandleMessages(ctx)
	}()

	var session *messages.ServerSession
	select {
	case session = <-sessionChan:
	case <-time.After(2 * time.Second):
		t.Fatal("no session message")
	}
	assert.Equal(t, 7, session.HighScore)
	assert.Len(t, sm.List(), 1)

	require.Eventually(t, func() bool {
		frame, err := frames.Get(ctx)
		return err == nil && frame.Tick > 0 && frame.HUD.Phase == "idle"
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, client.RequestStart())

	require.Eventually(t, func() bool {
		frame, err := frames.Get(ctx)
		return err == nil && frame.HUD.Phase == "running"
	}, 2*time.Second, 5*time.Millisecond)

	select {
	case event := <-eventChan:
		assert.Equal(t, "run_started", event.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no run started event")
	}

	require.NoError(t, client.Close())
	require.Eventually(t, func() bool {
		return len(sm.List()) == 0
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestWSHandler_UnknownSession(t *testing.T) {
	sm := clients.NewSessionManager(clients.NewSessionManagerOptions{})
	defer sm.Close()

	server := httptest.NewServer(NewWSHandler(NewWSHandlerOptions{SessionManager: sm}))
	defer server.Close()

	client := NewWSClient(NewWSClientOptions{
		ServerAddr:   "ws" + strings.TrimPrefix(server.URL, "http") + "?session=9f1a4a3e-6a0e-4d7c-8f43-1a2b3c4d5e6f",
		StateManager: state.NewInMemoryStateManager(),
	})
	assert.Error(t, client.Connect())
	assert.Empty(t, sm.List())
}
