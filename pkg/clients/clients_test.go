package clients

import (
	"context"
	"testing"
	"time"

	mocks "github.com/Quelsed/azngameahun/mocks/github.com/Quelsed/azngameahun/pkg/repositories"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/repositories"
	"github.com/Quelsed/azngameahun/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionManager(t *testing.T) {
	ctx := context.Background()
	repository := mocks.NewRepository(t)
	repository.EXPECT().GetHighScore(mock.Anything, repositories.DefaultHighScoreSlot).
		Return(&models.HighScore{Score: 11}, nil).Twice()

	sm := NewSessionManager(NewSessionManagerOptions{
		Repository:   repository,
		TickInterval: time.Millisecond,
		Seed:         func() uint64 { return 1 },
	})
	defer sm.Close()

	first, err := sm.Create(ctx)
	require.NoError(t, err)
	second, err := sm.Create(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, uint32(1), first.ClientID)
	assert.Equal(t, uint32(2), second.ClientID)

	require.Eventually(t, func() bool {
		frame, err := first.State.Get(ctx)
		return err == nil && frame.Tick > 0
	}, time.Second, time.Millisecond)

	frame, err := first.State.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "idle", frame.HUD.Phase)
	assert.Equal(t, 11, frame.HUD.HighScore)

	got, err := sm.Get(second.ID)
	require.NoError(t, err)
	assert.Same(t, second, got)

	listed := sm.List()
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)

	require.NoError(t, sm.Remove(first.ID))
	_, err = sm.Get(first.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, sm.Remove(first.ID), ErrSessionNotFound)
	assert.Len(t, sm.List(), 1)
}

func TestSessionManager_EventsReachSubscribers(t *testing.T) {
	ctx := context.Background()
	sm := NewSessionManager(NewSessionManagerOptions{TickInterval: time.Millisecond})
	defer sm.Close()

	session, err := sm.Create(ctx)
	require.NoError(t, err)

	received := make(chan types.Event, 8)
	unregister := session.Events.RegisterHandler(func(event types.Event) {
		received <- event
	})
	defer unregister()

	require.NoError(t, session.Manager.RequestStart())

	select {
	case event := <-received:
		assert.Equal(t, types.EventRunStarted, event.Type)
		assert.NotEqual(t, uuid.Nil, event.RunID)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestEventManager_Unregister(t *testing.T) {
	em := NewEventManager()
	received := make(chan types.Event, 1)
	unregister := em.RegisterHandler(func(event types.Event) {
		received <- event
	})
	unregister()

	em.Trigger(types.Event{Type: types.EventMoveResolved})

	select {
	case <-received:
		t.Fatal("unregistered handler was called")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestEventManager_DeliversInOrder(t *testing.T) {
	em := NewEventManager()
	received := make(chan types.EventType, 2*DefaultSubscriberBufferSize)
	unregister := em.RegisterHandler(func(event types.Event) {
		received <- event.Type
	})
	defer unregister()

	rounds := DefaultSubscriberBufferSize / 2
	for i := 0; i < rounds; i++ {
		em.Trigger(types.Event{Type: types.EventGameOver})
		em.Trigger(types.Event{Type: types.EventGameOverShown})
	}

	for i := 0; i < rounds; i++ {
		for _, want := range []types.EventType{types.EventGameOver, types.EventGameOverShown} {
			select {
			case got := <-received:
				require.Equal(t, want, got, "round %d", i)
			case <-time.After(time.Second):
				t.Fatalf("round %d: no %s event received", i, want)
			}
		}
	}
}

func TestEventManager_UnregisterTwice(t *testing.T) {
	em := NewEventManager()
	unregister := em.RegisterHandler(func(types.Event) {})
	unregister()
	assert.NotPanics(t, unregister)
	assert.NotPanics(t, func() { em.Trigger(types.Event{Type: types.EventGameOver}) })
}
