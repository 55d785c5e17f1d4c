package network

import (
	"encoding/json"
	"testing"

	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCommander struct {
	calls []string
	moves []types.Side
	sizes [][2]float64
}

func (c *recordingCommander) RequestStart() error {
	c.calls = append(c.calls, "start")
	return nil
}

func (c *recordingCommander) RequestRestart() error {
	c.calls = append(c.calls, "restart")
	return nil
}

func (c *recordingCommander) RequestMove(side types.Side) error {
	c.calls = append(c.calls, "move")
	c.moves = append(c.moves, side)
	return nil
}

func (c *recordingCommander) ResizeViewport(width, height float64) error {
	c.calls = append(c.calls, "resize")
	c.sizes = append(c.sizes, [2]float64{width, height})
	return nil
}

func TestHandleClientMessage(t *testing.T) {
	movePayload, err := json.Marshal(&messages.ClientMove{Side: types.Right})
	require.NoError(t, err)
	resizePayload, err := json.Marshal(&messages.ClientResize{Width: 800, Height: 1200})
	require.NoError(t, err)
	badResizePayload, err := json.Marshal(&messages.ClientResize{Width: 0, Height: 1200})
	require.NoError(t, err)

	tests := []struct {
		name      string
		message   *messages.Message
		wantCalls []string
		wantReply messages.MessageType
		wantErr   bool
	}{
		{
			name:      "ping is answered with pong",
			message:   &messages.Message{Type: messages.MessageTypeClientPing},
			wantReply: messages.MessageTypeServerPong,
		},
		{
			name:      "start",
			message:   &messages.Message{Type: messages.MessageTypeClientStart},
			wantCalls: []string{"start"},
		},
		{
			name:      "restart",
			message:   &messages.Message{Type: messages.MessageTypeClientRestart},
			wantCalls: []string{"restart"},
		},
		{
			name:      "move",
			message:   &messages.Message{Type: messages.MessageTypeClientMove, Payload: movePayload},
			wantCalls: []string{"move"},
		},
		{
			name:      "move with a broken payload",
			message: &messages.Message{Type: messages.MessageTypeClientMove, Payload: []byte("{")},
			wantErr: true,
		},
		{
			name:      "resize",
			message:   &messages.Message{Type: messages.MessageTypeClientResize, Payload: resizePayload},
			wantCalls: []string{"resize"},
		},
		{
			name:    "resize to an empty viewport",
			message: &messages.Message{Type: messages.MessageTypeClientResize, Payload: badResizePayload},
			wantErr: true,
		},
		{
			name:    "server message from a client",
			message: &messages.Message{Type: messages.MessageTypeServerFrame},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commander := &recordingCommander{}
			reply, err := HandleClientMessage(commander, tt.message)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, commander.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCalls, commander.calls)
			if tt.wantReply != 0 {
				require.NotNil(t, reply)
				assert.Equal(t, tt.wantReply, reply.Type)
			} else {
				assert.Nil(t, reply)
			}
		})
	}

	t.Run("move decodes the side", func(t *testing.T) {
		commander := &recordingCommander{}
		_, err := HandleClientMessage(commander, &messages.Message{Type: messages.MessageTypeClientMove, Payload: movePayload})
		require.NoError(t, err)
		assert.Equal(t, []types.Side{types.Right}, commander.moves)
	})
}
