package network

import (
	"fmt"

	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/messages"
)

// Commander accepts player input for a session.
// *game.GameManager and *WSClient both implement it.
type Commander interface {
	RequestStart() error
	RequestRestart() error
	RequestMove(side types.Side) error
	ResizeViewport(width, height float64) error
}

// HandleClientMessage applies a client message to the session behind commander.
// It returns the reply to send back, if any.
func HandleClientMessage(commander Commander, message *messages.Message) (*messages.Message, error) {
	switch message.Type {
	case messages.MessageTypeClientPing:
		return &messages.Message{
			ClientID: 0, // ClientID 0 means the message is from the server
			Type:     messages.MessageTypeServerPong,
		}, nil
	case messages.MessageTypeClientStart:
		return nil, commander.RequestStart()
	case messages.MessageTypeClientRestart:
		return nil, commander.RequestRestart()
	case messages.MessageTypeClientMove:
		move := &messages.ClientMove{}
		if err := message.DecodePayload(move); err != nil {
			return nil, err
		}
		return nil, commander.RequestMove(move.Side)
	case messages.MessageTypeClientResize:
		resize := &messages.ClientResize{}
		if err := message.DecodePayload(resize); err != nil {
			return nil, err
		}
		if resize.Width <= 0 || resize.Height <= 0 {
			return nil, fmt.Errorf("invalid viewport %vx%v", resize.Width, resize.Height)
		}
		return nil, commander.ResizeViewport(resize.Width, resize.Height)
	default:
		return nil, fmt.Errorf("received unexpected message type from client: %s", message.Type)
	}
}
