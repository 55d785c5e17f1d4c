package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/messages"
	"github.com/Quelsed/azngameahun/pkg/state"
	"github.com/gorilla/websocket"
)

// WSClient plays a session hosted by a server.
// Frames are written to the state manager as they arrive.
type WSClient struct {
	serverAddr   string
	stateManager state.StateManager
	sessionChan  chan<- *messages.ServerSession
	eventChan    chan<- *messages.ServerEvent

	conn      *websocket.Conn
	writeLock sync.Mutex
	clientID  uint32
}

type NewWSClientOptions struct {
	ServerAddr   string
	StateManager state.StateManager
	// SessionChan receives the session assigned by the server. Optional.
	SessionChan chan<- *messages.ServerSession
	// EventChan receives session events. Optional; events are dropped when it is full.
	EventChan chan<- *messages.ServerEvent
}

// NewWSClient creates a new WebSocket client.
func NewWSClient(opts NewWSClientOptions) *WSClient {
	return &WSClient{
		serverAddr:   opts.ServerAddr,
		stateManager: opts.StateManager,
		sessionChan:  opts.SessionChan,
		eventChan:    opts.EventChan,
	}
}

// Connect establishes a connection to the WebSocket server.
func (c *WSClient) Connect() error {
	log.Info("Connecting to WebSocket server at %s", c.serverAddr)
	conn, _, err := websocket.DefaultDialer.Dial(c.serverAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	conn.SetReadLimit(messages.MessageBufferSize)
	c.conn = conn
	return nil
}

// HandleMessages reads from the server until the connection closes or ctx is done.
func (c *WSClient) HandleMessages(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			c.conn.Close()
		case <-done:
		}
	}()

	for {
		msg, err := ReadMessageFromWS(c.conn)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("Error reading WebSocket message from %s: %v", c.conn.RemoteAddr().String(), err)
			}
			log.Trace("Connection closed for %s", c.conn.RemoteAddr().String())
			return err
		}

		if err := c.handleMessage(ctx, msg); err != nil {
			log.Error("Failed to handle message: %v", err)
		}
	}
}

// handleMessage processes a received message in arrival order so frames never go backwards.
func (c *WSClient) handleMessage(ctx context.Context, msg *messages.Message) error {
	log.Trace("Received message from WebSocket server of type %s", msg.Type)

	switch msg.Type {
	case messages.MessageTypeServerSession:
		session := &messages.ServerSession{}
		if err := msg.DecodePayload(session); err != nil {
			return err
		}
		c.clientID = session.ClientID
		if c.sessionChan != nil {
			c.sessionChan <- session
		}
	case messages.MessageTypeServerFrame:
		frame, err := messages.DeserializeFrame(msg.Payload)
		if err != nil {
			return err
		}
		if err := c.stateManager.Set(ctx, frame); err != nil {
			return fmt.Errorf("failed to set frame: %v", err)
		}
	case messages.MessageTypeServerEvent:
		event := &messages.ServerEvent{}
		if err := msg.DecodePayload(event); err != nil {
			return err
		}
		if c.eventChan != nil {
			select {
			case c.eventChan <- event:
			default:
				log.Warn("Event channel is full, dropping %s event", event.Type)
			}
		}
	case messages.MessageTypeServerPong:
		log.Debug("Received server pong")
	default:
		return fmt.Errorf("received unexpected message type from WebSocket server: %s", msg.Type)
	}

	return nil
}

// Close closes the WebSocket connection.
func (c *WSClient) Close() error {
	if c.conn == nil {
		log.Warn("WebSocket connection is already closed")
		return nil
	}
	c.writeLock.Lock()
	defer c.writeLock.Unlock()
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}

// SendMessage sends a message to the WebSocket server.
func (c *WSClient) SendMessage(msg *messages.Message) error {
	if c.conn == nil {
		return fmt.Errorf("not connected")
	}
	c.writeLock.Lock()
	defer c.writeLock.Unlock()
	return WriteMessageToWS(c.conn, msg)
}

func (c *WSClient) RequestStart() error {
	return c.SendMessage(&messages.Message{ClientID: c.clientID, Type: messages.MessageTypeClientStart})
}

func (c *WSClient) RequestRestart() error {
	return c.SendMessage(&messages.Message{ClientID: c.clientID, Type: messages.MessageTypeClientRestart})
}

func (c *WSClient) RequestMove(side types.Side) error {
	msg, err := messages.NewJSONMessage(c.clientID, messages.MessageTypeClientMove, &messages.ClientMove{Side: side})
	if err != nil {
		return err
	}
	return c.SendMessage(msg)
}

func (c *WSClient) ResizeViewport(width, height float64) error {
	msg, err := messages.NewJSONMessage(c.clientID, messages.MessageTypeClientResize, &messages.ClientResize{Width: width, Height: height})
	if err != nil {
		return err
	}
	return c.SendMessage(msg)
}

func (c *WSClient) Ping() error {
	return c.SendMessage(&messages.Message{ClientID: c.clientID, Type: messages.MessageTypeClientPing})
}

// WriteMessageToWS writes a Message to a WebSocket connection
func WriteMessageToWS(conn *websocket.Conn, msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	if err := conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}

// ReadMessageFromWS reads a Message from a WebSocket connection
func ReadMessageFromWS(conn *websocket.Conn) (*messages.Message, error) {
	_, message, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	msg, err := messages.DeserializeMessage(message)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return msg, nil
}
