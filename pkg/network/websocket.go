package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Quelsed/azngameahun/pkg/clients"
	"github.com/Quelsed/azngameahun/pkg/game/constants"
	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/messages"
	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

var errInvalidSessionID = errors.New("invalid session id")

// WSHandler streams sessions to browser and desktop clients.
// A connection either creates its own session or joins the one named by the
// "session" query parameter.
type WSHandler struct {
	sessionManager *clients.SessionManager
	frameInterval  time.Duration
	writeTimeout   time.Duration
}

type NewWSHandlerOptions struct {
	SessionManager *clients.SessionManager
	// FrameInterval is how often the latest frame is checked for changes
	FrameInterval time.Duration
	WriteTimeout  time.Duration
}

func NewWSHandler(opts NewWSHandlerOptions) *WSHandler {
	frameInterval := opts.FrameInterval
	if frameInterval <= 0 {
		frameInterval = constants.TickInterval
	}
	writeTimeout := opts.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &WSHandler{
		sessionManager: opts.SessionManager,
		frameInterval:  frameInterval,
		writeTimeout:   writeTimeout,
	}
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, owned, err := h.resolveSession(r)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, clients.ErrSessionNotFound) {
			status = http.StatusNotFound
		} else if errors.Is(err, errInvalidSessionID) {
			status = http.StatusBadRequest
		}
		log.Warn("Rejecting WebSocket connection from %s: %v", r.RemoteAddr, err)
		http.Error(w, err.Error(), status)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Error("Failed to upgrade to WebSocket: %v", err)
		if owned {
			h.sessionManager.Remove(session.ID)
		}
		return
	}
	conn.SetReadLimit(messages.MessageBufferSize)
	log.Debug("New WebSocket connection from %s for session %s", r.RemoteAddr, session.ID)

	c := &wsConnection{
		conn:         conn,
		session:      session,
		writeTimeout: h.writeTimeout,
	}
	c.serve(r.Context(), h.frameInterval)

	if owned {
		if err := h.sessionManager.Remove(session.ID); err != nil {
			log.Warn("Failed to remove session %s: %v", session.ID, err)
		}
	}
}

func (h *WSHandler) resolveSession(r *http.Request) (*clients.Session, bool, error) {
	id := r.URL.Query().Get("session")
	if id == "" {
		session, err := h.sessionManager.Create(context.WithoutCancel(r.Context()))
		return session, true, err
	}
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", errInvalidSessionID, err)
	}
	session, err := h.sessionManager.Get(sessionID)
	return session, false, err
}

type wsConnection struct {
	conn         *websocket.Conn
	session      *clients.Session
	writeTimeout time.Duration
	writeLock    sync.Mutex
}

// serve runs the connection until the client goes away or ctx is done.
func (c *wsConnection) serve(ctx context.Context, frameInterval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	sessionMessage, err := messages.NewJSONMessage(c.session.ClientID, messages.MessageTypeServerSession, &messages.ServerSession{
		SessionID: c.session.ID.String(),
		ClientID:  c.session.ClientID,
		HighScore: c.session.HighScore,
	})
	if err != nil {
		log.Error("Failed to build session message: %v", err)
		return
	}
	if err := c.write(ctx, sessionMessage); err != nil {
		log.Error("Failed to send session message: %v", err)
		return
	}

	unregister := c.session.Events.RegisterHandler(func(event types.Event) {
		msg, err := messages.NewJSONMessage(c.session.ClientID, messages.MessageTypeServerEvent, messages.ServerEventFromEvent(event))
		if err != nil {
			log.Error("Failed to build event message: %v", err)
			return
		}
		if err := c.write(ctx, msg); err != nil {
			log.Debug("Failed to send event to client %d: %v", c.session.ClientID, err)
		}
	})
	defer unregister()

	go c.streamFrames(ctx, cancel, frameInterval)

	for {
		_, b, err := c.conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && ctx.Err() == nil {
				log.Error("Error reading WebSocket message from client %d: %v", c.session.ClientID, err)
			}
			log.Trace("Connection closed for client %d", c.session.ClientID)
			return
		}

		msg, err := messages.DeserializeMessage(b)
		if err != nil {
			log.Warn("Failed to deserialize message from client %d: %v", c.session.ClientID, err)
			continue
		}
		reply, err := HandleClientMessage(c.session.Manager, msg)
		if err != nil {
			log.Warn("Failed to handle %s message from client %d: %v", msg.Type, c.session.ClientID, err)
			continue
		}
		if reply != nil {
			if err := c.write(ctx, reply); err != nil {
				log.Error("Failed to reply to client %d: %v", c.session.ClientID, err)
				return
			}
		}
	}
}

// streamFrames sends every new frame of the session. A failed write ends the connection.
func (c *wsConnection) streamFrames(ctx context.Context, cancel context.CancelFunc, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastTick uint64
	sent := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frame, err := c.session.State.Get(ctx)
			if err != nil {
				log.Error("Failed to get frame of session %s: %v", c.session.ID, err)
				continue
			}
			if frame.Width == 0 {
				// nothing published yet
				continue
			}
			if sent && frame.Tick == lastTick {
				continue
			}
			if err := c.write(ctx, messages.NewFrameMessage(c.session.ClientID, frame)); err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Debug("Failed to send frame to client %d: %v", c.session.ClientID, err)
				}
				cancel()
				return
			}
			lastTick = frame.Tick
			sent = true
		}
	}
}

// write serializes writers; the websocket connection allows one concurrent writer.
func (c *wsConnection) write(ctx context.Context, msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	c.writeLock.Lock()
	defer c.writeLock.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()
	if err := c.conn.Write(ctx, websocket.MessageBinary, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %w", err)
	}
	return nil
}
