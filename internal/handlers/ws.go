package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"wakeguard/go-backend/internal/alert"
	"wakeguard/go-backend/internal/config"
	"wakeguard/go-backend/internal/database"
	"wakeguard/go-backend/internal/detection"
	"wakeguard/go-backend/internal/models"
	"wakeguard/go-backend/internal/services"
	"wakeguard/go-backend/internal/session"
	pb "wakeguard/go-backend/pkg/pb"
)

// WSClient is one connected camera feed. Each client owns its own session
// (monitor + beeper), so clients never share alarm state.
type WSClient struct {
	conn     *websocket.Conn
	clientID string
	send     chan models.WSMessage
	sess     *session.Session
	beeper   *alert.Beeper

	mu     sync.Mutex
	closed bool

	// done is closed once the read pump has finished teardown; CloseAll
	// waits on it so sessions are fully stopped before the pool goes away.
	done chan struct{}
}

// close tears the client down: the session stop emits its forced
// transitions (and the beeper's final off edge) before the send channel is
// marked closed. Only the read pump calls it.
func (c *WSClient) close() {
	c.sess.Stop()
	c.beeper.Stop()

	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	close(c.send)
}

// enqueue drops the message when the client's buffer is full rather than
// stalling frame processing, and refuses once the client is closed.
func (c *WSClient) enqueue(msg models.WSMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// WSHandler upgrades and serves websocket connections.
type WSHandler struct {
	cfg              *config.Config
	auth             *Handler
	db               *database.DB
	facemesh         *services.FaceMeshClient
	dispatcher       *alert.Dispatcher
	metrics          *services.Metrics
	logger           *logrus.Logger
	defaultRecipient string

	mu      sync.RWMutex
	clients map[string]*WSClient
}

func NewWSHandler(cfg *config.Config, auth *Handler, db *database.DB, facemesh *services.FaceMeshClient, dispatcher *alert.Dispatcher, defaultRecipient string, metrics *services.Metrics, logger *logrus.Logger) *WSHandler {
	return &WSHandler{
		cfg:              cfg,
		auth:             auth,
		db:               db,
		facemesh:         facemesh,
		dispatcher:       dispatcher,
		defaultRecipient: defaultRecipient,
		metrics:          metrics,
		logger:           logger,
		clients:          make(map[string]*WSClient),
	}
}

func (h *WSHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "" || origin == h.cfg.CORSOrigin || h.cfg.IsDev()
}

// inboundMessage keeps the payload raw so each type decodes its own shape.
type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (h *WSHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Errorf("websocket upgrade failed: %v", err)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = uuid.NewString()
	}

	client := &WSClient{
		conn:     conn,
		clientID: clientID,
		send:     make(chan models.WSMessage, 256),
		done:     make(chan struct{}),
	}
	client.beeper = alert.NewBeeper(h.cfg.BeepInterval, func(on bool) {
		client.enqueue(models.WSMessage{
			Type:      models.WSTypeCue,
			ClientID:  clientID,
			Timestamp: time.Now().Unix(),
			Payload:   models.CuePayload{On: on},
		})
	})

	recordID, recipient := h.attachRecord(r)
	client.sess = session.New(session.Options{
		Monitor: detection.NewMonitor(detection.Config{
			EARThreshold: h.cfg.EARThreshold,
			ConsecFrames: h.cfg.ConsecFrames,
			MARThreshold: h.cfg.MARThreshold,
			YawnFrames:   h.cfg.YawnFrames,
		}),
		Cue:            client.beeper,
		Notifier:       h.dispatcher,
		Store:          h.db,
		Metrics:        h.metrics,
		Logger:         h.logger,
		AlertRecipient: recipient,
		RecordID:       recordID,
	})

	h.register(client)
	h.logger.Infof("websocket client connected: %s", clientID)

	go h.readPump(client)
	go h.writePump(client)

	client.enqueue(models.WSMessage{
		Type:      models.WSTypeWelcome,
		ClientID:  clientID,
		Timestamp: time.Now().Unix(),
		Payload: map[string]interface{}{
			"message": "Connected to WakeGuard",
			"version": "1.0",
		},
	})
}

// attachRecord resolves the database session row to log events into and the
// SMS recipient for this feed. A logged-in user gets their own alert
// contact; anonymous feeds run without persistence and fall back to the
// operator-configured default recipient.
func (h *WSHandler) attachRecord(r *http.Request) (int, string) {
	recipient := h.defaultRecipient

	cookie, err := r.Cookie("session_id")
	if err != nil {
		return 0, recipient
	}
	userID, ok := h.auth.UserIDForToken(cookie.Value)
	if !ok {
		return 0, recipient
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if contact, err := h.db.GetAlertContact(ctx, userID); err == nil {
		if contact.Enabled {
			recipient = contact.PhoneNumber
		} else {
			// The user switched alerts off; do not fall back to the
			// default number.
			recipient = ""
		}
	}

	recordID, err := strconv.Atoi(r.URL.Query().Get("session_id"))
	if err != nil {
		return 0, recipient
	}
	if _, err := h.db.GetSession(ctx, recordID, userID); err != nil {
		h.logger.Warnf("client referenced session %d it does not own", recordID)
		return 0, recipient
	}
	return recordID, recipient
}

func (h *WSHandler) register(c *WSClient) {
	h.mu.Lock()
	h.clients[c.clientID] = c
	count := len(h.clients)
	h.mu.Unlock()

	h.metrics.IncrementWebSocketConnections()
	h.metrics.SetActiveClients(count)
}

func (h *WSHandler) unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c.clientID)
	count := len(h.clients)
	h.mu.Unlock()

	h.metrics.DecrementWebSocketConnections()
	h.metrics.SetActiveClients(count)
}

// readPump owns the client teardown: unregister, stop the session, close the
// connection, then signal done. CloseAll only closes the connection to make
// this pump exit, so the session is never stopped concurrently with a frame.
func (h *WSHandler) readPump(client *WSClient) {
	defer func() {
		h.unregister(client)
		client.close()
		client.conn.Close()
		close(client.done)
		h.logger.Infof("websocket client disconnected: %s", client.clientID)
	}()

	client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		var msg inboundMessage
		if err := client.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Errorf("websocket error for %s: %v", client.clientID, err)
				h.metrics.IncrementWebSocketErrors()
			}
			return
		}
		h.metrics.IncrementWebSocketMessages()
		h.handleMessage(client, msg)
	}
}

func (h *WSHandler) handleMessage(client *WSClient, msg inboundMessage) {
	switch msg.Type {
	case models.WSTypePing:
		client.enqueue(models.WSMessage{
			Type:      models.WSTypePong,
			ClientID:  client.clientID,
			Timestamp: time.Now().Unix(),
		})

	case models.WSTypeLandmarks:
		var payload models.LandmarksPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			h.sendError(client, "invalid landmarks payload", "BAD_PAYLOAD")
			return
		}
		res := client.sess.ProcessLandmarks(payload.Landmarks)
		h.sendStatus(client, res, payload.SequenceNumber)

	case models.WSTypeNoFace:
		res := client.sess.ProcessNoFace()
		h.sendStatus(client, res, 0)

	case models.WSTypeFrame:
		h.handleFrame(client, msg.Payload)

	default:
		h.logger.Debugf("unknown websocket message type: %s", msg.Type)
	}
}

// handleFrame runs server-side landmarking: the raw frame goes to the
// facemesh sidecar and the result is fed through the client's session. A
// sidecar outage is benign — the frame counts as no-face and the feed keeps
// going; error replies are reserved for malformed client input.
func (h *WSHandler) handleFrame(client *WSClient, raw json.RawMessage) {
	var payload models.FramePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.sendError(client, "invalid frame payload", "BAD_PAYLOAD")
		return
	}
	frameData, err := base64.StdEncoding.DecodeString(payload.Frame)
	if err != nil || len(frameData) == 0 {
		h.sendError(client, "frame must be base64-encoded image data", "BAD_FRAME")
		return
	}

	if h.facemesh == nil {
		h.logger.Debugf("no facemesh sidecar, treating frame from %s as no-face", client.clientID)
		h.sendStatus(client, client.sess.ProcessNoFace(), payload.SequenceNumber)
		return
	}

	start := time.Now()
	result, err := h.facemesh.DetectLandmarks(context.Background(), &pb.VideoFrame{
		FrameData:      frameData,
		Timestamp:      time.Now().UnixMilli(),
		SequenceNumber: payload.SequenceNumber,
	})
	if err != nil {
		h.logger.Errorf("landmark detection failed for %s, treating as no-face: %v", client.clientID, err)
		h.metrics.IncrementErrors()
		h.sendStatus(client, client.sess.ProcessNoFace(), payload.SequenceNumber)
		return
	}
	h.metrics.RecordLatency(time.Since(start))

	var res detection.FrameResult
	if result.GetFaceDetected() {
		res = client.sess.ProcessLandmarks(services.LandmarkPoints(result))
	} else {
		res = client.sess.ProcessNoFace()
	}
	h.sendStatus(client, res, payload.SequenceNumber)
}

func (h *WSHandler) sendStatus(client *WSClient, res detection.FrameResult, seq int32) {
	client.enqueue(models.WSMessage{
		Type:      models.WSTypeStatus,
		ClientID:  client.clientID,
		Timestamp: time.Now().Unix(),
		Payload:   models.StatusPayload{FrameResult: res, SequenceNumber: seq},
	})
}

func (h *WSHandler) sendError(client *WSClient, message, code string) {
	h.metrics.IncrementWebSocketErrors()
	client.enqueue(models.WSMessage{
		Type:      models.WSTypeError,
		ClientID:  client.clientID,
		Timestamp: time.Now().Unix(),
		Payload:   models.ErrorPayload{Error: message, Code: code},
	})
}

func (h *WSHandler) writePump(client *WSClient) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// CloseAll ends every live session on shutdown so alarms do not outlive the
// server. Closing the connections makes each read pump exit and run its own
// teardown; waiting on done keeps the event store available until the forced
// transitions are recorded.
func (h *WSHandler) CloseAll() {
	h.mu.Lock()
	clients := make([]*WSClient, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.conn.Close()
	}
	for _, c := range clients {
		<-c.done
	}
	h.metrics.SetActiveClients(0)
}
