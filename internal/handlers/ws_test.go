package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"wakeguard/go-backend/internal/alert"
	"wakeguard/go-backend/internal/config"
	"wakeguard/go-backend/internal/detection"
	"wakeguard/go-backend/internal/models"
	"wakeguard/go-backend/internal/services"
	"wakeguard/go-backend/internal/session"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testConfig() *config.Config {
	return &config.Config{
		EARThreshold: 0.22,
		ConsecFrames: 20,
		MARThreshold: 0.6,
		YawnFrames:   15,
		BeepInterval: time.Hour,
	}
}

// newTestClient builds a client whose frames never touch a real connection;
// replies land in the buffered send channel.
func newTestClient(cfg *config.Config) *WSClient {
	client := &WSClient{
		clientID: "test-client",
		send:     make(chan models.WSMessage, 16),
		done:     make(chan struct{}),
	}
	client.beeper = alert.NewBeeper(cfg.BeepInterval, func(bool) {})
	client.sess = session.New(session.Options{
		Monitor: detection.NewMonitor(detection.Config{
			EARThreshold: cfg.EARThreshold,
			ConsecFrames: cfg.ConsecFrames,
			MARThreshold: cfg.MARThreshold,
			YawnFrames:   cfg.YawnFrames,
		}),
		Cue:    client.beeper,
		Logger: quietLogger(),
	})
	return client
}

func framePayload(t *testing.T, data []byte) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(models.FramePayload{
		Frame:          base64.StdEncoding.EncodeToString(data),
		SequenceNumber: 42,
	})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func takeMessage(t *testing.T, client *WSClient) models.WSMessage {
	t.Helper()
	select {
	case msg := <-client.send:
		return msg
	default:
		t.Fatal("no message queued for client")
		return models.WSMessage{}
	}
}

func TestHandleFrameWithoutSidecarCountsAsNoFace(t *testing.T) {
	cfg := testConfig()
	h := NewWSHandler(cfg, nil, nil, nil, nil, "", services.NewMetrics(), quietLogger())
	client := newTestClient(cfg)

	h.handleFrame(client, framePayload(t, []byte("jpeg-bytes")))

	msg := takeMessage(t, client)
	if msg.Type != models.WSTypeStatus {
		t.Fatalf("reply type = %s, want %s", msg.Type, models.WSTypeStatus)
	}
	status, ok := msg.Payload.(models.StatusPayload)
	if !ok {
		t.Fatalf("payload type = %T", msg.Payload)
	}
	if status.FaceDetected {
		t.Fatal("frame without a sidecar reported a detected face")
	}
	if status.SequenceNumber != 42 {
		t.Fatalf("sequence number = %d, want 42", status.SequenceNumber)
	}
}

func TestHandleFrameSidecarOutageClearsAlarm(t *testing.T) {
	cfg := testConfig()
	cfg.ConsecFrames = 2
	h := NewWSHandler(cfg, nil, nil, nil, nil, "", services.NewMetrics(), quietLogger())
	client := newTestClient(cfg)

	// Trip the alarm via client-side landmarks, then lose the sidecar
	// mid-alarm: the frame counts as no-face and must clear it.
	for i := 0; i < 2; i++ {
		client.sess.ProcessLandmarks(closedEyesFrame())
	}
	h.handleFrame(client, framePayload(t, []byte("jpeg-bytes")))

	msg := takeMessage(t, client)
	status := msg.Payload.(models.StatusPayload)
	if status.AlarmActive {
		t.Fatal("alarm survived a frame the sidecar could not process")
	}
}

func TestHandleFrameRejectsBadEncoding(t *testing.T) {
	cfg := testConfig()
	h := NewWSHandler(cfg, nil, nil, nil, nil, "", services.NewMetrics(), quietLogger())
	client := newTestClient(cfg)

	raw, _ := json.Marshal(models.FramePayload{Frame: "not base64!!"})
	h.handleFrame(client, raw)

	msg := takeMessage(t, client)
	if msg.Type != models.WSTypeError {
		t.Fatalf("reply type = %s, want %s", msg.Type, models.WSTypeError)
	}
	if msg.Payload.(models.ErrorPayload).Code != "BAD_FRAME" {
		t.Fatalf("error code = %v", msg.Payload)
	}
}

func TestEnqueueAfterCloseIsRefused(t *testing.T) {
	client := newTestClient(testConfig())
	client.close()

	if client.enqueue(models.WSMessage{Type: models.WSTypePong}) {
		t.Fatal("enqueue accepted a message after close")
	}
	// Draining must observe a closed channel, not a stray message.
	if _, ok := <-client.send; ok {
		t.Fatal("send channel still open after close")
	}
}

// closedEyesFrame builds a 68-point landmark set with eyes shut far below
// any usable threshold.
func closedEyesFrame() []detection.Point {
	pts := make([]detection.Point, 68)
	eye := []detection.Point{
		{X: 0, Y: 0.5},
		{X: 0.3, Y: 0.52},
		{X: 0.6, Y: 0.52},
		{X: 1, Y: 0.5},
		{X: 0.6, Y: 0.48},
		{X: 0.3, Y: 0.48},
	}
	for i, idx := range detection.LeftEyeIndices {
		pts[idx] = eye[i]
	}
	for i, idx := range detection.RightEyeIndices {
		pts[idx] = eye[i]
	}
	for _, idx := range detection.MouthIndices {
		pts[idx] = detection.Point{X: 0.5, Y: 0.8}
	}
	pts[detection.MouthIndices[0]] = detection.Point{X: 0.3, Y: 0.8}
	pts[detection.MouthIndices[6]] = detection.Point{X: 0.7, Y: 0.8}
	return pts
}
