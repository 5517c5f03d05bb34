package models

import "wakeguard/go-backend/internal/detection"

// Websocket message types exchanged with clients.
const (
	WSTypePing      = "PING"
	WSTypePong      = "PONG"
	WSTypeWelcome   = "WELCOME"
	WSTypeFrame     = "FRAME"     // base64 JPEG, server-side landmarking
	WSTypeLandmarks = "LANDMARKS" // client-side face mesh output
	WSTypeNoFace    = "NO_FACE"
	WSTypeStatus    = "STATUS"
	WSTypeCue       = "CUE" // audio cue on/off edges while alarmed
	WSTypeError     = "ERROR"
)

type WSMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	ClientID  string      `json:"client_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// FramePayload carries one raw camera frame for server-side landmarking.
type FramePayload struct {
	Frame          string `json:"frame"`
	SequenceNumber int32  `json:"sequence_number,omitempty"`
}

// LandmarksPayload carries pre-extracted normalized landmarks.
type LandmarksPayload struct {
	Landmarks      []detection.Point `json:"landmarks"`
	SequenceNumber int32             `json:"sequence_number,omitempty"`
}

// StatusPayload is the per-frame answer: the state machine outcome plus the
// echoed sequence number so clients can match frames to results.
type StatusPayload struct {
	detection.FrameResult
	SequenceNumber int32 `json:"sequence_number,omitempty"`
}

// CuePayload signals an audio cue edge.
type CuePayload struct {
	On bool `json:"on"`
}

type ErrorPayload struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
