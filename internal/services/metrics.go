package services

import (
	"sync"
	"sync/atomic"
	"time"
)

type Metrics struct {
	totalFrames   atomic.Int64
	noFaceFrames  atomic.Int64
	totalErrors   atomic.Int64
	totalLatency  atomic.Int64
	activeClients atomic.Int32
	lastFrameTime atomic.Int64

	alarmsRaised  atomic.Int64
	yawnsDetected atomic.Int64

	smsSent    atomic.Int64
	smsSkipped atomic.Int64
	smsFailed  atomic.Int64

	wsConnections atomic.Int64
	wsMessages    atomic.Int64
	wsErrors      atomic.Int64
}

var (
	metricsInstance *Metrics
	metricsOnce     sync.Once
)

func NewMetrics() *Metrics {
	return &Metrics{}
}

func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = NewMetrics()
	})
	return metricsInstance
}

func (m *Metrics) IncrementFrames() {
	m.totalFrames.Add(1)
	m.lastFrameTime.Store(time.Now().Unix())
}

func (m *Metrics) IncrementNoFaceFrames() {
	m.noFaceFrames.Add(1)
}

func (m *Metrics) IncrementErrors() {
	m.totalErrors.Add(1)
}

func (m *Metrics) RecordLatency(duration time.Duration) {
	m.totalLatency.Add(duration.Milliseconds())
}

func (m *Metrics) SetActiveClients(count int) {
	m.activeClients.Store(int32(count))
}

func (m *Metrics) IncrementAlarms() {
	m.alarmsRaised.Add(1)
}

func (m *Metrics) IncrementYawns() {
	m.yawnsDetected.Add(1)
}

func (m *Metrics) IncrementSMSSent() {
	m.smsSent.Add(1)
}

func (m *Metrics) IncrementSMSSkipped() {
	m.smsSkipped.Add(1)
}

func (m *Metrics) IncrementSMSFailed() {
	m.smsFailed.Add(1)
}

func (m *Metrics) IncrementWebSocketConnections() {
	m.wsConnections.Add(1)
}

func (m *Metrics) DecrementWebSocketConnections() {
	m.wsConnections.Add(-1)
}

func (m *Metrics) IncrementWebSocketMessages() {
	m.wsMessages.Add(1)
}

func (m *Metrics) IncrementWebSocketErrors() {
	m.wsErrors.Add(1)
}

func (m *Metrics) GetTotalFrames() int64 {
	return m.totalFrames.Load()
}

func (m *Metrics) GetActiveClients() int {
	return int(m.activeClients.Load())
}

func (m *Metrics) GetAvgLatency() float64 {
	frames := m.totalFrames.Load()
	if frames == 0 {
		return 0
	}
	return float64(m.totalLatency.Load()) / float64(frames)
}

// Snapshot returns all counters for the metrics endpoint.
func (m *Metrics) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"total_frames":    m.totalFrames.Load(),
		"no_face_frames":  m.noFaceFrames.Load(),
		"total_errors":    m.totalErrors.Load(),
		"avg_latency_ms":  m.GetAvgLatency(),
		"active_clients":  m.activeClients.Load(),
		"last_frame_time": m.lastFrameTime.Load(),
		"alarms_raised":   m.alarmsRaised.Load(),
		"yawns_detected":  m.yawnsDetected.Load(),
		"sms_sent":        m.smsSent.Load(),
		"sms_skipped":     m.smsSkipped.Load(),
		"sms_failed":      m.smsFailed.Load(),
		"ws_connections":  m.wsConnections.Load(),
		"ws_messages":     m.wsMessages.Load(),
		"ws_errors":       m.wsErrors.Load(),
	}
}
