package detection

// Event is a state machine transition worth acting on.
type Event string

const (
	EventAlarmStarted Event = "alarm_started"
	EventAlarmStopped Event = "alarm_stopped"
	EventYawnStarted  Event = "yawn_started"
	EventYawnStopped  Event = "yawn_stopped"
)

// Alert levels reported to clients so they can color the overlay.
const (
	AlertLevelNone    = "none"
	AlertLevelWarning = "warning"
	AlertLevelAlarm   = "alarm"
)

// Config holds the detection thresholds and landmark index sets for one
// monitor. Zero values fall back to the stock settings.
type Config struct {
	// EARThreshold: frames with averaged EAR strictly below this count as
	// closed eyes.
	EARThreshold float64
	// ConsecFrames: closed-eye frames in a row before the alarm trips.
	ConsecFrames int

	MARThreshold float64
	YawnFrames   int

	LeftEye  []int
	RightEye []int
	Mouth    []int
}

func (c *Config) withDefaults() {
	if c.EARThreshold == 0 {
		c.EARThreshold = 0.22
	}
	if c.ConsecFrames == 0 {
		c.ConsecFrames = 20
	}
	if c.MARThreshold == 0 {
		c.MARThreshold = 0.6
	}
	if c.YawnFrames == 0 {
		c.YawnFrames = 20
	}
	if c.LeftEye == nil {
		c.LeftEye = LeftEyeIndices[:]
	}
	if c.RightEye == nil {
		c.RightEye = RightEyeIndices[:]
	}
	if c.Mouth == nil {
		c.Mouth = MouthIndices[:]
	}
}

// FrameResult is the outcome of feeding one frame to the monitor.
type FrameResult struct {
	FaceDetected bool    `json:"face_detected"`
	EAR          float64 `json:"ear"`
	EARValid     bool    `json:"ear_valid"`
	MAR          float64 `json:"mar"`
	MARValid     bool    `json:"mar_valid"`
	ClosedFrames int     `json:"closed_frames"`
	AlarmActive  bool    `json:"alarm_active"`
	Yawning      bool    `json:"yawning"`
	AlertLevel   string  `json:"alert_level"`
	Events       []Event `json:"events,omitempty"`
}

// Monitor is the drowsiness state machine. It consumes one sample per video
// frame and emits alarm/yawn transitions. It is not safe for concurrent use;
// each session owns exactly one monitor and feeds it serially.
type Monitor struct {
	cfg Config

	closedFrames int
	yawnFrames   int
	alarmActive  bool
	yawning      bool
}

func NewMonitor(cfg Config) *Monitor {
	cfg.withDefaults()
	return &Monitor{cfg: cfg}
}

// Config returns the effective settings after defaulting.
func (m *Monitor) Config() Config {
	return m.cfg
}

// ProcessLandmarks advances the state machine with one detected face. The
// eye and mouth subsets are sliced out by the configured index sets; a frame
// whose EAR is undefined (degenerate geometry) leaves the counters untouched.
func (m *Monitor) ProcessLandmarks(landmarks []Point) FrameResult {
	sample := sample{faceDetected: true}

	left, lerr := subset(landmarks, m.cfg.LeftEye)
	right, rerr := subset(landmarks, m.cfg.RightEye)
	if lerr == nil && rerr == nil {
		leftEAR, lerr2 := EyeAspectRatio(left)
		rightEAR, rerr2 := EyeAspectRatio(right)
		if lerr2 == nil && rerr2 == nil {
			sample.ear = (leftEAR + rightEAR) / 2.0
			sample.earValid = true
		}
	}

	if mouth, err := subset(landmarks, m.cfg.Mouth); err == nil {
		if mar, err := MouthAspectRatio(mouth); err == nil {
			sample.mar = mar
			sample.marValid = true
		}
	}

	return m.advance(sample)
}

// ProcessNoFace advances the state machine for a frame without a detected
// face: the closed-eye run is discarded and any active alarm clears, since
// only a sustained low EAR keeps it alive.
func (m *Monitor) ProcessNoFace() FrameResult {
	return m.advance(sample{})
}

// Stop forces the monitor back to its baseline at session end, emitting
// alarm_stopped/yawn_stopped if needed so audio and alerts are silenced.
func (m *Monitor) Stop() []Event {
	var events []Event
	if m.alarmActive {
		m.alarmActive = false
		events = append(events, EventAlarmStopped)
	}
	if m.yawning {
		m.yawning = false
		events = append(events, EventYawnStopped)
	}
	m.closedFrames = 0
	m.yawnFrames = 0
	return events
}

type sample struct {
	faceDetected bool
	ear          float64
	earValid     bool
	mar          float64
	marValid     bool
}

func (m *Monitor) advance(s sample) FrameResult {
	var events []Event

	if !s.faceDetected {
		m.closedFrames = 0
		m.yawnFrames = 0
		if m.alarmActive {
			m.alarmActive = false
			events = append(events, EventAlarmStopped)
		}
		if m.yawning {
			m.yawning = false
			events = append(events, EventYawnStopped)
		}
		return m.result(s, events)
	}

	if s.earValid {
		if s.ear < m.cfg.EARThreshold {
			m.closedFrames++
		} else {
			m.closedFrames = 0
		}

		if m.closedFrames >= m.cfg.ConsecFrames {
			if !m.alarmActive {
				m.alarmActive = true
				events = append(events, EventAlarmStarted)
			}
		} else if m.alarmActive {
			m.alarmActive = false
			events = append(events, EventAlarmStopped)
		}
	}

	if s.marValid {
		if s.mar > m.cfg.MARThreshold {
			m.yawnFrames++
		} else {
			m.yawnFrames = 0
		}

		if m.yawnFrames >= m.cfg.YawnFrames {
			if !m.yawning {
				m.yawning = true
				events = append(events, EventYawnStarted)
			}
		} else if m.yawning {
			m.yawning = false
			events = append(events, EventYawnStopped)
		}
	}

	return m.result(s, events)
}

func (m *Monitor) result(s sample, events []Event) FrameResult {
	level := AlertLevelNone
	switch {
	case m.alarmActive:
		level = AlertLevelAlarm
	case m.closedFrames > 0 || m.yawning:
		level = AlertLevelWarning
	}

	return FrameResult{
		FaceDetected: s.faceDetected,
		EAR:          s.ear,
		EARValid:     s.earValid,
		MAR:          s.mar,
		MARValid:     s.marValid,
		ClosedFrames: m.closedFrames,
		AlarmActive:  m.alarmActive,
		Yawning:      m.yawning,
		AlertLevel:   level,
		Events:       events,
	}
}
