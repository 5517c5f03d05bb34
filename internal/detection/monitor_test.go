package detection

import (
	"testing"
)

// testFrame builds a full 68-point landmark frame with the given averaged EAR
// and a closed mouth.
func testFrame(ear float64) []Point {
	pts := make([]Point, 68)
	eye := eyeWithEAR(ear)
	for i, idx := range LeftEyeIndices {
		pts[idx] = eye[i]
	}
	for i, idx := range RightEyeIndices {
		pts[idx] = eye[i]
	}
	for _, idx := range MouthIndices {
		pts[idx] = Point{0.5, 0.8}
	}
	pts[MouthIndices[0]] = Point{0.3, 0.8}
	pts[MouthIndices[6]] = Point{0.7, 0.8}
	return pts
}

// yawnFrame is testFrame with the mouth opened past the MAR threshold.
func yawnFrame(ear float64) []Point {
	pts := testFrame(ear)
	pts[MouthIndices[2]] = Point{0.5, 0.95}
	pts[MouthIndices[10]] = Point{0.5, 0.65}
	pts[MouthIndices[4]] = Point{0.55, 0.95}
	pts[MouthIndices[8]] = Point{0.55, 0.65}
	return pts
}

// degenerateFrame collapses the left eye's horizontal pair so EAR is
// undefined for the frame.
func degenerateFrame() []Point {
	pts := testFrame(0.10)
	pts[LeftEyeIndices[3]] = pts[LeftEyeIndices[0]]
	return pts
}

func hasEvent(events []Event, e Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}

func TestMonitorAlarmOnExactThresholdFrame(t *testing.T) {
	m := NewMonitor(Config{EARThreshold: 0.22, ConsecFrames: 20})

	for i := 1; i <= 25; i++ {
		res := m.ProcessLandmarks(testFrame(0.10))
		switch {
		case i < 20:
			if res.AlarmActive {
				t.Fatalf("frame %d: alarm active before threshold", i)
			}
			if len(res.Events) != 0 {
				t.Fatalf("frame %d: unexpected events %v", i, res.Events)
			}
		case i == 20:
			if !res.AlarmActive || !hasEvent(res.Events, EventAlarmStarted) {
				t.Fatalf("frame 20: want alarm_started, got %+v", res)
			}
		default:
			if !res.AlarmActive {
				t.Fatalf("frame %d: alarm dropped while EAR low", i)
			}
			if len(res.Events) != 0 {
				t.Fatalf("frame %d: alarm_started must fire once, got %v", i, res.Events)
			}
		}
	}
}

func TestMonitorHighFramesDelayAlarm(t *testing.T) {
	m := NewMonitor(Config{EARThreshold: 0.22, ConsecFrames: 20})

	for i := 0; i < 19; i++ {
		if res := m.ProcessLandmarks(testFrame(0.30)); res.ClosedFrames != 0 {
			t.Fatalf("open-eye frame counted as closed: %+v", res)
		}
	}
	for i := 1; i <= 20; i++ {
		res := m.ProcessLandmarks(testFrame(0.10))
		if res.ClosedFrames != i {
			t.Fatalf("low frame %d: counter = %d", i, res.ClosedFrames)
		}
		if (i == 20) != hasEvent(res.Events, EventAlarmStarted) {
			t.Fatalf("low frame %d: events %v", i, res.Events)
		}
	}
}

func TestMonitorRecoveryResetsCounter(t *testing.T) {
	m := NewMonitor(Config{})

	for i := 0; i < 15; i++ {
		m.ProcessLandmarks(testFrame(0.10))
	}
	res := m.ProcessLandmarks(testFrame(0.25))
	if res.ClosedFrames != 0 {
		t.Fatalf("counter = %d after recovery frame, want 0", res.ClosedFrames)
	}

	// A full new run is required to trip the alarm.
	for i := 1; i <= 20; i++ {
		res = m.ProcessLandmarks(testFrame(0.10))
		if res.AlarmActive != (i >= 20) {
			t.Fatalf("frame %d after reset: alarm = %v", i, res.AlarmActive)
		}
	}
}

func TestMonitorRecoveryStopsAlarmImmediately(t *testing.T) {
	m := NewMonitor(Config{})
	for i := 0; i < 22; i++ {
		m.ProcessLandmarks(testFrame(0.10))
	}

	res := m.ProcessLandmarks(testFrame(0.30))
	if res.AlarmActive || !hasEvent(res.Events, EventAlarmStopped) {
		t.Fatalf("want immediate alarm_stopped on recovery, got %+v", res)
	}
}

func TestMonitorNoFaceClearsAlarm(t *testing.T) {
	m := NewMonitor(Config{})
	for i := 0; i < 21; i++ {
		m.ProcessLandmarks(testFrame(0.10))
	}

	res := m.ProcessNoFace()
	if res.AlarmActive || !hasEvent(res.Events, EventAlarmStopped) {
		t.Fatalf("no-face while alarmed: got %+v", res)
	}
	if res.ClosedFrames != 0 {
		t.Fatalf("no-face must reset counter, got %d", res.ClosedFrames)
	}
	if res.FaceDetected {
		t.Fatal("result reports a detected face")
	}
}

func TestMonitorNoFaceResetsCounterWhenAwake(t *testing.T) {
	m := NewMonitor(Config{})
	for i := 0; i < 10; i++ {
		m.ProcessLandmarks(testFrame(0.10))
	}

	res := m.ProcessNoFace()
	if res.ClosedFrames != 0 || len(res.Events) != 0 {
		t.Fatalf("no-face while awake: got %+v", res)
	}
}

func TestMonitorDegenerateFrameLeavesStateUntouched(t *testing.T) {
	m := NewMonitor(Config{})
	for i := 0; i < 21; i++ {
		m.ProcessLandmarks(testFrame(0.10))
	}

	res := m.ProcessLandmarks(degenerateFrame())
	if res.EARValid {
		t.Fatal("degenerate frame reported a valid EAR")
	}
	if !res.AlarmActive || res.ClosedFrames != 21 || len(res.Events) != 0 {
		t.Fatalf("degenerate frame changed state: %+v", res)
	}

	// Mid-run it must neither count nor reset.
	m2 := NewMonitor(Config{})
	for i := 0; i < 5; i++ {
		m2.ProcessLandmarks(testFrame(0.10))
	}
	if res := m2.ProcessLandmarks(degenerateFrame()); res.ClosedFrames != 5 {
		t.Fatalf("counter = %d after degenerate frame, want 5", res.ClosedFrames)
	}
}

func TestMonitorYawnDetection(t *testing.T) {
	m := NewMonitor(Config{YawnFrames: 20})

	for i := 1; i <= 20; i++ {
		res := m.ProcessLandmarks(yawnFrame(0.30))
		if (i == 20) != hasEvent(res.Events, EventYawnStarted) {
			t.Fatalf("yawn frame %d: events %v", i, res.Events)
		}
		if res.AlarmActive {
			t.Fatalf("yawn frame %d: yawning must not trip the eye alarm", i)
		}
	}

	res := m.ProcessLandmarks(testFrame(0.30))
	if res.Yawning || !hasEvent(res.Events, EventYawnStopped) {
		t.Fatalf("closed mouth: got %+v", res)
	}
}

func TestMonitorStopForcesAlarmOff(t *testing.T) {
	m := NewMonitor(Config{})
	for i := 0; i < 21; i++ {
		m.ProcessLandmarks(testFrame(0.10))
	}

	events := m.Stop()
	if !hasEvent(events, EventAlarmStopped) {
		t.Fatalf("Stop() events = %v, want alarm_stopped", events)
	}
	if m.Stop() != nil {
		t.Fatal("second Stop() must be a no-op")
	}
}

func TestMonitorAlertLevels(t *testing.T) {
	m := NewMonitor(Config{})

	if res := m.ProcessLandmarks(testFrame(0.30)); res.AlertLevel != AlertLevelNone {
		t.Fatalf("open eyes: level %s", res.AlertLevel)
	}
	if res := m.ProcessLandmarks(testFrame(0.10)); res.AlertLevel != AlertLevelWarning {
		t.Fatalf("first low frame: level %s", res.AlertLevel)
	}
	for i := 0; i < 20; i++ {
		m.ProcessLandmarks(testFrame(0.10))
	}
	if res := m.ProcessLandmarks(testFrame(0.10)); res.AlertLevel != AlertLevelAlarm {
		t.Fatalf("alarmed: level %s", res.AlertLevel)
	}
}
