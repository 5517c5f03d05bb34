package session

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"wakeguard/go-backend/internal/detection"
	"wakeguard/go-backend/internal/models"
)

// frame builds a 68-point landmark set with the given averaged EAR and a
// closed mouth.
func frame(ear float64) []detection.Point {
	pts := make([]detection.Point, 68)
	y := ear
	eye := []detection.Point{
		{X: 0, Y: 0.5},
		{X: 0.3, Y: 0.5 + y/2},
		{X: 0.6, Y: 0.5 + y/2},
		{X: 1, Y: 0.5},
		{X: 0.6, Y: 0.5 - y/2},
		{X: 0.3, Y: 0.5 - y/2},
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

type fakeCue struct {
	starts int
	stops  int
}

func (c *fakeCue) Start() { c.starts++ }
func (c *fakeCue) Stop()  { c.stops++ }

type fakeNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *fakeNotifier) Notify(to string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, to)
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

type fakeStore struct {
	mu     sync.Mutex
	events []models.Event
	err    error
}

func (s *fakeStore) SaveEvent(_ context.Context, e models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, e)
	return nil
}

func (s *fakeStore) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	for i, e := range s.events {
		out[i] = e.EventType
	}
	return out
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestSession(cue *fakeCue, notifier *fakeNotifier, store *fakeStore) *Session {
	return New(Options{
		Monitor:        detection.NewMonitor(detection.Config{ConsecFrames: 3}),
		Cue:            cue,
		Notifier:       notifier,
		Store:          store,
		Logger:         quietLogger(),
		AlertRecipient: "+917780643862",
		RecordID:       7,
	})
}

func TestSessionAlarmDrivesCueAndNotifier(t *testing.T) {
	cue := &fakeCue{}
	notifier := &fakeNotifier{}
	store := &fakeStore{}
	s := newTestSession(cue, notifier, store)

	for i := 0; i < 3; i++ {
		s.ProcessLandmarks(frame(0.10))
	}

	if cue.starts != 1 {
		t.Fatalf("cue starts = %d, want 1", cue.starts)
	}
	if notifier.count() != 1 {
		t.Fatalf("notifier calls = %d, want 1", notifier.count())
	}
	if notifier.calls[0] != "+917780643862" {
		t.Fatalf("alert went to %q, want the session's own recipient", notifier.calls[0])
	}
	got := store.types()
	if len(got) != 1 || got[0] != "alarm_started" {
		t.Fatalf("stored events = %v", got)
	}
}

func TestSessionRecoveryStopsCue(t *testing.T) {
	cue := &fakeCue{}
	store := &fakeStore{}
	s := newTestSession(cue, &fakeNotifier{}, store)

	for i := 0; i < 4; i++ {
		s.ProcessLandmarks(frame(0.10))
	}
	s.ProcessLandmarks(frame(0.30))

	if cue.stops != 1 {
		t.Fatalf("cue stops = %d, want 1", cue.stops)
	}
	got := store.types()
	if len(got) != 2 || got[1] != "alarm_stopped" {
		t.Fatalf("stored events = %v", got)
	}
}

func TestSessionNoFaceClearsAlarm(t *testing.T) {
	cue := &fakeCue{}
	s := newTestSession(cue, &fakeNotifier{}, &fakeStore{})

	for i := 0; i < 3; i++ {
		s.ProcessLandmarks(frame(0.10))
	}
	res := s.ProcessNoFace()

	if res.AlarmActive {
		t.Fatal("alarm survived a no-face frame")
	}
	if cue.stops != 1 {
		t.Fatalf("cue stops = %d, want 1", cue.stops)
	}
}

func TestSessionStopForcesAlarmStopped(t *testing.T) {
	cue := &fakeCue{}
	store := &fakeStore{}
	s := newTestSession(cue, &fakeNotifier{}, store)

	for i := 0; i < 3; i++ {
		s.ProcessLandmarks(frame(0.10))
	}

	events := s.Stop()
	if len(events) != 1 || events[0] != detection.EventAlarmStopped {
		t.Fatalf("Stop() events = %v", events)
	}
	if cue.stops == 0 {
		t.Fatal("cue not stopped on session end")
	}
	if events := s.Stop(); events != nil {
		t.Fatalf("second Stop() = %v, want nil", events)
	}

	got := store.types()
	if got[len(got)-1] != "alarm_stopped" {
		t.Fatalf("stored events = %v", got)
	}
}

func TestSessionStoreErrorDoesNotBreakProcessing(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	s := newTestSession(&fakeCue{}, &fakeNotifier{}, store)

	for i := 0; i < 3; i++ {
		res := s.ProcessLandmarks(frame(0.10))
		if i == 2 && !res.AlarmActive {
			t.Fatal("alarm did not trip despite store failure")
		}
	}
}

func TestSessionWithoutCollaborators(t *testing.T) {
	s := New(Options{Monitor: detection.NewMonitor(detection.Config{ConsecFrames: 2})})
	for i := 0; i < 2; i++ {
		s.ProcessLandmarks(frame(0.10))
	}
	s.Stop()
}

func TestSessionStopConcurrentWithFrames(t *testing.T) {
	// Shutdown stops sessions from the main goroutine while the feed may
	// still be mid-frame; run under -race.
	s := New(Options{
		Monitor: detection.NewMonitor(detection.Config{ConsecFrames: 3}),
		Logger:  quietLogger(),
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			s.ProcessLandmarks(frame(0.10))
			s.ProcessNoFace()
		}
	}()

	s.Stop()
	<-done

	if res := s.ProcessLandmarks(frame(0.10)); res.AlarmActive || len(res.Events) != 0 {
		t.Fatalf("frame after Stop advanced the monitor: %+v", res)
	}
}

func TestSessionsUseTheirOwnRecipients(t *testing.T) {
	notifier := &fakeNotifier{}
	mk := func(to string) *Session {
		return New(Options{
			Monitor:        detection.NewMonitor(detection.Config{ConsecFrames: 2}),
			Notifier:       notifier,
			Logger:         quietLogger(),
			AlertRecipient: to,
		})
	}
	a := mk("+917780643862")
	b := mk("+15550001111")

	for i := 0; i < 2; i++ {
		a.ProcessLandmarks(frame(0.10))
	}
	for i := 0; i < 2; i++ {
		b.ProcessLandmarks(frame(0.10))
	}

	if notifier.count() != 2 {
		t.Fatalf("notifier calls = %d, want 2", notifier.count())
	}
	if notifier.calls[0] != "+917780643862" || notifier.calls[1] != "+15550001111" {
		t.Fatalf("alerts went to %v, want each session's own number", notifier.calls)
	}
}
