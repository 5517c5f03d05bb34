package session

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"wakeguard/go-backend/internal/detection"
	"wakeguard/go-backend/internal/models"
	"wakeguard/go-backend/internal/services"
)

// EventStore persists alarm and yawn transitions.
type EventStore interface {
	SaveEvent(ctx context.Context, e models.Event) error
}

// Cue is the repeating audio signal toggled by alarm transitions.
type Cue interface {
	Start()
	Stop()
}

// Notifier requests one out-of-band alert delivery to a recipient.
type Notifier interface {
	Notify(to string)
}

type nopCue struct{}

func (nopCue) Start() {}
func (nopCue) Stop()  {}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// Options wires one monitoring session. Nil collaborators are replaced with
// no-ops so a session can run without persistence or SMS.
type Options struct {
	Monitor  *detection.Monitor
	Cue      Cue
	Notifier Notifier
	Store    EventStore
	Metrics  *services.Metrics
	Logger   *logrus.Logger

	// AlertRecipient is the SMS number alarms from this session go to;
	// empty disables outbound alerts for the session.
	AlertRecipient string

	// RecordID is the database session row events are attached to; zero
	// disables persistence even when Store is set.
	RecordID int
}

// Session runs one camera feed end to end: frames go into the monitor, and
// the resulting transitions drive the cue, the notifier, and the event log.
// All entry points serialize on an internal mutex, so Stop may race a frame
// in flight without corrupting the monitor.
type Session struct {
	mu        sync.Mutex
	monitor   *detection.Monitor
	cue       Cue
	notifier  Notifier
	store     EventStore
	metrics   *services.Metrics
	logger    *logrus.Logger
	recipient string
	recordID  int
	stopped   bool
}

func New(opts Options) *Session {
	if opts.Monitor == nil {
		opts.Monitor = detection.NewMonitor(detection.Config{})
	}
	if opts.Cue == nil {
		opts.Cue = nopCue{}
	}
	if opts.Notifier == nil {
		opts.Notifier = nopNotifier{}
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	return &Session{
		monitor:   opts.Monitor,
		cue:       opts.Cue,
		notifier:  opts.Notifier,
		store:     opts.Store,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		recipient: opts.AlertRecipient,
		recordID:  opts.RecordID,
	}
}

// ProcessLandmarks feeds one detected face through the monitor and applies
// the resulting transitions. After Stop it is a no-op.
func (s *Session) ProcessLandmarks(landmarks []detection.Point) detection.FrameResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return detection.FrameResult{}
	}
	res := s.monitor.ProcessLandmarks(landmarks)
	s.apply(res)
	return res
}

// ProcessNoFace feeds one frame without a detected face.
func (s *Session) ProcessNoFace() detection.FrameResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return detection.FrameResult{}
	}
	res := s.monitor.ProcessNoFace()
	if s.metrics != nil {
		s.metrics.IncrementNoFaceFrames()
	}
	s.apply(res)
	return res
}

// Stop ends the session, silencing the cue and recording forced transitions.
// Safe to call more than once; only the first call does anything.
func (s *Session) Stop() []detection.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil
	}
	s.stopped = true

	events := s.monitor.Stop()
	for _, ev := range events {
		s.handleEvent(ev, detection.FrameResult{})
	}
	s.cue.Stop()
	return events
}

func (s *Session) apply(res detection.FrameResult) {
	if s.metrics != nil {
		s.metrics.IncrementFrames()
	}
	for _, ev := range res.Events {
		s.handleEvent(ev, res)
	}
}

func (s *Session) handleEvent(ev detection.Event, res detection.FrameResult) {
	switch ev {
	case detection.EventAlarmStarted:
		s.logger.WithField("ear", res.EAR).Warn("drowsiness alarm raised")
		s.cue.Start()
		s.notifier.Notify(s.recipient)
		if s.metrics != nil {
			s.metrics.IncrementAlarms()
		}
	case detection.EventAlarmStopped:
		s.logger.Info("drowsiness alarm cleared")
		s.cue.Stop()
	case detection.EventYawnStarted:
		s.logger.WithField("mar", res.MAR).Info("yawn detected")
		if s.metrics != nil {
			s.metrics.IncrementYawns()
		}
	}
	s.record(ev, res)
}

func (s *Session) record(ev detection.Event, res detection.FrameResult) {
	if s.store == nil || s.recordID == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := s.store.SaveEvent(ctx, models.Event{
		SessionID: s.recordID,
		EventType: string(ev),
		EAR:       res.EAR,
		MAR:       res.MAR,
		Timestamp: time.Now(),
	})
	if err != nil {
		s.logger.Errorf("could not save %s event: %v", ev, err)
	}
}
