package handlers

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wakeguard/go-backend/internal/alert"
	"wakeguard/go-backend/internal/config"
	"wakeguard/go-backend/internal/detection"
	"wakeguard/go-backend/internal/services"
	"wakeguard/go-backend/internal/session"
	pb "wakeguard/go-backend/pkg/pb"
)

// GRPCHandler serves native (non-browser) clients. Frames are landmarked by
// the facemesh sidecar and run through the same state machine as websocket
// feeds.
type GRPCHandler struct {
	pb.UnimplementedDrowsinessDetectionServer
	cfg              *config.Config
	facemesh         *services.FaceMeshClient
	dispatcher       *alert.Dispatcher
	metrics          *services.Metrics
	logger           *logrus.Logger
	defaultRecipient string
}

func NewGRPCHandler(cfg *config.Config, facemesh *services.FaceMeshClient, dispatcher *alert.Dispatcher, defaultRecipient string, metrics *services.Metrics, logger *logrus.Logger) *GRPCHandler {
	return &GRPCHandler{
		cfg:              cfg,
		facemesh:         facemesh,
		dispatcher:       dispatcher,
		metrics:          metrics,
		logger:           logger,
		defaultRecipient: defaultRecipient,
	}
}

func (h *GRPCHandler) monitorConfig() detection.Config {
	return detection.Config{
		EARThreshold: h.cfg.EARThreshold,
		ConsecFrames: h.cfg.ConsecFrames,
		MARThreshold: h.cfg.MARThreshold,
		YawnFrames:   h.cfg.YawnFrames,
	}
}

// landmark asks the sidecar for landmarks. A missing or failing sidecar is
// not a caller error: it returns (nil, nil) so the frame is treated as
// no-face and the caller's session survives the outage. Only malformed input
// produces a status error.
func (h *GRPCHandler) landmark(ctx context.Context, req *pb.VideoFrame) (*pb.LandmarkResult, error) {
	if len(req.GetFrameData()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "frame_data is required")
	}
	if h.facemesh == nil {
		h.logger.Debug("no facemesh sidecar, treating frame as no-face")
		return nil, nil
	}

	result, err := h.facemesh.DetectLandmarks(ctx, req)
	if err != nil {
		h.logger.Errorf("landmark detection failed, treating as no-face: %v", err)
		h.metrics.IncrementErrors()
		return nil, nil
	}
	return result, nil
}

func toDetectionResult(res detection.FrameResult, seq int32) *pb.DetectionResult {
	return &pb.DetectionResult{
		FaceDetected:   res.FaceDetected,
		Ear:            float32(res.EAR),
		Mar:            float32(res.MAR),
		AlarmActive:    res.AlarmActive,
		Yawning:        res.Yawning,
		ClosedFrames:   int32(res.ClosedFrames),
		AlertLevel:     res.AlertLevel,
		Timestamp:      time.Now().UnixMilli(),
		SequenceNumber: seq,
	}
}

// DetectDrowsiness analyzes one frame in isolation. With no frame history a
// single call can report ratios and levels but never an alarm; streaming is
// required for that.
func (h *GRPCHandler) DetectDrowsiness(ctx context.Context, req *pb.VideoFrame) (*pb.DetectionResult, error) {
	start := time.Now()

	lm, err := h.landmark(ctx, req)
	if err != nil {
		return nil, err
	}

	monitor := detection.NewMonitor(h.monitorConfig())
	var res detection.FrameResult
	if lm.GetFaceDetected() {
		res = monitor.ProcessLandmarks(services.LandmarkPoints(lm))
	} else {
		res = monitor.ProcessNoFace()
	}

	h.metrics.IncrementFrames()
	h.metrics.RecordLatency(time.Since(start))
	return toDetectionResult(res, req.GetSequenceNumber()), nil
}

// DetectDrowsinessStream runs a full monitoring session over one bidi
// stream: state accumulates across frames, so alarms fire exactly as they
// do for websocket clients.
func (h *GRPCHandler) DetectDrowsinessStream(stream pb.DrowsinessDetection_DetectDrowsinessStreamServer) error {
	h.logger.Info("grpc detection stream started")

	sess := session.New(session.Options{
		Monitor:        detection.NewMonitor(h.monitorConfig()),
		Notifier:       h.dispatcher,
		Metrics:        h.metrics,
		Logger:         h.logger,
		AlertRecipient: h.defaultRecipient,
	})
	defer sess.Stop()

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			h.logger.Info("grpc detection stream completed")
			return nil
		}
		if err != nil {
			h.logger.Errorf("grpc stream recv error: %v", err)
			return err
		}

		start := time.Now()
		lm, err := h.landmark(stream.Context(), req)
		if err != nil {
			return err
		}

		var res detection.FrameResult
		if lm.GetFaceDetected() {
			res = sess.ProcessLandmarks(services.LandmarkPoints(lm))
		} else {
			res = sess.ProcessNoFace()
		}
		h.metrics.RecordLatency(time.Since(start))

		if err := stream.Send(toDetectionResult(res, req.GetSequenceNumber())); err != nil {
			h.logger.Errorf("grpc stream send error: %v", err)
			return err
		}
	}
}

func (h *GRPCHandler) Health(ctx context.Context, _ *pb.Empty) (*pb.HealthStatus, error) {
	facemeshUp := h.facemesh != nil && h.facemesh.HealthCheck()

	return &pb.HealthStatus{
		Status:          "healthy",
		FacemeshService: facemeshUp,
		ActiveClients:   int32(h.metrics.GetActiveClients()),
	}, nil
}
