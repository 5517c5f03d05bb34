package handlers

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wakeguard/go-backend/internal/services"
	pb "wakeguard/go-backend/pkg/pb"
)

func newTestGRPCHandler() *GRPCHandler {
	return NewGRPCHandler(testConfig(), nil, nil, "", services.NewMetrics(), quietLogger())
}

func TestDetectDrowsinessWithoutSidecarCountsAsNoFace(t *testing.T) {
	h := newTestGRPCHandler()

	res, err := h.DetectDrowsiness(context.Background(), &pb.VideoFrame{
		FrameData:      []byte("jpeg-bytes"),
		SequenceNumber: 7,
	})
	if err != nil {
		t.Fatalf("sidecar outage surfaced as an error: %v", err)
	}
	if res.GetFaceDetected() {
		t.Fatal("frame without a sidecar reported a detected face")
	}
	if res.GetAlarmActive() {
		t.Fatal("single no-face frame reported an alarm")
	}
	if res.GetSequenceNumber() != 7 {
		t.Fatalf("sequence number = %d, want 7", res.GetSequenceNumber())
	}
}

func TestDetectDrowsinessRejectsEmptyFrame(t *testing.T) {
	h := newTestGRPCHandler()

	_, err := h.DetectDrowsiness(context.Background(), &pb.VideoFrame{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("empty frame error = %v, want InvalidArgument", err)
	}
}

func TestGRPCHealthWithoutSidecar(t *testing.T) {
	h := newTestGRPCHandler()

	res, err := h.Health(context.Background(), &pb.Empty{})
	if err != nil {
		t.Fatal(err)
	}
	if res.GetFacemeshService() {
		t.Fatal("health reported the facemesh sidecar as up")
	}
}
