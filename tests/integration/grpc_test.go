package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"wakeguard/go-backend/pkg/pb"
)

// dialServer connects to a running backend; set WAKEGUARD_GRPC_ADDR to run
// these tests against it.
func dialServer(t *testing.T) *grpc.ClientConn {
	t.Helper()
	addr := os.Getenv("WAKEGUARD_GRPC_ADDR")
	if addr == "" {
		t.Skip("WAKEGUARD_GRPC_ADDR not set, skipping integration test")
	}

	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("did not connect: %v", err)
	}
	return conn
}

func TestGRPCDetectDrowsiness(t *testing.T) {
	conn := dialServer(t)
	defer conn.Close()

	client := pb.NewDrowsinessDetectionClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req := &pb.VideoFrame{
		FrameData:      []byte("test frame data"),
		Timestamp:      time.Now().UnixMilli(),
		SequenceNumber: 1,
	}

	result, err := client.DetectDrowsiness(ctx, req)
	if err != nil {
		t.Fatalf("DetectDrowsiness failed: %v", err)
	}
	if result == nil {
		t.Fatal("result is nil")
	}
	if result.SequenceNumber != 1 {
		t.Errorf("sequence number = %d, want 1", result.SequenceNumber)
	}

	t.Logf("face=%v ear=%.3f level=%s", result.FaceDetected, result.Ear, result.AlertLevel)
}

func TestGRPCHealth(t *testing.T) {
	conn := dialServer(t)
	defer conn.Close()

	client := pb.NewDrowsinessDetectionClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status, err := client.Health(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if status.Status != "healthy" {
		t.Errorf("expected healthy, got %s", status.Status)
	}

	t.Logf("health: %+v", status)
}
