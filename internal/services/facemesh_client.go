package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"wakeguard/go-backend/internal/detection"
	pb "wakeguard/go-backend/pkg/pb"
)

// FaceMeshClient talks to the Python landmark sidecar over gRPC.
type FaceMeshClient struct {
	conn   *grpc.ClientConn
	client pb.FaceMeshClient
	logger *logrus.Logger
	url    string
}

func NewFaceMeshClient(url string, logger *logrus.Logger) (*FaceMeshClient, error) {
	logger.Infof("connecting to facemesh sidecar at %s", url)

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(50*1024*1024),
			grpc.MaxCallSendMsgSize(50*1024*1024),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             3 * time.Second,
			PermitWithoutStream: true,
		}),
	}

	conn, err := grpc.Dial(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to facemesh sidecar at %s: %w", url, err)
	}

	return &FaceMeshClient{
		conn:   conn,
		client: pb.NewFaceMeshClient(conn),
		logger: logger,
		url:    url,
	}, nil
}

// DetectLandmarks sends one encoded frame to the sidecar and returns the
// raw landmark result.
func (fc *FaceMeshClient) DetectLandmarks(ctx context.Context, frame *pb.VideoFrame) (*pb.LandmarkResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := fc.client.DetectLandmarks(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("could not detect landmarks: %w", err)
	}
	return result, nil
}

func (fc *FaceMeshClient) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := fc.client.Health(ctx, &pb.Empty{})
	return err == nil
}

func (fc *FaceMeshClient) Close() error {
	if fc.conn != nil {
		return fc.conn.Close()
	}
	return nil
}

// LandmarkPoints converts sidecar landmarks to the geometry point type.
func LandmarkPoints(res *pb.LandmarkResult) []detection.Point {
	pts := make([]detection.Point, len(res.GetLandmarks()))
	for i, lm := range res.GetLandmarks() {
		pts[i] = detection.Point{X: float64(lm.GetX()), Y: float64(lm.GetY())}
	}
	return pts
}
