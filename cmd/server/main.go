package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"wakeguard/go-backend/internal/alert"
	"wakeguard/go-backend/internal/config"
	"wakeguard/go-backend/internal/database"
	"wakeguard/go-backend/internal/handlers"
	"wakeguard/go-backend/internal/logging"
	"wakeguard/go-backend/internal/services"
	"wakeguard/go-backend/pkg/pb"
	"wakeguard/go-backend/pkg/sms"
)

func main() {
	httpPort := flag.String("http-port", "", "HTTP port (overrides HTTP_PORT)")
	grpcPort := flag.String("grpc-port", "", "gRPC port (overrides GRPC_PORT)")
	facemeshAddr := flag.String("facemesh-addr", "", "facemesh sidecar address (overrides FACEMESH_ADDR)")
	flag.Parse()

	cfg := config.LoadConfig()
	if *httpPort != "" {
		cfg.HTTPPort = *httpPort
	}
	if *grpcPort != "" {
		cfg.GRPCPort = *grpcPort
	}
	if *facemeshAddr != "" {
		cfg.FaceMeshAddr = *facemeshAddr
	}

	logger := logging.New(cfg.LogDir, cfg.LogLevel)
	logger.Info("starting WakeGuard backend")
	logger.Infof("http port: %s, grpc port: %s, facemesh: %s, environment: %s",
		cfg.HTTPPort, cfg.GRPCPort, cfg.FaceMeshAddr, cfg.Environment)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := database.Migrate(cfg.DSN()); err != nil {
		logger.Fatalf("migrations failed: %v", err)
	}
	db, err := database.New(ctx, cfg.DSN())
	cancel()
	if err != nil {
		logger.Fatalf("database connection failed (%s): %v", cfg.DSNForLog(), err)
	}
	defer db.Close()
	logger.Infof("connected to postgres: %s", cfg.DSNForLog())

	facemesh, err := services.NewFaceMeshClient(cfg.FaceMeshAddr, logger)
	if err != nil {
		logger.Warnf("facemesh sidecar unavailable: %v", err)
		logger.Warn("continuing without server-side landmarking; clients must send LANDMARKS")
		facemesh = nil
	}
	if facemesh != nil {
		defer facemesh.Close()
	}

	metrics := services.GetMetrics()
	dispatcher := newDispatcher(cfg, metrics, logger)
	dispatcher.Start()
	defer dispatcher.Close()
	recipient := defaultRecipient(cfg, logger)

	apiHandler := handlers.New(cfg, db, facemesh, metrics, logger)
	wsHandler := handlers.NewWSHandler(cfg, apiHandler, db, facemesh, dispatcher, recipient, metrics, logger)
	grpcHandler := handlers.NewGRPCHandler(cfg, facemesh, dispatcher, recipient, metrics, logger)

	grpcServer := grpc.NewServer(
		grpc.MaxRecvMsgSize(50*1024*1024),
		grpc.MaxSendMsgSize(50*1024*1024),
	)
	pb.RegisterDrowsinessDetectionServer(grpcServer, grpcHandler)

	go serveGRPC(grpcServer, cfg.GRPCPort, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.HandleWebSocket)
	apiHandler.Routes(mux)

	httpServer := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Infof("http server listening on :%s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server failed: %v", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
		logger.Info("grpc server stopped")
	case <-shutdownCtx.Done():
		logger.Warn("grpc graceful stop timed out, forcing")
		grpcServer.Stop()
	}

	httpCtx, cancelHTTP := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelHTTP()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		logger.Errorf("http shutdown error: %v", err)
	}

	// Ending sessions here silences alarms and records the forced
	// alarm_stopped transitions before the pool closes.
	wsHandler.CloseAll()
	logger.Info("goodbye")
}

// newDispatcher wires the SMS path. Without Twilio credentials the
// dispatcher runs with a no-op sender so alarm handling stays uniform.
func newDispatcher(cfg *config.Config, metrics *services.Metrics, logger *logrus.Logger) *alert.Dispatcher {
	var sender alert.Sender = alert.Nop{}
	if cfg.SMSEnabled() {
		sender = sms.New(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
		logger.Info("SMS alerts enabled via Twilio")
	}
	return alert.NewDispatcher(sender, cfg.AlertMessage, cfg.SMSCooldown, metrics, logger)
}

// defaultRecipient is the fallback SMS number for feeds without a per-user
// alert contact (anonymous websocket clients and grpc streams).
func defaultRecipient(cfg *config.Config, logger *logrus.Logger) string {
	if cfg.AlertRecipient == "" {
		return ""
	}
	normalized, err := alert.NormalizePhone(cfg.AlertRecipient)
	if err != nil {
		logger.Warnf("ALERT_RECIPIENT is invalid, SMS disabled until a contact is set: %v", err)
		return ""
	}
	return normalized
}

func serveGRPC(server *grpc.Server, port string, logger *logrus.Logger) {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		logger.Fatalf("failed to listen on grpc port %s: %v", port, err)
	}
	logger.Infof("grpc server listening on :%s", port)
	if err := server.Serve(lis); err != nil {
		logger.Fatalf("grpc server failed: %v", err)
	}
}
