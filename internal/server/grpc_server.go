package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/oggyb/matchbot/internal/config"
)

// Server is a gRPC server with the health service, reflection and the
// admin-key guard installed.
type Server struct {
	addr   string
	grpc   *grpc.Server
	health *health.Server
	log    *slog.Logger
}

// NewGRPCServer builds a gRPC server and registers all provided services.
// adminMethods lists the full method names that require the admin key.
func NewGRPCServer(cfg *config.Config, log *slog.Logger, adminMethods map[string]bool, registrars ...Registrar) *Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			Recovery(log),
			Logging(log),
			AdminAuth(cfg.Admin.KeyHash, adminMethods),
		),
	)

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
	}

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	for name := range grpcServer.GetServiceInfo() {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	// enable reflection for easier debugging with grpcurl
	reflection.Register(grpcServer)

	return &Server{
		addr:   fmt.Sprintf("%s:%s", cfg.GRPC.Host, cfg.GRPC.Port),
		grpc:   grpcServer,
		health: hs,
		log:    log,
	}
}

// GRPC exposes the underlying server, mostly for tests.
func (s *Server) GRPC() *grpc.Server { return s.grpc }

// Addr is the configured listen address.
func (s *Server) Addr() string { return s.addr }

// ListenAndServe listens on the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve serves on lis until ctx is done, then drains in-flight calls.
// Health checks report NOT_SERVING as soon as shutdown starts.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("grpc server listening", "addr", lis.Addr().String())
		errCh <- s.grpc.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("grpc server shutting down")
		s.health.Shutdown()
		s.grpc.GracefulStop()
		<-errCh
		return nil
	}
}

// StartGRPCServer boots a gRPC server and serves until ctx is done.
func StartGRPCServer(ctx context.Context, cfg *config.Config, log *slog.Logger, adminMethods map[string]bool, registrars ...Registrar) error {
	return NewGRPCServer(cfg, log, adminMethods, registrars...).ListenAndServe(ctx)
}
