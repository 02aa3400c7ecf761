package monitor

import (
	"fmt"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// AdminServer exposes DataHealth over gRPC on its own port.
type AdminServer struct {
	grpcServer *grpc.Server
	listener   net.Listener
	log        *zap.Logger
}

func NewAdminServer(port string, h *DataHealth, log *zap.Logger) (*AdminServer, error) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on admin port %s: %w", port, err)
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthpb.RegisterHealthServer(grpcServer, h.Server())

	// Enable reflection for grpcurl/grpcui
	reflection.Register(grpcServer)

	return &AdminServer{grpcServer: grpcServer, listener: listener, log: log}, nil
}

func (s *AdminServer) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve blocks until Stop is called.
func (s *AdminServer) Serve() error {
	s.log.Info("admin gRPC server listening", zap.String("addr", s.listener.Addr().String()))
	if err := s.grpcServer.Serve(s.listener); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("admin gRPC server: %w", err)
	}
	return nil
}

func (s *AdminServer) Stop() {
	s.grpcServer.GracefulStop()
}
