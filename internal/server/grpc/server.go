// Package grpc is the transport boundary of the auth service. It marshals
// requests into the three core operations and maps the typed failure kinds
// onto gRPC status codes; the core itself never sees transport concerns.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dpetrov/authms/internal/logging"
	pb "github.com/dpetrov/authms/internal/proto"
	"github.com/dpetrov/authms/internal/server/services"
)

// authSvc is the slice of AuthService the transport needs.
type authSvc interface {
	Register(ctx context.Context, name, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	VerifyToken(ctx context.Context, token string) (*services.AuthResult, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	auth    authSvc
	logger  logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, a authSvc) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		auth:    a,
	}
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	pb.RegisterAuthServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
