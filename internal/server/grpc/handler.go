package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dpetrov/authms/internal/common"
	pb "github.com/dpetrov/authms/internal/proto"
	"github.com/dpetrov/authms/internal/server/models"
)

// toStatus translates core failure kinds into transport status codes. Only
// sentinel messages cross the boundary; wrapped driver detail stays inside.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateAccount):
		return status.Error(codes.AlreadyExists, common.ErrDuplicateAccount.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	case errors.Is(err, common.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, common.ErrStoreUnavailable.Error())
	default:
		return status.Error(codes.Internal, common.ErrInternal.Error())
	}
}

func userToPb(u models.PublicUser) *pb.User {
	var createdAt int64
	if !u.CreatedAt.IsZero() {
		createdAt = u.CreatedAt.Unix()
	}
	return &pb.User{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: createdAt,
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {

	if req.GetName() == "" || req.GetEmail() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "name, email and password are required")
	}

	result, err := s.auth.Register(ctx, req.GetName(), req.GetEmail(), req.GetPassword())
	if err != nil {
		s.logger.Warn(ctx, "registration failed", "reason", err.Error())
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "registered", "email", result.User.Email)
	return &pb.AuthResponse{User: userToPb(result.User), Token: result.Token}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	if req.GetEmail() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password are required")
	}

	result, err := s.auth.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.AuthResponse{User: userToPb(result.User), Token: result.Token}, nil
}

func (s *GRPCServer) VerifyToken(ctx context.Context, req *pb.VerifyTokenRequest) (*pb.AuthResponse, error) {

	if req.GetToken() == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}

	result, err := s.auth.VerifyToken(ctx, req.GetToken())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.AuthResponse{User: userToPb(result.User), Token: result.Token}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
