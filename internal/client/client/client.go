// Package client wraps the gRPC connection to the auth service and translates
// transport status codes back into the shared sentinel errors.
package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/dpetrov/authms/internal/common"
	pb "github.com/dpetrov/authms/internal/proto"
)

// Identity is the account view returned by the service.
type Identity struct {
	ID    string
	Name  string
	Email string
}

// Session is the outcome of a successful auth operation.
type Session struct {
	User  Identity
	Token string
}

type AuthClient struct {
	conn   *grpc.ClientConn
	client pb.AuthServiceClient
}

func New(endpoint string) (*AuthClient, error) {
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &AuthClient{conn: conn, client: pb.NewAuthServiceClient(conn)}, nil
}

func (c *AuthClient) Close() error {
	return c.conn.Close()
}

// mapError folds a transport error back into the sentinel taxonomy so the CLI
// can match with errors.Is like server-side code does. Unauthenticated means
// different things per call (bad credentials on login, bad token on verify),
// so the caller supplies the sentinel for it.
func mapError(err error, unauthenticated error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.AlreadyExists:
		return common.ErrDuplicateAccount
	case codes.Unauthenticated:
		return unauthenticated
	case codes.Unavailable:
		return common.ErrStoreUnavailable
	default:
		return err
	}
}

func toSession(resp *pb.AuthResponse) *Session {
	return &Session{
		User: Identity{
			ID:    resp.GetUser().GetId(),
			Name:  resp.GetUser().GetName(),
			Email: resp.GetUser().GetEmail(),
		},
		Token: resp.GetToken(),
	}
}

func (c *AuthClient) Register(ctx context.Context, name, email, password string) (*Session, error) {
	resp, err := c.client.Register(ctx, &pb.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, mapError(err, common.ErrInvalidCredentials)
	}
	return toSession(resp), nil
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err, common.ErrInvalidCredentials)
	}
	return toSession(resp), nil
}

func (c *AuthClient) VerifyToken(ctx context.Context, token string) (*Session, error) {
	resp, err := c.client.VerifyToken(ctx, &pb.VerifyTokenRequest{Token: token})
	if err != nil {
		return nil, mapError(err, common.ErrInvalidToken)
	}
	return toSession(resp), nil
}

func (c *AuthClient) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &pb.PingRequest{})
	return err
}
