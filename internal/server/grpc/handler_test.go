package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dpetrov/authms/internal/common"
	"github.com/dpetrov/authms/internal/logging"
	pb "github.com/dpetrov/authms/internal/proto"
	"github.com/dpetrov/authms/internal/server/models"
	"github.com/dpetrov/authms/internal/server/services"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeAuth struct {
	regResp *services.AuthResult
	regErr  error

	loginResp *services.AuthResult
	loginErr  error

	verifyResp *services.AuthResult
	verifyErr  error
}

func (f *fakeAuth) Register(ctx context.Context, name, email, password string) (*services.AuthResult, error) {
	return f.regResp, f.regErr
}
func (f *fakeAuth) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeAuth) VerifyToken(ctx context.Context, token string) (*services.AuthResult, error) {
	return f.verifyResp, f.verifyErr
}

// ---- helpers ----

func newServer(a authSvc) *GRPCServer {
	return &GRPCServer{
		address: "127.0.0.1:0",
		auth:    a,
		logger:  nopLogger{},
	}
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected a status error, got %v", err)
	}
	if st.Code() != code {
		t.Fatalf("want code %v, got %v (%v)", code, st.Code(), err)
	}
}

func result() *services.AuthResult {
	return &services.AuthResult{
		User: models.PublicUser{
			ID:        "u1",
			Name:      "Ana",
			Email:     "ana@x.com",
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		Token: "tok",
	}
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeAuth{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestRegister_OK(t *testing.T) {
	s := newServer(&fakeAuth{regResp: result()})

	resp, err := s.Register(context.Background(), &pb.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.GetUser().GetEmail() != "ana@x.com" || resp.GetToken() != "tok" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.GetUser().GetCreatedAt() == 0 {
		t.Fatalf("expected created_at to be set")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	s := newServer(&fakeAuth{regResp: result()})

	_, err := s.Register(context.Background(), &pb.RegisterRequest{Email: "ana@x.com"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestRegister_Duplicate(t *testing.T) {
	s := newServer(&fakeAuth{regErr: common.ErrDuplicateAccount})

	_, err := s.Register(context.Background(), &pb.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "p"})
	wantCode(t, err, codes.AlreadyExists)
}

func TestRegister_StoreUnavailable(t *testing.T) {
	s := newServer(&fakeAuth{regErr: common.ErrStoreUnavailable})

	_, err := s.Register(context.Background(), &pb.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "p"})
	wantCode(t, err, codes.Unavailable)
}

func TestLogin_OK(t *testing.T) {
	s := newServer(&fakeAuth{loginResp: result()})

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Email: "ana@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetToken() != "tok" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newServer(&fakeAuth{loginErr: common.ErrInvalidCredentials})

	_, err := s.Login(context.Background(), &pb.LoginRequest{Email: "ana@x.com", Password: "wrong"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestLogin_MissingFields(t *testing.T) {
	s := newServer(&fakeAuth{loginResp: result()})

	_, err := s.Login(context.Background(), &pb.LoginRequest{Email: "ana@x.com"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestVerifyToken_OK(t *testing.T) {
	s := newServer(&fakeAuth{verifyResp: result()})

	resp, err := s.VerifyToken(context.Background(), &pb.VerifyTokenRequest{Token: "tok"})
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if resp.GetUser().GetId() != "u1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestVerifyToken_Invalid(t *testing.T) {
	s := newServer(&fakeAuth{verifyErr: common.ErrInvalidToken})

	_, err := s.VerifyToken(context.Background(), &pb.VerifyTokenRequest{Token: "garbage"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestVerifyToken_Missing(t *testing.T) {
	s := newServer(&fakeAuth{verifyResp: result()})

	_, err := s.VerifyToken(context.Background(), &pb.VerifyTokenRequest{})
	wantCode(t, err, codes.InvalidArgument)
}

func TestToStatus_UnknownErrorIsInternal(t *testing.T) {
	err := toStatus(errors.New("boom"))
	wantCode(t, err, codes.Internal)

	// The transport error must not leak the wrapped detail.
	if st, _ := status.FromError(err); st.Message() != common.ErrInternal.Error() {
		t.Fatalf("unexpected message: %q", st.Message())
	}
}
