package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"internhub/internal/pkg/jwt"
	"internhub/internal/repository/memory"
	ucauth "internhub/internal/usecase/auth"
)

func newAuthFixture(t *testing.T) (*Auth, *memory.UserRepository, *stubNotifier) {
	t.Helper()
	users := memory.NewUserRepository()
	notifier := &stubNotifier{}
	jwtSvc := jwt.NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)
	return NewAuthUsecase(users, jwtSvc, notifier), users, notifier
}

func validRegister() ucauth.RegisterInput {
	return ucauth.RegisterInput{
		Email:     "jane@campus.edu",
		Password:  "hunter2hunter2",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestRegisterIssuesTokensAndWelcome(t *testing.T) {
	uc, _, notifier := newAuthFixture(t)

	usr, access, refresh, err := uc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected both tokens")
	}
	if usr.PasswordHash != "" {
		t.Fatal("password hash must not leave the usecase")
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Title != "Welcome to InternHub!" {
		t.Fatalf("missing welcome notification: %+v", notifier.sent)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	if _, _, _, err := uc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, _, err := uc.Register(context.Background(), validRegister())
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	in := validRegister()
	in.Password = "short"
	if _, _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	uc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, _, _, err := uc.Register(ctx, validRegister()); err != nil {
		t.Fatalf("register: %v", err)
	}

	usr, access, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "Jane@Campus.edu", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if access == "" || usr.Email != "jane@campus.edu" {
		t.Fatalf("unexpected login result: %+v", usr)
	}

	_, _, _, err = uc.Login(ctx, ucauth.LoginInput{Email: "jane@campus.edu", Password: "wrong-password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	uc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, access, refresh, err := uc.Register(ctx, validRegister())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := uc.Refresh(ctx, access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token must not refresh, got %v", err)
	}

	newAccess, newRefresh, err := uc.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Fatal("expected fresh token pair")
	}
}
