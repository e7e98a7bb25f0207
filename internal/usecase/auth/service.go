package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"internhub/internal/domain/user"
	"internhub/internal/repository"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email          string
	Password       string
	FirstName      string
	LastName       string
	University     string
	Major          string
	GraduationYear *int
}

type LoginInput struct {
	Email    string
	Password string
}

// Service owns credential handling: registration, password hashing
// and login verification. Token minting lives a layer up.
type Service struct {
	users repository.UserRepository

	newID func() uuid.UUID
	now   func() time.Time
}

func NewService(users repository.UserRepository) *Service {
	return &Service{users: users, newID: uuid.New, now: time.Now}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.Password) {
		return user.User{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return user.User{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	now := s.now()
	u := user.User{
		ID:             s.newID(),
		Email:          email,
		PasswordHash:   string(hash),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		University:     strings.TrimSpace(in.University),
		Major:          strings.TrimSpace(in.Major),
		GraduationYear: in.GraduationYear,
		Skills:         []string{},
		Interests:      []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	return sanitizeUser(u), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
