package usecase

import (
	"context"
	"errors"

	"internhub/internal/domain/notification"
	"internhub/internal/domain/user"
	"internhub/internal/pkg/jwt"
	"internhub/internal/repository"
	ucauth "internhub/internal/usecase/auth"
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc  *ucauth.Service
	users    repository.UserRepository
	jwt      jwt.Service
	notifier NotificationSender
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service, notifier NotificationSender) *Auth {
	return &Auth{authSvc: ucauth.NewService(users), users: users, jwt: jwtSvc, notifier: notifier}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, string, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, "", "", mapAuthErr(err)
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, "", "", err
	}

	u.notifier.Notify(ctx, usr.ID,
		"Welcome to InternHub!",
		"Complete your profile to get personalized internship recommendations.",
		notification.TypeSkill,
		"/profile",
	)

	return usr, access, refresh, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, "", "", mapAuthErr(err)
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, "", "", err
	}
	return usr, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrInternal
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (u *Auth) issueTokens(usr user.User) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func mapAuthErr(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return ErrEmailAlreadyRegistered
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, ucauth.ErrInvalidInput):
		return ErrInvalidInput
	default:
		return ErrInternal
	}
}
