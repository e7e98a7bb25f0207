package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")

	ErrUserNotFound         = errors.New("user not found")
	ErrInternshipNotFound   = errors.New("internship not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrGoalNotFound         = errors.New("career goal not found")
	ErrMilestoneNotFound    = errors.New("milestone not found")
	ErrPortfolioNotFound    = errors.New("portfolio not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrResumeNotFound       = errors.New("resume not found")

	ErrAlreadyApplied = errors.New("already applied to this internship")
)

// ValidationError names the first missing or malformed field. It
// matches ErrInvalidInput under errors.Is so callers can branch on the
// category without caring about the field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Field
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func missingField(field string) error {
	return &ValidationError{Field: field}
}
