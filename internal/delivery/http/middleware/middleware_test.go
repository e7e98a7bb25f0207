package middleware

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"  Bearer   abc  ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer ", "", false},
		{"Bearer", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		token, ok := BearerToken(tc.header)
		if ok != tc.ok || token != tc.token {
			t.Errorf("BearerToken(%q) = (%q, %v), want (%q, %v)", tc.header, token, ok, tc.token, tc.ok)
		}
	}
}

func TestNormalizeErrorAppError(t *testing.T) {
	cause := errors.New("boom")
	status, msg, _ := normalizeError(NewAppError(fiber.StatusNotFound, "Internship not found", nil, cause))
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want %d", status, fiber.StatusNotFound)
	}
	if msg != "Internship not found" {
		t.Fatalf("msg = %q", msg)
	}
}

func TestNormalizeErrorHidesServerDetail(t *testing.T) {
	status, msg, _ := normalizeError(NewAppError(fiber.StatusInternalServerError, "db exploded at 10.0.0.3", nil, nil))
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d", status)
	}
	if msg != "internal server error" {
		t.Fatalf("5xx message leaked: %q", msg)
	}

	status, msg, _ = normalizeError(errors.New("raw"))
	if status != fiber.StatusInternalServerError || msg != "internal server error" {
		t.Fatalf("unknown error not masked: %d %q", status, msg)
	}
}

func TestNormalizeErrorFiberError(t *testing.T) {
	status, msg, _ := normalizeError(fiber.NewError(fiber.StatusMethodNotAllowed, "Method Not Allowed"))
	if status != fiber.StatusMethodNotAllowed || msg != "Method Not Allowed" {
		t.Fatalf("got %d %q", status, msg)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewAppError(fiber.StatusBadRequest, "Bad request", nil, cause)
	if !errors.Is(err, cause) {
		t.Fatal("Unwrap lost the cause")
	}
}
