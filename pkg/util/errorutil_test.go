package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestToDomainError_Passthrough(t *testing.T) {
	original := NewForbidden("no")
	got := ToDomainError(original)
	if got.Code != "FORBIDDEN" || got.Message != "no" {
		t.Fatalf("DomainError not passed through: %+v", got)
	}
}

func TestToDomainError_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), NewBadRequest("inner"))
	got := ToDomainError(wrapped)
	if got.Code != "BAD_REQUEST" {
		t.Fatalf("wrapped DomainError not unwrapped: %+v", got)
	}
}

func TestToDomainError_NoRows(t *testing.T) {
	got := ToDomainError(pgx.ErrNoRows)
	if got.Code != "NOT_FOUND" || got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("ErrNoRows should map to NOT_FOUND: %+v", got)
	}
}

func TestToDomainError_PgCodes(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"40001", "CONFLICT"},
		{"40P01", "CONFLICT"},
		{"23505", "CONFLICT"},
		{"42P01", "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		got := ToDomainError(&pgconn.PgError{Code: tc.code})
		if got.Code != tc.want {
			t.Fatalf("pg code %s: got %s, want %s", tc.code, got.Code, tc.want)
		}
	}
}

func TestToDomainError_Unknown(t *testing.T) {
	got := ToDomainError(errors.New("boom"))
	if got.Code != "INTERNAL_ERROR" || got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if !errors.Is(got, got.Err) {
		t.Fatalf("cause not retained")
	}
}

func TestToDomainError_Nil(t *testing.T) {
	if got := ToDomainError(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestNewNotFound_Message(t *testing.T) {
	var de *DomainError
	if !errors.As(NewNotFound("Ticket", nil), &de) {
		t.Fatalf("expected DomainError")
	}
	if de.Message != "Ticket not found" {
		t.Fatalf("unexpected message: %s", de.Message)
	}
}
