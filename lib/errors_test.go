package lib

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, ErrConflict},
		{"no data found", &pgconn.PgError{Code: "P0002"}, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapPgError(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("MapPgError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestMapPgErrorPassthrough(t *testing.T) {
	sentinel := errors.New("some other failure")
	if got := MapPgError(sentinel); got != sentinel {
		t.Errorf("unrelated error was rewritten: %v", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(ErrConflict) {
		t.Error("ErrConflict should count as unique violation")
	}
	if !IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("SQLSTATE 23505 should count as unique violation")
	}
	if IsUniqueViolation(ErrNotFound) {
		t.Error("ErrNotFound is not a unique violation")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil is not a unique violation")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(ErrNotFound) || !IsNotFound(sql.ErrNoRows) {
		t.Error("not-found errors not recognized")
	}
	if IsNotFound(ErrConflict) {
		t.Error("ErrConflict is not a not-found error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrVendorExists, "You already have a vendor account"},
		{ErrDuplicateSlug, "A product with this name already exists in your store"},
		{ErrInvalidCredentials, "Invalid credentials"},
		{errors.New("internal detail"), "Something went wrong. Please try again"},
	}

	for _, tt := range tests {
		if got := GetUserMessage(tt.err); got != tt.want {
			t.Errorf("GetUserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
