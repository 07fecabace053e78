package lib

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrAuthRequired       = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Domain errors
var (
	ErrVendorExists  = errors.New("vendor account already exists")
	ErrDuplicateSlug = errors.New("duplicate product slug")
)

// sqlState extracts the SQLSTATE code from a driver error, if any.
func sqlState(err error) string {
	var driverErr pgdriver.Error
	if errors.As(err, &driverErr) {
		return driverErr.Field('C')
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func MapPgError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	switch sqlState(err) {
	case "23505": // unique_violation
		return ErrConflict
	case "P0002": // no_data_found
		return ErrNotFound
	}
	return err
}

func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrConflict) || sqlState(err) == "23505"
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}

// GetUserMessage maps an error to a message safe to show to API callers.
func GetUserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, ErrAuthRequired):
		return "You must be logged in"
	case errors.Is(err, ErrVendorExists):
		return "You already have a vendor account"
	case errors.Is(err, ErrDuplicateSlug):
		return "A product with this name already exists in your store"
	case errors.Is(err, ErrNotFound):
		return "Not found"
	case errors.Is(err, ErrConflict):
		return "This record already exists"
	default:
		return "Something went wrong. Please try again"
	}
}

// GetDetailForLogging returns a safe error string for debug logs.
func GetDetailForLogging(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
