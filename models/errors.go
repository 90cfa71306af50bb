package models

import "errors"

// Error kinds the handlers translate to HTTP statuses. Services attach a
// caller-facing message with the constructors below; classification stays
// testable through errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }

func (e *apiError) Unwrap() error { return e.kind }

func InvalidInput(msg string) error { return &apiError{kind: ErrInvalidInput, msg: msg} }

func Unauthorized(msg string) error { return &apiError{kind: ErrUnauthorized, msg: msg} }

func Forbidden(msg string) error { return &apiError{kind: ErrForbidden, msg: msg} }

func NotFound(msg string) error { return &apiError{kind: ErrNotFound, msg: msg} }

func Conflict(msg string) error { return &apiError{kind: ErrConflict, msg: msg} }
