package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain. Handlers translate these to HTTP status
// codes; services never leak store errors directly.
var (
	ErrConflict           = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrWrongTokenType     = errors.New("wrong token type")
	ErrUnknownSubject     = errors.New("unknown token subject")
	ErrForbidden          = errors.New("insufficient permission")
	ErrQueryFailed        = errors.New("query failed")
	ErrInternal           = errors.New("internal error")
)

func NewConflict(what string) error {
	return fmt.Errorf("%w: %s", ErrConflict, what)
}

func NewNotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

func WrapInternal(err error, context string) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, context, err)
}

// IsAuthentication reports whether err belongs to the authentication family.
// All of these collapse to a single 401 at the HTTP boundary.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrWrongTokenType) ||
		errors.Is(err, ErrUnknownSubject)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
