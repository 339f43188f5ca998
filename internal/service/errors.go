package service

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed caller input. No network call is made when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ErrEmptyIngredients is returned when the include list is blank after removing whitespace.
var ErrEmptyIngredients = &ValidationError{Field: "ingredients", Message: "enter at least one ingredient"}

// ProviderError means a provider request failed or returned an unusable payload.
type ProviderError struct {
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("recipe provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("recipe provider failed: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NetworkError means the recipe provider could not be reached.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("recipe provider unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

var (
	// ErrNotAuthenticated is returned when an operation needs a session and there is none.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSavedRecipeNotFound is returned when removing a link the user does not own.
	ErrSavedRecipeNotFound = errors.New("saved recipe not found")
	// ErrInvalidCredentials is returned by Login for an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned by Register when the email already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrSessionExpired is returned when a token is valid but its session was revoked or expired.
	ErrSessionExpired = errors.New("session expired")
)

// PersistenceError means the data backend rejected or failed a write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsProviderError reports whether err is or wraps a *ProviderError.
func IsProviderError(err error) bool {
	var target *ProviderError
	return errors.As(err, &target)
}

// IsNetworkError reports whether err is or wraps a *NetworkError.
func IsNetworkError(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

// IsPersistenceError reports whether err is or wraps a *PersistenceError.
func IsPersistenceError(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}
