// Package apperrors defines the failure types surfaced by the service
// layer. Each operation owns a leaf error type whose message is shown
// verbatim in the HTTP error body; anything unexpected is wrapped once
// with a prefix naming the operation before it leaves the service.
package apperrors

import (
	"errors"
	"fmt"
)

// SignupError reports a failed instructor signup.
type SignupError struct {
	Message string
}

func (e *SignupError) Error() string { return e.Message }

// NewSignupError creates a SignupError with a formatted message.
func NewSignupError(format string, args ...any) *SignupError {
	return &SignupError{Message: fmt.Sprintf(format, args...)}
}

// LoginError reports a failed login.
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string { return e.Message }

// NewLoginError creates a LoginError with a formatted message.
func NewLoginError(format string, args ...any) *LoginError {
	return &LoginError{Message: fmt.Sprintf(format, args...)}
}

// RefreshError reports a failed token refresh.
type RefreshError struct {
	Message string
}

func (e *RefreshError) Error() string { return e.Message }

// NewRefreshError creates a RefreshError with a formatted message.
func NewRefreshError(format string, args ...any) *RefreshError {
	return &RefreshError{Message: fmt.Sprintf(format, args...)}
}

// CreateClassError reports a failed class creation.
type CreateClassError struct {
	Message string
}

func (e *CreateClassError) Error() string { return e.Message }

// NewCreateClassError creates a CreateClassError with a formatted message.
func NewCreateClassError(format string, args ...any) *CreateClassError {
	return &CreateClassError{Message: fmt.Sprintf(format, args...)}
}

// IsSignupError reports whether err is (or wraps) a SignupError.
func IsSignupError(err error) bool {
	var target *SignupError
	return errors.As(err, &target)
}

// IsLoginError reports whether err is (or wraps) a LoginError.
func IsLoginError(err error) bool {
	var target *LoginError
	return errors.As(err, &target)
}

// IsRefreshError reports whether err is (or wraps) a RefreshError.
func IsRefreshError(err error) bool {
	var target *RefreshError
	return errors.As(err, &target)
}

// IsCreateClassError reports whether err is (or wraps) a CreateClassError.
func IsCreateClassError(err error) bool {
	var target *CreateClassError
	return errors.As(err, &target)
}
