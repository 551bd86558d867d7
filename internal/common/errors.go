// Package common defines shared constants and sentinel errors used across
// client and server layers of Talentum. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// Domain-specific errors.
	ErrorEmailTaken        = errors.New("email already registered")
	ErrorInvalidRole       = errors.New("invalid role")
	ErrorAlreadyEnrolled   = errors.New("already enrolled in this course")
	ErrorAlreadyApplied    = errors.New("already applied to this offer")
	ErrorAlreadyConnected  = errors.New("already connected with this user")
	ErrorRequestPending    = errors.New("connection request already pending")
	ErrorRequestProcessed  = errors.New("connection request already processed")
	ErrorCourseNotFinished = errors.New("course not finished")
	ErrorSelfRequest       = errors.New("cannot send a connection request to yourself")
)
