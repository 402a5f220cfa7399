// Package service provides the business logic services for Libris.
package service

import "errors"

// Service-level errors. Business rule violations live in the domain
// package; these cover input rules the services enforce themselves.
var (
	// ErrPasswordTooShort indicates a password below the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)
