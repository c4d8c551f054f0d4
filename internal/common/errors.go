// Package common defines sentinel errors shared by the service, repository,
// and transport layers. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrDuplicateAccount = errors.New("account with this email already exists")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Credential and token errors. Login failures collapse into a single
	// ErrInvalidCredentials so responses never reveal whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// Generic fallback for failures the caller should not see details of.
	ErrInternal = errors.New("internal error")
)
