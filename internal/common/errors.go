// Package common defines shared constants and sentinel errors used across
// the vibe tracker server and client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrVersionConflict = errors.New("version conflict")

	// Service-level errors.
	ErrorValidation   = errors.New("validation error")
	ErrExportDisabled = errors.New("export disabled")
)
