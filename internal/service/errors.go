package service

import "errors"

var (
	// ErrInvalidAdminType is the policy rejection for a federated role
	// outside the allow-list. The wrapping error always names the
	// offending value.
	ErrInvalidAdminType = errors.New("invalid admin type")

	// ErrCredentialsMismatch is the refusal of the legacy path: the
	// supplied username or password does not match the stored record.
	ErrCredentialsMismatch = errors.New("username or password does not match")

	// ErrBackendRejected is returned when the federated endpoint answers
	// with its in-body error field instead of an identity record.
	ErrBackendRejected = errors.New("backend rejected login check")
)
