package adapter

import "errors"

// Sentinel errors mapped from backend HTTP status codes. The service
// layer matches them with [errors.Is] but never lets them escape past
// its own boundary.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("record not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("backend internal error")
	ErrBadGateway          = errors.New("bad gateway")
)
