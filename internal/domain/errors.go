package domain

import "errors"

var (
	ErrTokenMalformed     = errors.New("token malformed")
	ErrTokenSignature     = errors.New("token signature invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrBadCredentials     = errors.New("bad credentials")
	ErrUnknownSubject     = errors.New("unknown subject")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrAccountLocked      = errors.New("account locked")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalAuth       = errors.New("internal authentication failure")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrDuplicateName      = errors.New("name already in use")
	ErrDepartmentNotEmpty = errors.New("department has assigned employees")
)
