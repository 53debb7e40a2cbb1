package http

import (
	"errors"
	"net/http"
	"time"

	"darum/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	statusSuccess      = "success"
	statusError        = "error"
	statusUnauthorized = "unauthorized"
)

// responseBody is the single envelope shape shared by every response on the
// boundary, success and failure alike.
type responseBody struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

type failureMapping struct {
	matches func(error) bool
	status  int
	tag     string
	message string
}

// failureMappings is the process-wide translation table from failure kind to
// wire response. Built once; evaluated in order, first match wins. Unmatched
// errors fall through to a 500 carrying the raw error message.
var failureMappings = []failureMapping{
	{
		matches: func(err error) bool { return errors.Is(err, domain.ErrBadCredentials) },
		status:  http.StatusBadRequest,
		tag:     statusError,
		message: "Invalid username or password",
	},
	{
		matches: isAuthenticationFailure,
		status:  http.StatusUnauthorized,
		tag:     statusError,
		message: "Unable to authenticate user",
	},
	{
		matches: func(err error) bool { return errors.Is(err, domain.ErrInternalAuth) },
		status:  http.StatusInternalServerError,
		tag:     statusError,
		message: "Internal authentication service error occurred.",
	},
	{
		matches: func(err error) bool { return errors.Is(err, domain.ErrForbidden) },
		status:  http.StatusForbidden,
		tag:     statusUnauthorized,
		message: "You do not have permission to access this resource.",
	},
}

func isAuthenticationFailure(err error) bool {
	return errors.Is(err, domain.ErrTokenMalformed) ||
		errors.Is(err, domain.ErrTokenSignature) ||
		errors.Is(err, domain.ErrTokenExpired) ||
		errors.Is(err, domain.ErrUnknownSubject) ||
		errors.Is(err, domain.ErrAccountDisabled) ||
		errors.Is(err, domain.ErrAccountLocked)
}

func translate(err error) (int, string, string) {
	for _, mapping := range failureMappings {
		if mapping.matches(err) {
			return mapping.status, mapping.tag, mapping.message
		}
	}
	return http.StatusInternalServerError, statusError, err.Error()
}

func writeSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, responseBody{
		Status:    statusSuccess,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func writeFailure(c *gin.Context, status int, tag, message string) {
	c.JSON(status, responseBody{
		Status:    tag,
		Message:   message,
		Data:      nil,
		Timestamp: time.Now().UTC(),
	})
}

// writeTranslated routes any post-authentication failure through the shared
// translation table.
func writeTranslated(c *gin.Context, err error) {
	status, tag, message := translate(err)
	writeFailure(c, status, tag, message)
}

// writeStoreError maps repository outcomes on resource routes. Anything that
// is not a lookup miss or a uniqueness conflict falls back to the shared
// translation table.
func writeStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeFailure(c, http.StatusNotFound, statusError, "Resource not found")
	case errors.Is(err, domain.ErrDuplicateEmail):
		writeFailure(c, http.StatusConflict, statusError, "Email already in use")
	case errors.Is(err, domain.ErrDuplicateName):
		writeFailure(c, http.StatusConflict, statusError, "Department name already in use")
	case errors.Is(err, domain.ErrDepartmentNotEmpty):
		writeFailure(c, http.StatusConflict, statusError, "Department still has employees assigned")
	default:
		writeTranslated(c, err)
	}
}
