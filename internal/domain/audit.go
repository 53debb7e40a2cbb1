package domain

import "time"

type AuditEventType string

const (
	AuditEventLoginSucceeded AuditEventType = "login_succeeded"
	AuditEventLoginFailed    AuditEventType = "login_failed"
	AuditEventUserRegistered AuditEventType = "user_registered"
	AuditEventTokenRejected  AuditEventType = "token_rejected"
)

type AuditResult string

const (
	AuditResultSuccess AuditResult = "success"
	AuditResultFailure AuditResult = "failure"
)

type AuditEvent struct {
	ID          string
	EventType   AuditEventType
	SubjectHash string
	RemoteAddr  string
	Result      AuditResult
	ErrorCode   string
	CreatedAt   time.Time
}
