package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"darum/internal/domain"
)

// AuditEmitter appends authentication events to the audit trail. Subjects
// are stored hashed. Emission is best-effort at call sites; failures must
// never fail the request being audited.
type AuditEmitter struct {
	Repo  AuditEventRepository
	Clock Clock
}

func NewAuditEmitter(repo AuditEventRepository, clock Clock) *AuditEmitter {
	return &AuditEmitter{
		Repo:  repo,
		Clock: clock,
	}
}

func (e *AuditEmitter) Emit(ctx context.Context, event domain.AuditEvent) error {
	if e == nil || e.Repo == nil {
		return errors.New("audit repository required")
	}
	if event.EventType == "" || event.Result == "" {
		return errors.New("audit event missing required fields")
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = e.now().UTC()
	} else {
		event.CreatedAt = event.CreatedAt.UTC()
	}
	_, err := e.Repo.Append(ctx, event)
	return err
}

func (e *AuditEmitter) EmitLoginSucceeded(ctx context.Context, subject, remoteAddr string) error {
	return e.Emit(ctx, domain.AuditEvent{
		EventType:   domain.AuditEventLoginSucceeded,
		SubjectHash: hashSubject(subject),
		RemoteAddr:  remoteAddr,
		Result:      domain.AuditResultSuccess,
	})
}

func (e *AuditEmitter) EmitLoginFailed(ctx context.Context, subject, remoteAddr, errorCode string) error {
	return e.Emit(ctx, domain.AuditEvent{
		EventType:   domain.AuditEventLoginFailed,
		SubjectHash: hashSubject(subject),
		RemoteAddr:  remoteAddr,
		Result:      domain.AuditResultFailure,
		ErrorCode:   errorCode,
	})
}

func (e *AuditEmitter) EmitUserRegistered(ctx context.Context, subject, remoteAddr string) error {
	return e.Emit(ctx, domain.AuditEvent{
		EventType:   domain.AuditEventUserRegistered,
		SubjectHash: hashSubject(subject),
		RemoteAddr:  remoteAddr,
		Result:      domain.AuditResultSuccess,
	})
}

func (e *AuditEmitter) EmitTokenRejected(ctx context.Context, subject, remoteAddr, errorCode string) error {
	return e.Emit(ctx, domain.AuditEvent{
		EventType:   domain.AuditEventTokenRejected,
		SubjectHash: hashSubject(subject),
		RemoteAddr:  remoteAddr,
		Result:      domain.AuditResultFailure,
		ErrorCode:   errorCode,
	})
}

func (e *AuditEmitter) now() time.Time {
	if e != nil && e.Clock != nil {
		return e.Clock()
	}
	return time.Now().UTC()
}

func hashSubject(subject string) string {
	if subject == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(subject))
	return hex.EncodeToString(sum[:])
}
