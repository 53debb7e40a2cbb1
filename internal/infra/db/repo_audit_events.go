package db

import (
	"context"

	"darum/internal/domain"

	"gorm.io/gorm"
)

type AuditEventRepository struct {
	db *gorm.DB
}

func NewAuditEventRepository(conn *gorm.DB) *AuditEventRepository {
	return &AuditEventRepository{db: conn}
}

func (r *AuditEventRepository) Append(ctx context.Context, event domain.AuditEvent) (domain.AuditEvent, error) {
	if r.db == nil {
		return domain.AuditEvent{}, errDBUnavailable
	}
	id, err := newUUID()
	if err != nil {
		return domain.AuditEvent{}, err
	}
	model := AuditEventModel{
		ID:          id,
		EventType:   string(event.EventType),
		SubjectHash: event.SubjectHash,
		RemoteAddr:  event.RemoteAddr,
		Result:      string(event.Result),
		CreatedAt:   event.CreatedAt,
	}
	if event.ErrorCode != "" {
		errorCode := event.ErrorCode
		model.ErrorCode = &errorCode
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.AuditEvent{}, err
	}
	event.ID = model.ID
	return event, nil
}
