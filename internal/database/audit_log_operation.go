// Package database
package database

import (
	"context"
	. "github.com/half-nothing/simple-fms/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type AuditLogOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAuditLogOperation(db *gorm.DB, queryTimeout time.Duration) *AuditLogOperation {
	return &AuditLogOperation{db: db, queryTimeout: queryTimeout}
}

func (auditLogOperation *AuditLogOperation) NewAuditLog(eventType EventType, subject uint, object string, changeDetails *ChangeDetail) (auditLog *AuditLog) {
	return &AuditLog{
		EventType:     string(eventType),
		Subject:       subject,
		Object:        object,
		ChangeDetails: changeDetails,
	}
}

func (auditLogOperation *AuditLogOperation) GetAuditLogs(page, pageSize int) (auditLogs []*AuditLog, total int64, err error) {
	page = max(page, 1)
	auditLogs = make([]*AuditLog, 0, pageSize)
	ctx, cancel := context.WithTimeout(context.Background(), auditLogOperation.queryTimeout)
	defer cancel()
	if err = auditLogOperation.db.WithContext(ctx).Model(&AuditLog{}).Count(&total).Error; err != nil {
		return
	}
	err = auditLogOperation.db.WithContext(ctx).
		Offset((page - 1) * pageSize).
		Order("created_at desc, audit_log_id desc").
		Limit(pageSize).
		Find(&auditLogs).Error
	return
}

func (auditLogOperation *AuditLogOperation) SaveAuditLog(auditLog *AuditLog) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), auditLogOperation.queryTimeout)
	defer cancel()
	return auditLogOperation.db.WithContext(ctx).Create(auditLog).Error
}
