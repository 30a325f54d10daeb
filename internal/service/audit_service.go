// Package service
package service

import (
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
	. "github.com/half-nothing/simple-fms/internal/interfaces/service"
)

type AuditLogService struct {
	logger         log.LoggerInterface
	auditOperation operation.AuditLogOperationInterface
}

func NewAuditService(
	logger log.LoggerInterface,
	auditOperation operation.AuditLogOperationInterface,
) *AuditLogService {
	return &AuditLogService{
		logger:         logger,
		auditOperation: auditOperation,
	}
}

var SuccessGetAuditLog = Status{StatusName: "GET_AUDIT_LOG", Description: "Change history loaded", Kind: Success}

func (auditLogService *AuditLogService) GetAuditLogPage(req *RequestGetAuditLog) *Result[ResponseGetAuditLog] {
	if req.Page <= 0 || req.PageSize <= 0 {
		return NewResult[ResponseGetAuditLog](&ErrIllegalParam, nil)
	}
	auditLogs, total, err := auditLogService.auditOperation.GetAuditLogs(req.Page, req.PageSize)
	if err != nil {
		auditLogService.logger.ErrorF("Fail to load audit logs, detail: %v", err)
		return NewResult[ResponseGetAuditLog](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessGetAuditLog, &ResponseGetAuditLog{
		Items:    auditLogs,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	})
}

// auditRecorder 记录每一次成功的数据变更, 写入失败只记录日志不影响操作结果
type auditRecorder struct {
	logger         log.LoggerInterface
	auditOperation operation.AuditLogOperationInterface
}

func (recorder *auditRecorder) record(eventType operation.EventType, subject uint, object string, oldValue, newValue string) {
	var details *operation.ChangeDetail
	if oldValue != "" || newValue != "" {
		details = &operation.ChangeDetail{OldValue: oldValue, NewValue: newValue}
	}
	auditLog := recorder.auditOperation.NewAuditLog(eventType, subject, object, details)
	if err := recorder.auditOperation.SaveAuditLog(auditLog); err != nil {
		recorder.logger.ErrorF("Fail to create audit log for %s, detail: %v", eventType, err)
	}
}
