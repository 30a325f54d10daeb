// Package service
package service

import "github.com/half-nothing/simple-fms/internal/interfaces/operation"

type AuditServiceInterface interface {
	GetAuditLogPage(req *RequestGetAuditLog) *Result[ResponseGetAuditLog]
}

type RequestGetAuditLog struct {
	Page     int
	PageSize int
}

type ResponseGetAuditLog struct {
	Items    []*operation.AuditLog
	Page     int
	PageSize int
	Total    int64
}

// TotalPages 总页数, 没有记录时为1
func (res *ResponseGetAuditLog) TotalPages() int {
	if res.Total == 0 || res.PageSize <= 0 {
		return 1
	}
	return int((res.Total + int64(res.PageSize) - 1) / int64(res.PageSize))
}
