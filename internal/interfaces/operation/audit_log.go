// Package operation
package operation

type EventType string

const (
	DestinationCreated EventType = "DestinationCreated"
	DestinationDeleted EventType = "DestinationDeleted"
	AirportCreated     EventType = "AirportCreated"
	AirportDeleted     EventType = "AirportDeleted"
	PilotCreated       EventType = "PilotCreated"
	PilotUpdated       EventType = "PilotUpdated"
	PilotDeleted       EventType = "PilotDeleted"
	FlightScheduled    EventType = "FlightScheduled"
	FlightRescheduled  EventType = "FlightRescheduled"
	FlightCancelled    EventType = "FlightCancelled"
	FlightPilotChanged EventType = "FlightPilotChanged"
	FlightRouteChanged EventType = "FlightRouteChanged"
)

type AuditLogOperationInterface interface {
	NewAuditLog(eventType EventType, subject uint, object string, changeDetails *ChangeDetail) (auditLog *AuditLog)
	SaveAuditLog(auditLog *AuditLog) (err error)
	GetAuditLogs(page, pageSize int) (auditLogs []*AuditLog, total int64, err error)
}
