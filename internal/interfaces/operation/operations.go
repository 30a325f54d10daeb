// Package operation
package operation

type DatabaseOperations struct {
	destinationOperation DestinationOperationInterface
	airportOperation     AirportOperationInterface
	pilotOperation       PilotOperationInterface
	flightOperation      FlightOperationInterface
	auditLogOperation    AuditLogOperationInterface
}

func NewDatabaseOperations(
	destinationOperation DestinationOperationInterface,
	airportOperation AirportOperationInterface,
	pilotOperation PilotOperationInterface,
	flightOperation FlightOperationInterface,
	auditLogOperation AuditLogOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		destinationOperation: destinationOperation,
		airportOperation:     airportOperation,
		pilotOperation:       pilotOperation,
		flightOperation:      flightOperation,
		auditLogOperation:    auditLogOperation,
	}
}

func (db *DatabaseOperations) DestinationOperation() DestinationOperationInterface {
	return db.destinationOperation
}

func (db *DatabaseOperations) AirportOperation() AirportOperationInterface {
	return db.airportOperation
}

func (db *DatabaseOperations) PilotOperation() PilotOperationInterface { return db.pilotOperation }

func (db *DatabaseOperations) FlightOperation() FlightOperationInterface { return db.flightOperation }

func (db *DatabaseOperations) AuditLogOperation() AuditLogOperationInterface {
	return db.auditLogOperation
}
