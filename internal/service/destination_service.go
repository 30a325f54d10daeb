// Package service
package service

import (
	"fmt"
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
	. "github.com/half-nothing/simple-fms/internal/interfaces/service"
	"strings"
)

type DestinationService struct {
	logger               log.LoggerInterface
	destinationOperation operation.DestinationOperationInterface
	airportOperation     operation.AirportOperationInterface
	audit                *auditRecorder
}

func NewDestinationService(
	logger log.LoggerInterface,
	operations *operation.DatabaseOperations,
) *DestinationService {
	return &DestinationService{
		logger:               logger,
		destinationOperation: operations.DestinationOperation(),
		airportOperation:     operations.AirportOperation(),
		audit:                &auditRecorder{logger: logger, auditOperation: operations.AuditLogOperation()},
	}
}

func destinationName(destination *operation.Destination) string {
	return fmt.Sprintf("%s, %s", destination.City, destination.Country)
}

var SuccessAddDestination = Status{StatusName: "ADD_DESTINATION", Description: "Destination added", Kind: Success}

func (destinationService *DestinationService) AddDestination(req *RequestAddDestination) *Result[operation.Destination] {
	city, status := cityValidator.CheckString(req.City)
	if status != nil {
		return NewResult[operation.Destination](status, nil)
	}
	country, status := countryValidator.CheckString(req.Country)
	if status != nil {
		return NewResult[operation.Destination](status, nil)
	}
	destination := destinationService.destinationOperation.NewDestination(city, country)
	if res := CallDBFunc[operation.Destination](destinationService.logger, func() error {
		return destinationService.destinationOperation.AddDestination(destination)
	}); res != nil {
		return res
	}
	destinationService.logger.InfoF("Destination %s added", destinationName(destination))
	destinationService.audit.record(operation.DestinationCreated, destination.ID, destinationName(destination), "", "")
	return NewResult(&SuccessAddDestination, destination)
}

var SuccessGetDestinations = Status{StatusName: "GET_DESTINATIONS", Description: "Destinations loaded", Kind: Success}

func (destinationService *DestinationService) GetDestinations() *Result[ResponseDestinationList] {
	destinations, err := destinationService.destinationOperation.GetDestinations()
	if err != nil {
		destinationService.logger.ErrorF("Error in DB function: %v", err)
		return NewResult[ResponseDestinationList](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessGetDestinations, &ResponseDestinationList{Items: destinations})
}

var SuccessDeleteDestination = Status{StatusName: "DELETE_DESTINATION", Description: "Destination deleted", Kind: Success}

func (destinationService *DestinationService) DeleteDestination(req *RequestDestination) *Result[operation.Destination] {
	if req.DestinationId == 0 {
		return NewResult[operation.Destination](&ErrIllegalParam, nil)
	}
	destination, res := CallDBFuncAndCheckError[operation.Destination, operation.Destination](destinationService.logger, func() (*operation.Destination, error) {
		return destinationService.destinationOperation.GetDestinationById(req.DestinationId)
	})
	if res != nil {
		return res
	}
	if res := CallDBFunc[operation.Destination](destinationService.logger, func() error {
		return destinationService.destinationOperation.DeleteDestination(destination)
	}); res != nil {
		return res
	}
	destinationService.logger.InfoF("Destination %s deleted", destinationName(destination))
	destinationService.audit.record(operation.DestinationDeleted, destination.ID, destinationName(destination), "", "")
	return NewResult(&SuccessDeleteDestination, destination)
}

var SuccessAddAirport = Status{StatusName: "ADD_AIRPORT", Description: "Airport added", Kind: Success}

func (destinationService *DestinationService) AddAirport(req *RequestAddAirport) *Result[operation.Airport] {
	if req.DestinationId == 0 {
		return NewResult[operation.Airport](&ErrIllegalParam, nil)
	}
	name, status := airportNameValidator.CheckString(req.Name)
	if status != nil {
		return NewResult[operation.Airport](status, nil)
	}
	iataCode, status := iataCodeValidator.CheckString(req.IataCode)
	if status != nil {
		return NewResult[operation.Airport](status, nil)
	}
	iataCode = strings.ToUpper(iataCode)
	destination, res := CallDBFuncAndCheckError[operation.Destination, operation.Airport](destinationService.logger, func() (*operation.Destination, error) {
		return destinationService.destinationOperation.GetDestinationById(req.DestinationId)
	})
	if res != nil {
		return res
	}
	airport := destinationService.airportOperation.NewAirport(destination, name, iataCode)
	if res := CallDBFunc[operation.Airport](destinationService.logger, func() error {
		return destinationService.airportOperation.AddAirport(airport)
	}); res != nil {
		return res
	}
	destinationService.logger.InfoF("Airport %s(%s) added to %s", airport.Name, airport.IataCode, destinationName(destination))
	destinationService.audit.record(operation.AirportCreated, airport.ID, airport.IataCode, "", airport.Name)
	return NewResult(&SuccessAddAirport, airport)
}

var SuccessGetAirports = Status{StatusName: "GET_AIRPORTS", Description: "Airports loaded", Kind: Success}

func (destinationService *DestinationService) GetAirports(req *RequestAirportList) *Result[ResponseAirportList] {
	airports, err := destinationService.airportOperation.GetAirports(req.ExcludeAirportId)
	if err != nil {
		destinationService.logger.ErrorF("Error in DB function: %v", err)
		return NewResult[ResponseAirportList](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessGetAirports, &ResponseAirportList{Items: airports})
}

var SuccessDeleteAirport = Status{StatusName: "DELETE_AIRPORT", Description: "Airport deleted", Kind: Success}

func (destinationService *DestinationService) DeleteAirport(req *RequestAirport) *Result[operation.Airport] {
	if req.AirportId == 0 {
		return NewResult[operation.Airport](&ErrIllegalParam, nil)
	}
	airport, res := CallDBFuncAndCheckError[operation.Airport, operation.Airport](destinationService.logger, func() (*operation.Airport, error) {
		return destinationService.airportOperation.GetAirportById(req.AirportId)
	})
	if res != nil {
		return res
	}
	if res := CallDBFunc[operation.Airport](destinationService.logger, func() error {
		return destinationService.airportOperation.DeleteAirport(airport)
	}); res != nil {
		return res
	}
	destinationService.logger.InfoF("Airport %s(%s) deleted", airport.Name, airport.IataCode)
	destinationService.audit.record(operation.AirportDeleted, airport.ID, airport.IataCode, airport.Name, "")
	return NewResult(&SuccessDeleteAirport, airport)
}

var SuccessGetStatistics = Status{StatusName: "GET_STATISTICS", Description: "Statistics loaded", Kind: Success}

func (destinationService *DestinationService) GetFlightCountPerDestination() *Result[ResponseDestinationFlightCount] {
	counts, err := destinationService.destinationOperation.GetFlightCountPerDestination()
	if err != nil {
		destinationService.logger.ErrorF("Error in DB function: %v", err)
		return NewResult[ResponseDestinationFlightCount](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessGetStatistics, &ResponseDestinationFlightCount{Items: counts})
}

func (destinationService *DestinationService) GetAirportsByCancelledDepartures() *Result[ResponseAirportFlightCount] {
	counts, err := destinationService.airportOperation.GetAirportsByCancelledDepartures()
	if err != nil {
		destinationService.logger.ErrorF("Error in DB function: %v", err)
		return NewResult[ResponseAirportFlightCount](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessGetStatistics, &ResponseAirportFlightCount{Items: counts})
}
