// Package service
package service

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-fms/internal/interfaces/config"
	"github.com/half-nothing/simple-fms/internal/interfaces/global"
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
	. "github.com/half-nothing/simple-fms/internal/interfaces/service"
	"github.com/half-nothing/simple-fms/internal/schedule"
	"github.com/half-nothing/simple-fms/internal/utils"
	"strings"
	"time"
)

type FlightService struct {
	logger           log.LoggerInterface
	config           *config.ScheduleConfig
	flightOperation  operation.FlightOperationInterface
	airportOperation operation.AirportOperationInterface
	pilotOperation   operation.PilotOperationInterface
	checker          *schedule.Checker
	generator        schedule.FlightNumberGenerator
	audit            *auditRecorder
	status           *statusSync
}

func NewFlightService(
	logger log.LoggerInterface,
	config *config.ScheduleConfig,
	operations *operation.DatabaseOperations,
	generator schedule.FlightNumberGenerator,
	now func() time.Time,
) *FlightService {
	if generator == nil {
		generator = schedule.NewRandomFlightNumber(config.AirlineCodes)
	}
	return &FlightService{
		logger:           logger,
		config:           config,
		flightOperation:  operations.FlightOperation(),
		airportOperation: operations.AirportOperation(),
		pilotOperation:   operations.PilotOperation(),
		checker:          schedule.NewChecker(operations.FlightOperation(), operations.PilotOperation(), config.StrictOverlap, config.CancelledBlocksPilot),
		generator:        generator,
		audit:            &auditRecorder{logger: logger, auditOperation: operations.AuditLogOperation()},
		status: &statusSync{
			resolver: schedule.NewResolver(operations.FlightOperation(), logger),
			mode:     config.ReconcileMode,
			now:      now,
		},
	}
}

func formatTime(t time.Time) string { return t.UTC().Format(global.DateTimeLayout) + " UTC" }

var (
	ErrDepartureInPast       = Status{StatusName: "DEPARTURE_IN_PAST", Description: "Departure time must be in the future", Kind: Invalid}
	ErrInvalidDuration       = Status{StatusName: "INVALID_DURATION", Description: "Invalid flight duration", Kind: Invalid}
	ErrFlightNumberExhausted = Status{StatusName: "FLIGHT_NUMBER_EXHAUSTED", Description: "Could not find a free flight number, please try again", Kind: Conflict}
	SuccessScheduleFlight    = Status{StatusName: "SCHEDULE_FLIGHT", Description: "Flight scheduled", Kind: Success}
)

func (flightService *FlightService) ScheduleFlight(req *RequestScheduleFlight) *Result[operation.Flight] {
	if req.DepartureAirportId == 0 || req.ArrivalAirportId == 0 {
		return NewResult[operation.Flight](&ErrIllegalParam, nil)
	}
	if req.DepartureAirportId == req.ArrivalAirportId {
		return NewResult[operation.Flight](&ErrInvalidRoute, nil)
	}
	if !req.DepartureTime.After(flightService.status.now()) {
		return NewResult[operation.Flight](&ErrDepartureInPast, nil)
	}
	duration, err := schedule.FlightDuration(req.Hours, req.Minutes, flightService.config.MaxFlightDuration)
	if err != nil {
		if errors.Is(err, schedule.ErrDurationTooLong) {
			return NewResultF[operation.Flight](&ErrInvalidDuration, fmt.Sprintf("Total flight duration cannot exceed %s", flightService.config.MaxFlightDuration))
		}
		return NewResultF[operation.Flight](&ErrInvalidDuration, "Invalid duration, "+err.Error())
	}

	departure, res := CallDBFuncAndCheckError[operation.Airport, operation.Flight](flightService.logger, func() (*operation.Airport, error) {
		return flightService.airportOperation.GetAirportById(req.DepartureAirportId)
	})
	if res != nil {
		return res
	}
	arrival, res := CallDBFuncAndCheckError[operation.Airport, operation.Flight](flightService.logger, func() (*operation.Airport, error) {
		return flightService.airportOperation.GetAirportById(req.ArrivalAirportId)
	})
	if res != nil {
		return res
	}

	departureTime := req.DepartureTime.UTC()
	for attempt := 1; attempt <= flightService.config.FlightNumberAttempts; attempt++ {
		flight := flightService.flightOperation.NewFlight(departure, arrival, flightService.generator.Next(), departureTime, departureTime.Add(duration))
		err := flightService.flightOperation.AddFlight(flight)
		if errors.Is(err, operation.ErrFlightNumberTaken) {
			flightService.logger.DebugF("Flight number %s already in use, retrying (attempt %d)", flight.FlightNumber, attempt)
			continue
		}
		if res := CallDBFunc[operation.Flight](flightService.logger, func() error { return err }); res != nil {
			return res
		}
		flightService.logger.InfoF("Flight %s scheduled from %s to %s departing %s", flight.FlightNumber,
			departure.IataCode, arrival.IataCode, formatTime(flight.DepartureTime))
		flightService.audit.record(operation.FlightScheduled, flight.ID, flight.FlightNumber, "",
			fmt.Sprintf("%s-%s %s", departure.IataCode, arrival.IataCode, formatTime(flight.DepartureTime)))
		return NewResult(&SuccessScheduleFlight, flight)
	}
	flightService.logger.WarnF("No free flight number after %d attempts", flightService.config.FlightNumberAttempts)
	return NewResult[operation.Flight](&ErrFlightNumberExhausted, nil)
}

var (
	ErrFlightCancelled      = Status{StatusName: "FLIGHT_CANCELLED", Description: "Flight has been cancelled and cannot be changed", Kind: Invalid}
	ErrFlightDeparted       = Status{StatusName: "FLIGHT_DEPARTED", Description: "Flight has already departed and cannot be changed", Kind: Invalid}
	ErrPilotUnavailable     = Status{StatusName: "PILOT_UNAVAILABLE", Description: "Pilot is already assigned to an overlapping flight", Kind: Conflict}
	SuccessRescheduleFlight = Status{StatusName: "RESCHEDULE_FLIGHT", Description: "Flight rescheduled", Kind: Success}
)

// loadModifiableFlight 读取航班并确认其未取消且尚未起飞
func (flightService *FlightService) loadModifiableFlight(flightId uint, now time.Time) (*operation.Flight, *Status) {
	flight, err := flightService.flightOperation.GetFlightById(flightId)
	if err != nil {
		if errors.Is(err, operation.ErrFlightNotFound) {
			return nil, &ErrFlightNotFound
		}
		flightService.logger.ErrorF("Error in DB function: %v", err)
		return nil, &ErrDatabaseFail
	}
	switch schedule.ResolveStatus(flight, now) {
	case operation.Cancelled:
		return flight, &ErrFlightCancelled
	case operation.Departed:
		return flight, &ErrFlightDeparted
	}
	return flight, nil
}

func conflictMessage(pilot string, conflicts []*operation.Flight) string {
	numbers := utils.Map(conflicts, func(flight *operation.Flight) string { return flight.FlightNumber })
	return fmt.Sprintf("%s is already assigned to overlapping flight(s) %s", pilot, strings.Join(numbers, ", "))
}

func (flightService *FlightService) RescheduleFlight(req *RequestRescheduleFlight) *Result[operation.Flight] {
	if req.FlightId == 0 {
		return NewResult[operation.Flight](&ErrIllegalParam, nil)
	}
	now := flightService.status.beforeRead()
	flight, status := flightService.loadModifiableFlight(req.FlightId, now)
	if status != nil {
		return NewResult[operation.Flight](status, nil)
	}
	if !req.DepartureTime.After(now) {
		return NewResult[operation.Flight](&ErrDepartureInPast, nil)
	}

	departure := req.DepartureTime.UTC()
	arrival := departure.Add(flight.Duration())
	if flight.PilotId != nil {
		conflicts, err := flightService.checker.Conflicts(*flight.PilotId, schedule.Window{Departure: departure, Arrival: arrival}, flight.ID)
		if err != nil {
			flightService.logger.ErrorF("Error in DB function: %v", err)
			return NewResult[operation.Flight](&ErrDatabaseFail, nil)
		}
		if len(conflicts) > 0 {
			pilot := "Assigned pilot"
			if flight.Pilot != nil {
				pilot = flight.Pilot.FullName()
			}
			return NewResultF[operation.Flight](&ErrPilotUnavailable, conflictMessage(pilot, conflicts))
		}
	}

	oldDeparture := flight.DepartureTime
	if res := CallDBFunc[operation.Flight](flightService.logger, func() error {
		return flightService.flightOperation.UpdateFlightWindow(flight, departure, arrival)
	}); res != nil {
		return res
	}
	flightService.logger.InfoF("Flight %s rescheduled to %s", flight.FlightNumber, formatTime(departure))
	flightService.audit.record(operation.FlightRescheduled, flight.ID, flight.FlightNumber, formatTime(oldDeparture), formatTime(departure))
	return NewResult(&SuccessRescheduleFlight, flight)
}

var (
	ErrFlightAlreadyCancelled = Status{StatusName: "FLIGHT_ALREADY_CANCELLED", Description: "Flight is already cancelled", Kind: Invalid}
	SuccessCancelFlight       = Status{StatusName: "CANCEL_FLIGHT", Description: "Flight cancelled", Kind: Success}
)

func (flightService *FlightService) CancelFlight(req *RequestCancelFlight) *Result[operation.Flight] {
	if req.FlightId == 0 {
		return NewResult[operation.Flight](&ErrIllegalParam, nil)
	}
	now := flightService.status.beforeRead()
	flight, status := flightService.loadModifiableFlight(req.FlightId, now)
	if status == &ErrFlightCancelled {
		return NewResult[operation.Flight](&ErrFlightAlreadyCancelled, nil)
	}
	if status != nil {
		return NewResult[operation.Flight](status, nil)
	}
	oldStatus := flight.Status
	if res := CallDBFunc[operation.Flight](flightService.logger, func() error {
		return flightService.flightOperation.UpdateFlightStatus(flight, operation.Cancelled)
	}); res != nil {
		return res
	}
	flightService.logger.InfoF("Flight %s cancelled", flight.FlightNumber)
	flightService.audit.record(operation.FlightCancelled, flight.ID, flight.FlightNumber, oldStatus.String(), operation.Cancelled.String())
	return NewResult(&SuccessCancelFlight, flight)
}

var (
	ErrPilotAlreadyAssigned = Status{StatusName: "PILOT_ALREADY_ASSIGNED", Description: "This pilot is already assigned to the flight", Kind: Invalid}
	ConfirmOverwritePilot   = Status{StatusName: "CONFIRM_OVERWRITE_PILOT", Description: "Flight already has a pilot, confirm to replace", Kind: ConfirmRequired}
	SuccessAssignPilot      = Status{StatusName: "ASSIGN_PILOT", Description: "Pilot assigned", Kind: Success}
)

func (flightService *FlightService) AssignPilot(req *RequestAssignPilot) *Result[operation.Flight] {
	if req.FlightId == 0 || req.PilotId == 0 {
		return NewResult[operation.Flight](&ErrIllegalParam, nil)
	}
	now := flightService.status.beforeRead()
	flight, status := flightService.loadModifiableFlight(req.FlightId, now)
	if status != nil {
		return NewResult[operation.Flight](status, nil)
	}
	if flight.PilotId != nil && *flight.PilotId == req.PilotId {
		return NewResult[operation.Flight](&ErrPilotAlreadyAssigned, nil)
	}
	if flight.PilotId != nil && !req.Overwrite {
		result := NewResult(&ConfirmOverwritePilot, flight)
		if flight.Pilot != nil {
			result.Message = fmt.Sprintf("Flight %s is currently flown by %s, replace the pilot?", flight.FlightNumber, flight.Pilot.FullName())
		}
		return result
	}
	pilot, res := CallDBFuncAndCheckError[operation.Pilot, operation.Flight](flightService.logger, func() (*operation.Pilot, error) {
		return flightService.pilotOperation.GetPilotById(req.PilotId)
	})
	if res != nil {
		return res
	}
	conflicts, err := flightService.checker.Conflicts(pilot.ID, schedule.WindowOf(flight), flight.ID)
	if err != nil {
		flightService.logger.ErrorF("Error in DB function: %v", err)
		return NewResult[operation.Flight](&ErrDatabaseFail, nil)
	}
	if len(conflicts) > 0 {
		return NewResultF[operation.Flight](&ErrPilotUnavailable, conflictMessage(pilot.FullName(), conflicts))
	}

	oldPilot := ""
	if flight.Pilot != nil {
		oldPilot = flight.Pilot.FullName()
	}
	if res := CallDBFunc[operation.Flight](flightService.logger, func() error {
		return flightService.flightOperation.UpdateFlightPilot(flight, pilot)
	}); res != nil {
		return res
	}
	flightService.logger.InfoF("Pilot %s(%s) assigned to flight %s", pilot.FullName(), pilot.LicenseNumber, flight.FlightNumber)
	flightService.audit.record(operation.FlightPilotChanged, flight.ID, flight.FlightNumber, oldPilot, pilot.FullName())
	return NewResult(&SuccessAssignPilot, flight)
}

var (
	ErrSameArrival           = Status{StatusName: "SAME_ARRIVAL", Description: "Flight already arrives at this airport", Kind: Invalid}
	SuccessChangeDestination = Status{StatusName: "CHANGE_DESTINATION", Description: "Flight destination changed", Kind: Success}
)

func (flightService *FlightService) ChangeDestination(req *RequestChangeDestination) *Result[operation.Flight] {
	if req.FlightId == 0 || req.ArrivalAirportId == 0 {
		return NewResult[operation.Flight](&ErrIllegalParam, nil)
	}
	now := flightService.status.beforeRead()
	flight, status := flightService.loadModifiableFlight(req.FlightId, now)
	if status != nil {
		return NewResult[operation.Flight](status, nil)
	}
	if req.ArrivalAirportId == flight.DepartureAirportId {
		return NewResult[operation.Flight](&ErrInvalidRoute, nil)
	}
	if req.ArrivalAirportId == flight.ArrivalAirportId {
		return NewResult[operation.Flight](&ErrSameArrival, nil)
	}
	airport, res := CallDBFuncAndCheckError[operation.Airport, operation.Flight](flightService.logger, func() (*operation.Airport, error) {
		return flightService.airportOperation.GetAirportById(req.ArrivalAirportId)
	})
	if res != nil {
		return res
	}
	oldArrival := ""
	if flight.ArrivalAirport != nil {
		oldArrival = flight.ArrivalAirport.IataCode
	}
	if res := CallDBFunc[operation.Flight](flightService.logger, func() error {
		return flightService.flightOperation.UpdateFlightArrivalAirport(flight, airport)
	}); res != nil {
		return res
	}
	flightService.logger.InfoF("Flight %s now arrives at %s", flight.FlightNumber, airport.IataCode)
	flightService.audit.record(operation.FlightRouteChanged, flight.ID, flight.FlightNumber, oldArrival, airport.IataCode)
	return NewResult(&SuccessChangeDestination, flight)
}

var SuccessGetFlight = Status{StatusName: "GET_FLIGHT", Description: "Flight loaded", Kind: Success}

func (flightService *FlightService) GetFlight(req *RequestFlight) *Result[operation.Flight] {
	if req.FlightId == 0 {
		return NewResult[operation.Flight](&ErrIllegalParam, nil)
	}
	flightService.status.beforeRead()
	flight, res := CallDBFuncAndCheckError[operation.Flight, operation.Flight](flightService.logger, func() (*operation.Flight, error) {
		return flightService.flightOperation.GetFlightById(req.FlightId)
	})
	if res != nil {
		return res
	}
	return NewResult(&SuccessGetFlight, flight)
}

var SuccessGetFlights = Status{StatusName: "GET_FLIGHTS", Description: "Flights loaded", Kind: Success}

// flightFilter 将预设视图转换为查询条件
func flightFilter(req *RequestFlightList, now time.Time) (*operation.FlightFilter, *Status) {
	switch req.View {
	case ViewAllFlights:
		return &operation.FlightFilter{}, nil
	case ViewUpcoming:
		return &operation.FlightFilter{DepartingAfter: &now, ExcludeStatus: operation.Cancelled}, nil
	case ViewCancelled:
		return &operation.FlightFilter{Status: operation.Cancelled}, nil
	case ViewByPilot:
		if req.PilotId == 0 {
			return nil, &ErrIllegalParam
		}
		return &operation.FlightFilter{PilotId: req.PilotId}, nil
	case ViewToDestination:
		location, status := locationValidator.CheckString(req.Location)
		if status != nil {
			return nil, status
		}
		return &operation.FlightFilter{Destination: location}, nil
	case ViewByDuration:
		return &operation.FlightFilter{OrderByDuration: true}, nil
	case ViewOnDay:
		if req.Day.IsZero() {
			return nil, &ErrIllegalParam
		}
		day := req.Day
		return &operation.FlightFilter{DepartureDay: &day}, nil
	default:
		return nil, &ErrIllegalParam
	}
}

func (flightService *FlightService) GetFlights(req *RequestFlightList) *Result[ResponseFlightList] {
	now := flightService.status.beforeRead()
	filter, status := flightFilter(req, now)
	if status != nil {
		return NewResult[ResponseFlightList](status, nil)
	}
	if req.View == ViewByPilot {
		if _, res := CallDBFuncAndCheckError[operation.Pilot, ResponseFlightList](flightService.logger, func() (*operation.Pilot, error) {
			return flightService.pilotOperation.GetPilotById(req.PilotId)
		}); res != nil {
			return res
		}
	}
	flights, err := flightService.flightOperation.GetFlights(filter)
	if err != nil {
		flightService.logger.ErrorF("Error in DB function: %v", err)
		return NewResult[ResponseFlightList](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessGetFlights, &ResponseFlightList{Items: flights, Now: now})
}

var SuccessGetEligiblePilots = Status{StatusName: "GET_ELIGIBLE_PILOTS", Description: "Available pilots loaded", Kind: Success}

func (flightService *FlightService) GetEligiblePilots(req *RequestFlight) *Result[ResponsePilotList] {
	if req.FlightId == 0 {
		return NewResult[ResponsePilotList](&ErrIllegalParam, nil)
	}
	now := flightService.status.beforeRead()
	flight, status := flightService.loadModifiableFlight(req.FlightId, now)
	if status != nil {
		return NewResult[ResponsePilotList](status, nil)
	}
	pilots, err := flightService.checker.AvailablePilots(schedule.WindowOf(flight), 0)
	if err != nil {
		flightService.logger.ErrorF("Error in DB function: %v", err)
		return NewResult[ResponsePilotList](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessGetEligiblePilots, &ResponsePilotList{Items: pilots})
}

var SuccessGetArrivalCandidates = Status{StatusName: "GET_ARRIVAL_CANDIDATES", Description: "Arrival airports loaded", Kind: Success}

func (flightService *FlightService) GetArrivalCandidates(req *RequestArrivalCandidates) *Result[ResponseAirportList] {
	if req.DepartureAirportId == 0 {
		return NewResult[ResponseAirportList](&ErrIllegalParam, nil)
	}
	airports, err := flightService.airportOperation.GetAirports(req.DepartureAirportId)
	if err != nil {
		flightService.logger.ErrorF("Error in DB function: %v", err)
		return NewResult[ResponseAirportList](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessGetArrivalCandidates, &ResponseAirportList{Items: airports})
}

var SuccessReconcile = Status{StatusName: "RECONCILE_STATUSES", Description: "Flight statuses updated", Kind: Success}

func (flightService *FlightService) ReconcileStatuses() *Result[ResponseReconcile] {
	departed, scheduled, err := flightService.status.resolver.Reconcile(flightService.status.now())
	if err != nil {
		return NewResult[ResponseReconcile](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessReconcile, &ResponseReconcile{Departed: departed, Scheduled: scheduled})
}
