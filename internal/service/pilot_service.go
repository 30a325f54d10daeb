// Package service
package service

import (
	"github.com/half-nothing/simple-fms/internal/interfaces/config"
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
	. "github.com/half-nothing/simple-fms/internal/interfaces/service"
	"github.com/half-nothing/simple-fms/internal/schedule"
	"time"
)

type PilotService struct {
	logger          log.LoggerInterface
	pilotOperation  operation.PilotOperationInterface
	flightOperation operation.FlightOperationInterface
	audit           *auditRecorder
	status          *statusSync
}

func NewPilotService(
	logger log.LoggerInterface,
	config *config.ScheduleConfig,
	operations *operation.DatabaseOperations,
	now func() time.Time,
) *PilotService {
	return &PilotService{
		logger:          logger,
		pilotOperation:  operations.PilotOperation(),
		flightOperation: operations.FlightOperation(),
		audit:           &auditRecorder{logger: logger, auditOperation: operations.AuditLogOperation()},
		status: &statusSync{
			resolver: schedule.NewResolver(operations.FlightOperation(), logger),
			mode:     config.ReconcileMode,
			now:      now,
		},
	}
}

var SuccessAddPilot = Status{StatusName: "ADD_PILOT", Description: "Pilot added", Kind: Success}

func (pilotService *PilotService) AddPilot(req *RequestAddPilot) *Result[operation.Pilot] {
	firstName, status := firstNameValidator.CheckString(req.FirstName)
	if status != nil {
		return NewResult[operation.Pilot](status, nil)
	}
	lastName, status := lastNameValidator.CheckString(req.LastName)
	if status != nil {
		return NewResult[operation.Pilot](status, nil)
	}
	license, status := licenseValidator.CheckString(req.LicenseNumber)
	if status != nil {
		return NewResult[operation.Pilot](status, nil)
	}
	pilot := pilotService.pilotOperation.NewPilot(firstName, lastName, license)
	if res := CallDBFunc[operation.Pilot](pilotService.logger, func() error {
		return pilotService.pilotOperation.AddPilot(pilot)
	}); res != nil {
		return res
	}
	pilotService.logger.InfoF("Pilot %s(%s) added", pilot.FullName(), pilot.LicenseNumber)
	pilotService.audit.record(operation.PilotCreated, pilot.ID, pilot.LicenseNumber, "", pilot.FullName())
	return NewResult(&SuccessAddPilot, pilot)
}

var SuccessUpdatePilot = Status{StatusName: "UPDATE_PILOT", Description: "Pilot updated", Kind: Success}

func (pilotService *PilotService) loadPilot(pilotId uint) (*operation.Pilot, *Result[operation.Pilot]) {
	if pilotId == 0 {
		return nil, NewResult[operation.Pilot](&ErrIllegalParam, nil)
	}
	return CallDBFuncAndCheckError[operation.Pilot, operation.Pilot](pilotService.logger, func() (*operation.Pilot, error) {
		return pilotService.pilotOperation.GetPilotById(pilotId)
	})
}

func (pilotService *PilotService) UpdatePilotName(req *RequestUpdatePilotName) *Result[operation.Pilot] {
	firstName, status := firstNameValidator.CheckString(req.FirstName)
	if status != nil {
		return NewResult[operation.Pilot](status, nil)
	}
	lastName, status := lastNameValidator.CheckString(req.LastName)
	if status != nil {
		return NewResult[operation.Pilot](status, nil)
	}
	pilot, res := pilotService.loadPilot(req.PilotId)
	if res != nil {
		return res
	}
	oldName := pilot.FullName()
	if res := CallDBFunc[operation.Pilot](pilotService.logger, func() error {
		return pilotService.pilotOperation.UpdatePilotName(pilot, firstName, lastName)
	}); res != nil {
		return res
	}
	pilotService.logger.InfoF("Pilot %d renamed from %s to %s", pilot.ID, oldName, pilot.FullName())
	pilotService.audit.record(operation.PilotUpdated, pilot.ID, pilot.LicenseNumber, oldName, pilot.FullName())
	return NewResult(&SuccessUpdatePilot, pilot)
}

func (pilotService *PilotService) UpdatePilotLicense(req *RequestUpdatePilotLicense) *Result[operation.Pilot] {
	license, status := licenseValidator.CheckString(req.LicenseNumber)
	if status != nil {
		return NewResult[operation.Pilot](status, nil)
	}
	pilot, res := pilotService.loadPilot(req.PilotId)
	if res != nil {
		return res
	}
	if pilot.LicenseNumber == license {
		return NewResult(&SuccessUpdatePilot, pilot)
	}
	oldLicense := pilot.LicenseNumber
	if res := CallDBFunc[operation.Pilot](pilotService.logger, func() error {
		return pilotService.pilotOperation.UpdatePilotLicense(pilot, license)
	}); res != nil {
		return res
	}
	pilotService.logger.InfoF("Pilot %s license changed from %s to %s", pilot.FullName(), oldLicense, license)
	pilotService.audit.record(operation.PilotUpdated, pilot.ID, pilot.FullName(), oldLicense, license)
	return NewResult(&SuccessUpdatePilot, pilot)
}

var SuccessDeletePilot = Status{StatusName: "DELETE_PILOT", Description: "Pilot deleted", Kind: Success}

func (pilotService *PilotService) DeletePilot(req *RequestPilot) *Result[ResponseDeletePilot] {
	if req.PilotId == 0 {
		return NewResult[ResponseDeletePilot](&ErrIllegalParam, nil)
	}
	pilot, res := CallDBFuncAndCheckError[operation.Pilot, ResponseDeletePilot](pilotService.logger, func() (*operation.Pilot, error) {
		return pilotService.pilotOperation.GetPilotById(req.PilotId)
	})
	if res != nil {
		return res
	}
	var released int64
	if res := CallDBFunc[ResponseDeletePilot](pilotService.logger, func() (err error) {
		released, err = pilotService.pilotOperation.DeletePilot(pilot)
		return
	}); res != nil {
		return res
	}
	pilotService.logger.InfoF("Pilot %s(%s) deleted, %d flight(s) released", pilot.FullName(), pilot.LicenseNumber, released)
	pilotService.audit.record(operation.PilotDeleted, pilot.ID, pilot.LicenseNumber, pilot.FullName(), "")
	return NewResult(&SuccessDeletePilot, &ResponseDeletePilot{Pilot: pilot, ReleasedFlights: released})
}

var SuccessGetPilot = Status{StatusName: "GET_PILOT", Description: "Pilot loaded", Kind: Success}

func (pilotService *PilotService) GetPilot(req *RequestPilot) *Result[operation.Pilot] {
	pilot, res := pilotService.loadPilot(req.PilotId)
	if res != nil {
		return res
	}
	return NewResult(&SuccessGetPilot, pilot)
}

var SuccessGetPilots = Status{StatusName: "GET_PILOTS", Description: "Pilots loaded", Kind: Success}

func (pilotService *PilotService) GetPilots() *Result[ResponsePilotList] {
	pilots, err := pilotService.pilotOperation.GetPilots()
	if err != nil {
		pilotService.logger.ErrorF("Error in DB function: %v", err)
		return NewResult[ResponsePilotList](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessGetPilots, &ResponsePilotList{Items: pilots})
}

var SuccessGetPilotSchedule = Status{StatusName: "GET_PILOT_SCHEDULE", Description: "Pilot schedule loaded", Kind: Success}

// GetPilotSchedule 飞行员尚未起飞且未取消的航班
func (pilotService *PilotService) GetPilotSchedule(req *RequestPilot) *Result[ResponseFlightList] {
	if req.PilotId == 0 {
		return NewResult[ResponseFlightList](&ErrIllegalParam, nil)
	}
	if _, res := CallDBFuncAndCheckError[operation.Pilot, ResponseFlightList](pilotService.logger, func() (*operation.Pilot, error) {
		return pilotService.pilotOperation.GetPilotById(req.PilotId)
	}); res != nil {
		return res
	}
	now := pilotService.status.beforeRead()
	flights, err := pilotService.flightOperation.GetFlights(&operation.FlightFilter{
		PilotId:        req.PilotId,
		DepartingAfter: &now,
		ExcludeStatus:  operation.Cancelled,
	})
	if err != nil {
		pilotService.logger.ErrorF("Error in DB function: %v", err)
		return NewResult[ResponseFlightList](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessGetPilotSchedule, &ResponseFlightList{Items: flights, Now: now})
}

func (pilotService *PilotService) GetAssignedFlights() *Result[ResponseFlightList] {
	now := pilotService.status.beforeRead()
	flights, err := pilotService.flightOperation.GetAssignedFlights(false)
	if err != nil {
		pilotService.logger.ErrorF("Error in DB function: %v", err)
		return NewResult[ResponseFlightList](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessGetFlights, &ResponseFlightList{Items: flights, Now: now})
}

var SuccessCountPilots = Status{StatusName: "COUNT_PILOTS", Description: "Pilots counted", Kind: Success}

func (pilotService *PilotService) CountPilotsFlownTo(req *RequestPilotsFlownTo) *Result[ResponsePilotsFlownTo] {
	location, status := locationValidator.CheckString(req.Location)
	if status != nil {
		return NewResult[ResponsePilotsFlownTo](status, nil)
	}
	pilotService.status.beforeRead()
	total, err := pilotService.pilotOperation.CountPilotsFlownTo(location)
	if err != nil {
		pilotService.logger.ErrorF("Error in DB function: %v", err)
		return NewResult[ResponsePilotsFlownTo](&ErrDatabaseFail, nil)
	}
	return NewResult(&SuccessCountPilots, &ResponsePilotsFlownTo{Location: location, Total: total})
}
