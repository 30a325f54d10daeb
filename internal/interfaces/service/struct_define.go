// Package service
package service

import (
	"errors"
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
)

// StatusKind 操作结果分类, 控制台据此选择提示颜色与后续流程
type StatusKind int

const (
	Unsatisfied StatusKind = iota
	Success
	Invalid
	NotFound
	Conflict
	Aborted
	ConfirmRequired
	InternalError
)

func (kind StatusKind) String() string {
	switch kind {
	case Success:
		return "success"
	case Invalid:
		return "invalid"
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	case Aborted:
		return "aborted"
	case ConfirmRequired:
		return "confirmation required"
	case InternalError:
		return "internal error"
	default:
		return "unsatisfied"
	}
}

type Status struct {
	StatusName  string
	Description string
	Kind        StatusKind
}

type Result[T any] struct {
	Kind    StatusKind
	Code    string
	Message string
	Data    *T
}

func NewResult[T any](status *Status, data *T) *Result[T] {
	return &Result[T]{
		Kind:    status.Kind,
		Code:    status.StatusName,
		Message: status.Description,
		Data:    data,
	}
}

// NewResultF 使用自定义提示信息构造结果
func NewResultF[T any](status *Status, message string) *Result[T] {
	result := NewResult[T](status, nil)
	result.Message = message
	return result
}

func (result *Result[T]) Ok() bool { return result.Kind == Success }

var (
	ErrIllegalParam        = Status{"PARAM_ERROR", "Invalid input", Invalid}
	ErrDatabaseFail        = Status{"DATABASE_ERROR", "A database error occurred, the operation was not completed", InternalError}
	ErrDestinationNotFound = Status{"DESTINATION_NOT_FOUND", "Destination does not exist", NotFound}
	ErrDestinationExists   = Status{"DESTINATION_EXISTS", "A destination with this city and country already exists", Conflict}
	ErrDestinationInUse    = Status{"DESTINATION_IN_USE", "Destination still has airports and cannot be deleted", Conflict}
	ErrAirportNotFound     = Status{"AIRPORT_NOT_FOUND", "Airport does not exist", NotFound}
	ErrIataCodeTaken       = Status{"IATA_CODE_TAKEN", "An airport with this IATA code already exists", Conflict}
	ErrAirportInUse        = Status{"AIRPORT_IN_USE", "Airport is used by flights and cannot be deleted", Conflict}
	ErrPilotNotFound       = Status{"PILOT_NOT_FOUND", "Pilot does not exist", NotFound}
	ErrLicenseTaken        = Status{"LICENSE_TAKEN", "A pilot with this license number already exists", Conflict}
	ErrFlightNotFound      = Status{"FLIGHT_NOT_FOUND", "Flight does not exist", NotFound}
	ErrFlightNumberTaken   = Status{"FLIGHT_NUMBER_TAKEN", "Flight number is already in use", Conflict}
	ErrInvalidRoute        = Status{"INVALID_ROUTE", "Arrival airport must differ from the departure airport", Invalid}
	ErrInvalidWindow       = Status{"INVALID_FLIGHT_WINDOW", "Arrival time must be after the departure time", Invalid}
	ErrInvalidReference    = Status{"INVALID_REFERENCE", "Referenced airport or pilot does not exist", NotFound}
	ErrOperationAborted    = Status{"ABORTED", "Operation cancelled, nothing was changed", Aborted}
)

// CallDBFuncAndCheckError 调用数据库操作函数并处理错误
func CallDBFuncAndCheckError[R any, T any](logger log.LoggerInterface, fc func() (*R, error)) (*R, *Result[T]) {
	result, err := fc()
	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, operation.ErrDestinationNotFound):
		return nil, NewResult[T](&ErrDestinationNotFound, nil)
	case errors.Is(err, operation.ErrDestinationExists):
		return nil, NewResult[T](&ErrDestinationExists, nil)
	case errors.Is(err, operation.ErrDestinationInUse):
		return nil, NewResult[T](&ErrDestinationInUse, nil)
	case errors.Is(err, operation.ErrAirportNotFound):
		return nil, NewResult[T](&ErrAirportNotFound, nil)
	case errors.Is(err, operation.ErrIataCodeTaken):
		return nil, NewResult[T](&ErrIataCodeTaken, nil)
	case errors.Is(err, operation.ErrAirportInUse):
		return nil, NewResult[T](&ErrAirportInUse, nil)
	case errors.Is(err, operation.ErrPilotNotFound):
		return nil, NewResult[T](&ErrPilotNotFound, nil)
	case errors.Is(err, operation.ErrLicenseTaken):
		return nil, NewResult[T](&ErrLicenseTaken, nil)
	case errors.Is(err, operation.ErrFlightNotFound):
		return nil, NewResult[T](&ErrFlightNotFound, nil)
	case errors.Is(err, operation.ErrFlightNumberTaken):
		return nil, NewResult[T](&ErrFlightNumberTaken, nil)
	case errors.Is(err, operation.ErrInvalidRoute):
		return nil, NewResult[T](&ErrInvalidRoute, nil)
	case errors.Is(err, operation.ErrInvalidFlightWindow):
		return nil, NewResult[T](&ErrInvalidWindow, nil)
	case errors.Is(err, operation.ErrInvalidReference):
		return nil, NewResult[T](&ErrInvalidReference, nil)
	default:
		logger.ErrorF("Error in DB function: %v", err)
		return nil, NewResult[T](&ErrDatabaseFail, nil)
	}
}

// CallDBFunc 用于只返回错误的数据库操作
func CallDBFunc[T any](logger log.LoggerInterface, fc func() error) *Result[T] {
	_, res := CallDBFuncAndCheckError[struct{}, T](logger, func() (*struct{}, error) { return nil, fc() })
	return res
}
