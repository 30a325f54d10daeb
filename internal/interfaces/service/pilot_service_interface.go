// Package service
package service

import "github.com/half-nothing/simple-fms/internal/interfaces/operation"

type PilotServiceInterface interface {
	AddPilot(req *RequestAddPilot) *Result[operation.Pilot]
	UpdatePilotName(req *RequestUpdatePilotName) *Result[operation.Pilot]
	UpdatePilotLicense(req *RequestUpdatePilotLicense) *Result[operation.Pilot]
	DeletePilot(req *RequestPilot) *Result[ResponseDeletePilot]
	GetPilot(req *RequestPilot) *Result[operation.Pilot]
	GetPilots() *Result[ResponsePilotList]
	GetPilotSchedule(req *RequestPilot) *Result[ResponseFlightList]
	GetAssignedFlights() *Result[ResponseFlightList]
	CountPilotsFlownTo(req *RequestPilotsFlownTo) *Result[ResponsePilotsFlownTo]
}

type RequestAddPilot struct {
	FirstName     string
	LastName      string
	LicenseNumber string
}

type RequestUpdatePilotName struct {
	PilotId   uint
	FirstName string
	LastName  string
}

type RequestUpdatePilotLicense struct {
	PilotId       uint
	LicenseNumber string
}

type RequestPilot struct {
	PilotId uint
}

type ResponseDeletePilot struct {
	Pilot *operation.Pilot
	// ReleasedFlights 被解除分配的航班数
	ReleasedFlights int64
}

type ResponsePilotList struct {
	Items []*operation.Pilot
}

type RequestPilotsFlownTo struct {
	Location string
}

type ResponsePilotsFlownTo struct {
	Location string
	Total    int64
}
