// Package service
package service

import (
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
	"time"
)

type FlightServiceInterface interface {
	ScheduleFlight(req *RequestScheduleFlight) *Result[operation.Flight]
	RescheduleFlight(req *RequestRescheduleFlight) *Result[operation.Flight]
	CancelFlight(req *RequestCancelFlight) *Result[operation.Flight]
	AssignPilot(req *RequestAssignPilot) *Result[operation.Flight]
	ChangeDestination(req *RequestChangeDestination) *Result[operation.Flight]
	GetFlight(req *RequestFlight) *Result[operation.Flight]
	GetFlights(req *RequestFlightList) *Result[ResponseFlightList]
	GetEligiblePilots(req *RequestFlight) *Result[ResponsePilotList]
	GetArrivalCandidates(req *RequestArrivalCandidates) *Result[ResponseAirportList]
	ReconcileStatuses() *Result[ResponseReconcile]
}

type RequestScheduleFlight struct {
	DepartureAirportId uint
	ArrivalAirportId   uint
	DepartureTime      time.Time
	Hours              int
	Minutes            int
}

type RequestRescheduleFlight struct {
	FlightId      uint
	DepartureTime time.Time
}

type RequestCancelFlight struct {
	FlightId uint
}

type RequestAssignPilot struct {
	FlightId uint
	PilotId  uint
	// Overwrite 为false且航班已有飞行员时返回 ConfirmRequired
	Overwrite bool
}

type RequestChangeDestination struct {
	FlightId         uint
	ArrivalAirportId uint
}

type RequestFlight struct {
	FlightId uint
}

// FlightView 航班列表的预设视图
type FlightView int

const (
	ViewAllFlights FlightView = iota
	ViewUpcoming
	ViewCancelled
	ViewByPilot
	ViewToDestination
	ViewByDuration
	ViewOnDay
)

type RequestFlightList struct {
	View     FlightView
	PilotId  uint
	Location string
	Day      time.Time
}

type ResponseFlightList struct {
	Items []*operation.Flight
	// Now 查询时刻, 用于显示航班的实时状态
	Now time.Time
}

type RequestArrivalCandidates struct {
	DepartureAirportId uint
}

type ResponseReconcile struct {
	Departed  int64
	Scheduled int64
}
