// Package service
package service

import "github.com/half-nothing/simple-fms/internal/interfaces/operation"

type DestinationServiceInterface interface {
	AddDestination(req *RequestAddDestination) *Result[operation.Destination]
	GetDestinations() *Result[ResponseDestinationList]
	DeleteDestination(req *RequestDestination) *Result[operation.Destination]
	AddAirport(req *RequestAddAirport) *Result[operation.Airport]
	GetAirports(req *RequestAirportList) *Result[ResponseAirportList]
	DeleteAirport(req *RequestAirport) *Result[operation.Airport]
	GetFlightCountPerDestination() *Result[ResponseDestinationFlightCount]
	GetAirportsByCancelledDepartures() *Result[ResponseAirportFlightCount]
}

type RequestAddDestination struct {
	City    string
	Country string
}

type RequestDestination struct {
	DestinationId uint
}

type ResponseDestinationList struct {
	Items []*operation.Destination
}

type RequestAddAirport struct {
	DestinationId uint
	Name          string
	IataCode      string
}

type RequestAirport struct {
	AirportId uint
}

type RequestAirportList struct {
	// ExcludeAirportId 不为0时从结果中排除该机场
	ExcludeAirportId uint
}

type ResponseAirportList struct {
	Items []*operation.Airport
}

type ResponseDestinationFlightCount struct {
	Items []*operation.DestinationFlightCount
}

type ResponseAirportFlightCount struct {
	Items []*operation.AirportFlightCount
}
