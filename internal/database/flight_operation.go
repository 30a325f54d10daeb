// Package database
package database

import (
	"context"
	"errors"
	. "github.com/half-nothing/simple-fms/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"sort"
	"time"
)

const (
	constraintFlightRoute  = "chk_flights_route"
	constraintFlightWindow = "chk_flights_window"
)

type FlightOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewFlightOperation(db *gorm.DB, queryTimeout time.Duration) *FlightOperation {
	return &FlightOperation{db: db, queryTimeout: queryTimeout}
}

func (flightOperation *FlightOperation) NewFlight(departure, arrival *Airport, flightNumber string, departureTime, arrivalTime time.Time) (flight *Flight) {
	return &Flight{
		FlightNumber:       flightNumber,
		DepartureAirportId: departure.ID,
		ArrivalAirportId:   arrival.ID,
		DepartureTime:      departureTime.UTC(),
		ArrivalTime:        arrivalTime.UTC(),
		Status:             Scheduled,
		DepartureAirport:   departure,
		ArrivalAirport:     arrival,
	}
}

// flightConstraintError 航班写入时的约束冲突转换
func flightConstraintError(err error) error {
	if classifyConstraint(err) == checkViolation {
		if violates(err, constraintFlightRoute) {
			return ErrInvalidRoute
		}
		if violates(err, constraintFlightWindow) {
			return ErrInvalidFlightWindow
		}
	}
	return mapConstraintError(err, map[constraintKind]error{
		uniqueViolation:     ErrFlightNumberTaken,
		foreignKeyViolation: ErrInvalidReference,
	})
}

func (flightOperation *FlightOperation) AddFlight(flight *Flight) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(flight).Error
	})
	if err = flightConstraintError(err); err != nil {
		flight.ID = 0
	}
	return
}

func (flightOperation *FlightOperation) preload(query *gorm.DB) *gorm.DB {
	return query.
		Preload("DepartureAirport.Destination").
		Preload("ArrivalAirport.Destination").
		Preload("Pilot")
}

func (flightOperation *FlightOperation) GetFlightById(id uint) (flight *Flight, err error) {
	flight = &Flight{}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.preload(flightOperation.db.WithContext(ctx)).
		Where("flight_id = ?", id).
		First(flight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrFlightNotFound
	}
	return
}

func (flightOperation *FlightOperation) GetFlights(filter *FlightFilter) (flights []*Flight, err error) {
	flights = make([]*Flight, 0)
	where, args, err := buildFlightCondition(filter)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	query := flightOperation.preload(flightOperation.db.WithContext(ctx)).Model(&Flight{}).Select("flights.*")
	if filter != nil && filter.Destination != "" {
		query = withArrivalDestination(query)
	}
	if where != "" {
		query = query.Where(where, args...)
	}
	if err = query.Order("flights.departure_time, flights.flight_id").Find(&flights).Error; err != nil {
		return
	}
	if filter != nil && filter.OrderByDuration {
		sort.SliceStable(flights, func(i, j int) bool { return flights[i].Duration() > flights[j].Duration() })
	}
	return
}

func (flightOperation *FlightOperation) GetPilotFlights(pilotId uint, includeCancelled bool) (flights []*Flight, err error) {
	filter := &FlightFilter{PilotId: pilotId}
	if !includeCancelled {
		filter.ExcludeStatus = Cancelled
	}
	return flightOperation.GetFlights(filter)
}

func (flightOperation *FlightOperation) GetAssignedFlights(includeCancelled bool) (flights []*Flight, err error) {
	flights = make([]*Flight, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	query := flightOperation.preload(flightOperation.db.WithContext(ctx)).Where("pilot_id IS NOT NULL")
	if !includeCancelled {
		query = query.Where("status <> ?", Cancelled)
	}
	err = query.Order("pilot_id, departure_time").Find(&flights).Error
	return
}

func (flightOperation *FlightOperation) UpdateFlightWindow(flight *Flight, departureTime, arrivalTime time.Time) (err error) {
	departureTime, arrivalTime = departureTime.UTC(), arrivalTime.UTC()
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&Flight{}).Where("flight_id = ?", flight.ID).Updates(map[string]interface{}{
			"departure_time": departureTime,
			"arrival_time":   arrivalTime,
		}).Error
	})
	if err = flightConstraintError(err); err == nil {
		flight.DepartureTime = departureTime
		flight.ArrivalTime = arrivalTime
	}
	return
}

func (flightOperation *FlightOperation) UpdateFlightStatus(flight *Flight, status FlightStatus) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).Model(&Flight{}).Where("flight_id = ?", flight.ID).Update("status", status).Error
	if err = flightConstraintError(err); err == nil {
		flight.Status = status
	}
	return
}

func (flightOperation *FlightOperation) UpdateFlightPilot(flight *Flight, pilot *Pilot) (err error) {
	var pilotId *uint
	if pilot != nil {
		id := pilot.ID
		pilotId = &id
	}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).Model(&Flight{}).Where("flight_id = ?", flight.ID).Update("pilot_id", pilotId).Error
	if err = flightConstraintError(err); err == nil {
		flight.PilotId = pilotId
		flight.Pilot = pilot
	}
	return
}

func (flightOperation *FlightOperation) UpdateFlightArrivalAirport(flight *Flight, airport *Airport) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&Flight{}).Where("flight_id = ?", flight.ID).Update("arrival_airport_id", airport.ID).Error
	})
	if err = flightConstraintError(err); err == nil {
		flight.ArrivalAirportId = airport.ID
		flight.ArrivalAirport = airport
	}
	return
}

func (flightOperation *FlightOperation) ReconcileStatuses(now time.Time) (departed int64, scheduled int64, err error) {
	now = now.UTC()
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Flight{}).
			Where("status NOT IN ? AND departure_time < ?", []FlightStatus{Cancelled, Departed}, now).
			Update("status", Departed)
		if result.Error != nil {
			return result.Error
		}
		departed = result.RowsAffected
		result = tx.Model(&Flight{}).
			Where("status NOT IN ? AND departure_time >= ?", []FlightStatus{Cancelled, Scheduled}, now).
			Update("status", Scheduled)
		if result.Error != nil {
			return result.Error
		}
		scheduled = result.RowsAffected
		return nil
	})
	return
}
