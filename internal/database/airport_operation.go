// Package database
package database

import (
	"context"
	"errors"
	. "github.com/half-nothing/simple-fms/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type AirportOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAirportOperation(db *gorm.DB, queryTimeout time.Duration) *AirportOperation {
	return &AirportOperation{db: db, queryTimeout: queryTimeout}
}

func (airportOperation *AirportOperation) NewAirport(destination *Destination, name, iataCode string) (airport *Airport) {
	return &Airport{
		Name:          name,
		IataCode:      iataCode,
		DestinationId: destination.ID,
		Destination:   destination,
	}
}

func (airportOperation *AirportOperation) AddAirport(airport *Airport) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	err = airportOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(airport).Error
	})
	return mapConstraintError(err, map[constraintKind]error{
		uniqueViolation:     ErrIataCodeTaken,
		foreignKeyViolation: ErrDestinationNotFound,
	})
}

func (airportOperation *AirportOperation) GetAirportById(id uint) (airport *Airport, err error) {
	airport = &Airport{}
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	err = airportOperation.db.WithContext(ctx).
		Preload("Destination").
		Where("airport_id = ?", id).
		First(airport).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrAirportNotFound
	}
	return
}

func (airportOperation *AirportOperation) GetAirports(excludeId uint) (airports []*Airport, err error) {
	airports = make([]*Airport, 0)
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	query := airportOperation.db.WithContext(ctx).Preload("Destination")
	if excludeId != 0 {
		query = query.Where("airport_id <> ?", excludeId)
	}
	err = query.Order("iata_code").Find(&airports).Error
	return
}

func (airportOperation *AirportOperation) DeleteAirport(airport *Airport) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	err = airportOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var flights int64
		if err := tx.Model(&Flight{}).
			Where("departure_airport_id = ? OR arrival_airport_id = ?", airport.ID, airport.ID).
			Count(&flights).Error; err != nil {
			return err
		}
		if flights > 0 {
			return ErrAirportInUse
		}
		result := tx.Omit(clause.Associations).Delete(airport)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAirportNotFound
		}
		return nil
	})
	return mapConstraintError(err, map[constraintKind]error{foreignKeyViolation: ErrAirportInUse})
}

func (airportOperation *AirportOperation) GetAirportsByCancelledDepartures() (counts []*AirportFlightCount, err error) {
	counts = make([]*AirportFlightCount, 0)
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	err = airportOperation.db.WithContext(ctx).
		Table("airports AS a").
		Select("a.airport_id, a.airport_name, a.iata_code, COUNT(f.flight_id) AS flight_count").
		Joins("JOIN flights AS f ON f.departure_airport_id = a.airport_id").
		Where("f.status = ?", Cancelled).
		Group("a.airport_id, a.airport_name, a.iata_code").
		Order("flight_count DESC, a.iata_code").
		Scan(&counts).Error
	return
}
