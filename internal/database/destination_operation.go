// Package database
package database

import (
	"context"
	"errors"
	. "github.com/half-nothing/simple-fms/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type DestinationOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewDestinationOperation(db *gorm.DB, queryTimeout time.Duration) *DestinationOperation {
	return &DestinationOperation{db: db, queryTimeout: queryTimeout}
}

func (destinationOperation *DestinationOperation) NewDestination(city, country string) (destination *Destination) {
	return &Destination{City: city, Country: country}
}

func (destinationOperation *DestinationOperation) AddDestination(destination *Destination) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), destinationOperation.queryTimeout)
	defer cancel()
	err = destinationOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(destination).Error
	})
	return mapConstraintError(err, map[constraintKind]error{uniqueViolation: ErrDestinationExists})
}

func (destinationOperation *DestinationOperation) GetDestinationById(id uint) (destination *Destination, err error) {
	destination = &Destination{}
	ctx, cancel := context.WithTimeout(context.Background(), destinationOperation.queryTimeout)
	defer cancel()
	err = destinationOperation.db.WithContext(ctx).Where("destination_id = ?", id).First(destination).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrDestinationNotFound
	}
	return
}

func (destinationOperation *DestinationOperation) GetDestinationByCityAndCountry(city, country string) (destination *Destination, err error) {
	destination = &Destination{}
	ctx, cancel := context.WithTimeout(context.Background(), destinationOperation.queryTimeout)
	defer cancel()
	err = destinationOperation.db.WithContext(ctx).
		Where("city = ? AND country = ?", city, country).
		First(destination).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrDestinationNotFound
	}
	return
}

func (destinationOperation *DestinationOperation) GetDestinations() (destinations []*Destination, err error) {
	destinations = make([]*Destination, 0)
	ctx, cancel := context.WithTimeout(context.Background(), destinationOperation.queryTimeout)
	defer cancel()
	err = destinationOperation.db.WithContext(ctx).Order("country, city").Find(&destinations).Error
	return
}

func (destinationOperation *DestinationOperation) DeleteDestination(destination *Destination) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), destinationOperation.queryTimeout)
	defer cancel()
	err = destinationOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var airports int64
		if err := tx.Model(&Airport{}).Where("destination_id = ?", destination.ID).Count(&airports).Error; err != nil {
			return err
		}
		if airports > 0 {
			return ErrDestinationInUse
		}
		result := tx.Delete(destination)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrDestinationNotFound
		}
		return nil
	})
	return mapConstraintError(err, map[constraintKind]error{foreignKeyViolation: ErrDestinationInUse})
}

func (destinationOperation *DestinationOperation) GetFlightCountPerDestination() (counts []*DestinationFlightCount, err error) {
	counts = make([]*DestinationFlightCount, 0)
	ctx, cancel := context.WithTimeout(context.Background(), destinationOperation.queryTimeout)
	defer cancel()
	err = destinationOperation.db.WithContext(ctx).
		Table("destinations AS d").
		Select("d.destination_id, d.city, d.country, COUNT(f.flight_id) AS flight_count").
		Joins("LEFT JOIN airports AS a ON a.destination_id = d.destination_id").
		Joins("LEFT JOIN flights AS f ON f.arrival_airport_id = a.airport_id AND f.status <> ?", Cancelled).
		Group("d.destination_id, d.city, d.country").
		Order("flight_count DESC, d.country, d.city").
		Scan(&counts).Error
	return
}
