// Package database
package database

import (
	"context"
	"errors"
	sq "github.com/Masterminds/squirrel"
	. "github.com/half-nothing/simple-fms/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type PilotOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewPilotOperation(db *gorm.DB, queryTimeout time.Duration) *PilotOperation {
	return &PilotOperation{db: db, queryTimeout: queryTimeout}
}

func (pilotOperation *PilotOperation) NewPilot(firstName, lastName, licenseNumber string) (pilot *Pilot) {
	return &Pilot{FirstName: firstName, LastName: lastName, LicenseNumber: licenseNumber}
}

func (pilotOperation *PilotOperation) AddPilot(pilot *Pilot) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(pilot).Error
	})
	return mapConstraintError(err, map[constraintKind]error{uniqueViolation: ErrLicenseTaken})
}

func (pilotOperation *PilotOperation) GetPilotById(id uint) (pilot *Pilot, err error) {
	pilot = &Pilot{}
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).Where("pilot_id = ?", id).First(pilot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrPilotNotFound
	}
	return
}

func (pilotOperation *PilotOperation) GetPilots() (pilots []*Pilot, err error) {
	pilots = make([]*Pilot, 0)
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).Order("last_name, first_name, pilot_id").Find(&pilots).Error
	return
}

func (pilotOperation *PilotOperation) UpdatePilotName(pilot *Pilot, firstName, lastName string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).Model(&Pilot{}).Where("pilot_id = ?", pilot.ID).
		Updates(map[string]interface{}{"first_name": firstName, "last_name": lastName}).Error
	if err == nil {
		pilot.FirstName = firstName
		pilot.LastName = lastName
	}
	return
}

func (pilotOperation *PilotOperation) UpdatePilotLicense(pilot *Pilot, licenseNumber string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&Pilot{}).Where("pilot_id = ?", pilot.ID).Update("license_number", licenseNumber).Error
	})
	if err = mapConstraintError(err, map[constraintKind]error{uniqueViolation: ErrLicenseTaken}); err == nil {
		pilot.LicenseNumber = licenseNumber
	}
	return
}

func (pilotOperation *PilotOperation) DeletePilot(pilot *Pilot) (released int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Flight{}).Where("pilot_id = ?", pilot.ID).Update("pilot_id", nil)
		if result.Error != nil {
			return result.Error
		}
		released = result.RowsAffected
		result = tx.Delete(pilot)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPilotNotFound
		}
		return nil
	})
	if err != nil {
		released = 0
	}
	return
}

func (pilotOperation *PilotOperation) CountPilotsFlownTo(location string) (total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	where, args, err := sq.And{
		sq.Eq{"flights.status": Departed},
		sq.NotEq{"flights.pilot_id": nil},
		locationMatches(location),
	}.ToSql()
	if err != nil {
		return 0, err
	}
	err = withArrivalDestination(pilotOperation.db.WithContext(ctx).Model(&Flight{})).
		Where(where, args...).
		Distinct("flights.pilot_id").
		Count(&total).Error
	return
}
