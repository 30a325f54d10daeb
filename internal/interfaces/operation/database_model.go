package operation

import (
	"time"
)

type FlightStatus string

const (
	Scheduled FlightStatus = "scheduled"
	Cancelled FlightStatus = "cancelled"
	Departed  FlightStatus = "departed"
	// Arrived 与 Delayed 为保留状态, 目前不会被设置
	Arrived FlightStatus = "arrived"
	Delayed FlightStatus = "delayed"
)

func (status FlightStatus) String() string { return string(status) }

type Destination struct {
	ID      uint   `gorm:"column:destination_id;primarykey" json:"destination_id"`
	City    string `gorm:"column:city;size:50;not null;uniqueIndex:idx_destinations_city_country" json:"city"`
	Country string `gorm:"column:country;size:50;not null;uniqueIndex:idx_destinations_city_country" json:"country"`
}

func (Destination) TableName() string { return "destinations" }

type Airport struct {
	ID            uint         `gorm:"column:airport_id;primarykey" json:"airport_id"`
	Name          string       `gorm:"column:airport_name;size:100;not null" json:"airport_name"`
	IataCode      string       `gorm:"column:iata_code;size:10;not null;uniqueIndex" json:"iata_code"`
	DestinationId uint         `gorm:"column:destination_id;not null;index" json:"destination_id"`
	Destination   *Destination `gorm:"foreignKey:DestinationId;references:ID" json:"destination,omitempty"`
}

func (Airport) TableName() string { return "airports" }

type Pilot struct {
	ID            uint   `gorm:"column:pilot_id;primarykey" json:"pilot_id"`
	FirstName     string `gorm:"column:first_name;size:30;not null" json:"first_name"`
	LastName      string `gorm:"column:last_name;size:30;not null" json:"last_name"`
	LicenseNumber string `gorm:"column:license_number;size:20;not null;uniqueIndex" json:"license_number"`
}

func (Pilot) TableName() string { return "pilots" }

func (pilot *Pilot) FullName() string { return pilot.FirstName + " " + pilot.LastName }

type Flight struct {
	ID                 uint         `gorm:"column:flight_id;primarykey" json:"flight_id"`
	FlightNumber       string       `gorm:"column:flight_number;size:50;not null;uniqueIndex" json:"flight_number"`
	DepartureAirportId uint         `gorm:"column:departure_airport_id;not null;index" json:"departure_airport_id"`
	ArrivalAirportId   uint         `gorm:"column:arrival_airport_id;not null;index;check:chk_flights_route,arrival_airport_id <> departure_airport_id" json:"arrival_airport_id"`
	PilotId            *uint        `gorm:"column:pilot_id;index" json:"pilot_id"`
	DepartureTime      time.Time    `gorm:"column:departure_time;not null;index" json:"departure_time"`
	ArrivalTime        time.Time    `gorm:"column:arrival_time;not null;check:chk_flights_window,arrival_time > departure_time" json:"arrival_time"`
	Status             FlightStatus `gorm:"column:status;size:10;not null;check:chk_flights_status,status IN ('scheduled','cancelled','departed','arrived','delayed')" json:"status"`
	DepartureAirport   *Airport     `gorm:"foreignKey:DepartureAirportId;references:ID" json:"departure_airport,omitempty"`
	ArrivalAirport     *Airport     `gorm:"foreignKey:ArrivalAirportId;references:ID" json:"arrival_airport,omitempty"`
	Pilot              *Pilot       `gorm:"foreignKey:PilotId;references:ID" json:"pilot,omitempty"`
}

func (Flight) TableName() string { return "flights" }

// Duration 航班计划飞行时间
func (flight *Flight) Duration() time.Duration { return flight.ArrivalTime.Sub(flight.DepartureTime) }

type AuditLog struct {
	ID            uint          `gorm:"column:audit_log_id;primarykey" json:"id"`
	EventType     string        `gorm:"column:event_type;size:64;not null;index" json:"event_type"`
	Subject       uint          `gorm:"column:subject;not null;index" json:"subject"`
	Object        string        `gorm:"column:object;size:128;not null" json:"object"`
	ChangeDetails *ChangeDetail `gorm:"column:details;type:text;serializer:json" json:"change_details"`
	CreatedAt     time.Time     `gorm:"column:created_at" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }

type ChangeDetail struct {
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

// AllModels 需要迁移的全部模型, 顺序即外键依赖顺序
func AllModels() []interface{} {
	return []interface{}{&Destination{}, &Airport{}, &Pilot{}, &Flight{}, &AuditLog{}}
}
