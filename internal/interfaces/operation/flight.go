// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrFlightNotFound 航班不存在
	ErrFlightNotFound = errors.New("flight does not exist")
	// ErrFlightNumberTaken 航班号已被使用
	ErrFlightNumberTaken = errors.New("flight number has been used")
	// ErrInvalidRoute 出发与到达机场相同
	ErrInvalidRoute = errors.New("arrival airport must differ from departure airport")
	// ErrInvalidFlightWindow 到达时间不晚于出发时间
	ErrInvalidFlightWindow = errors.New("arrival time must be after departure time")
	// ErrInvalidReference 引用的机场或飞行员不存在
	ErrInvalidReference = errors.New("referenced airport or pilot does not exist")
)

// FlightFilter 航班查询条件, 零值字段不参与过滤
type FlightFilter struct {
	PilotId         uint
	DepartingAfter  *time.Time
	DepartureDay    *time.Time
	Status          FlightStatus
	ExcludeStatus   FlightStatus
	Destination     string
	OrderByDuration bool
}

// FlightOperationInterface 航班操作接口定义
type FlightOperationInterface interface {
	// NewFlight 创建新航班(只是创建, 没有写入数据库), 状态为 Scheduled
	NewFlight(departure, arrival *Airport, flightNumber string, departureTime, arrivalTime time.Time) (flight *Flight)
	// AddFlight 写入航班, 航班号重复时返回 ErrFlightNumberTaken
	AddFlight(flight *Flight) (err error)
	// GetFlightById 通过主键获取航班(包含机场, 目的地与飞行员), 当err为nil时返回值flight有效
	GetFlightById(id uint) (flight *Flight, err error)
	// GetFlights 按条件查询航班, 默认按出发时间排序
	GetFlights(filter *FlightFilter) (flights []*Flight, err error)
	// GetPilotFlights 获取分配给飞行员的全部航班, includeCancelled为false时排除已取消航班
	GetPilotFlights(pilotId uint, includeCancelled bool) (flights []*Flight, err error)
	// GetAssignedFlights 获取所有已分配飞行员的航班, includeCancelled为false时排除已取消航班
	GetAssignedFlights(includeCancelled bool) (flights []*Flight, err error)
	// UpdateFlightWindow 同时更新出发与到达时间
	UpdateFlightWindow(flight *Flight, departureTime, arrivalTime time.Time) (err error)
	// UpdateFlightStatus 更新航班状态
	UpdateFlightStatus(flight *Flight, status FlightStatus) (err error)
	// UpdateFlightPilot 更新航班飞行员
	UpdateFlightPilot(flight *Flight, pilot *Pilot) (err error)
	// UpdateFlightArrivalAirport 更新航班到达机场
	UpdateFlightArrivalAirport(flight *Flight, airport *Airport) (err error)
	// ReconcileStatuses 将出发时间早于now且未取消的航班标记为已起飞, 其余未取消航班标记为计划中
	ReconcileStatuses(now time.Time) (departed int64, scheduled int64, err error)
}
