// Package operation
package operation

import "errors"

var (
	// ErrAirportNotFound 机场不存在
	ErrAirportNotFound = errors.New("airport does not exist")
	// ErrIataCodeTaken IATA代码已被使用
	ErrIataCodeTaken = errors.New("iata code has been used")
	// ErrAirportInUse 机场仍被航班引用
	ErrAirportInUse = errors.New("airport is referenced by flights")
)

type AirportFlightCount struct {
	AirportId uint   `gorm:"column:airport_id"`
	Name      string `gorm:"column:airport_name"`
	IataCode  string `gorm:"column:iata_code"`
	Flights   int64  `gorm:"column:flight_count"`
}

// AirportOperationInterface 机场操作接口定义
type AirportOperationInterface interface {
	// NewAirport 创建新机场(只是创建, 没有写入数据库)
	NewAirport(destination *Destination, name, iataCode string) (airport *Airport)
	// AddAirport 写入机场, IATA代码重复时返回 ErrIataCodeTaken, 目的地不存在时返回 ErrDestinationNotFound
	AddAirport(airport *Airport) (err error)
	// GetAirportById 通过主键获取机场(包含目的地), 当err为nil时返回值airport有效
	GetAirportById(id uint) (airport *Airport, err error)
	// GetAirports 获取所有机场(包含目的地), excludeId不为0时排除该机场
	GetAirports(excludeId uint) (airports []*Airport, err error)
	// DeleteAirport 删除没有航班引用的机场, 否则返回 ErrAirportInUse
	DeleteAirport(airport *Airport) (err error)
	// GetAirportsByCancelledDepartures 按取消的出发航班数目降序排列机场
	GetAirportsByCancelledDepartures() (counts []*AirportFlightCount, err error)
}
