// Package operation
package operation

import "errors"

var (
	// ErrDestinationNotFound 目的地不存在
	ErrDestinationNotFound = errors.New("destination does not exist")
	// ErrDestinationExists 城市与国家组合已存在
	ErrDestinationExists = errors.New("destination already exists")
	// ErrDestinationInUse 目的地下仍有机场
	ErrDestinationInUse = errors.New("destination still has airports")
)

type DestinationFlightCount struct {
	DestinationId uint   `gorm:"column:destination_id"`
	City          string `gorm:"column:city"`
	Country       string `gorm:"column:country"`
	Flights       int64  `gorm:"column:flight_count"`
}

// DestinationOperationInterface 目的地操作接口定义
type DestinationOperationInterface interface {
	// NewDestination 创建新目的地(只是创建, 没有写入数据库)
	NewDestination(city, country string) (destination *Destination)
	// AddDestination 写入目的地, 城市与国家组合重复时返回 ErrDestinationExists
	AddDestination(destination *Destination) (err error)
	// GetDestinationById 通过主键获取目的地, 当err为nil时返回值destination有效
	GetDestinationById(id uint) (destination *Destination, err error)
	// GetDestinationByCityAndCountry 通过城市与国家获取目的地, 当err为nil时返回值destination有效
	GetDestinationByCityAndCountry(city, country string) (destination *Destination, err error)
	// GetDestinations 按国家, 城市排序获取所有目的地
	GetDestinations() (destinations []*Destination, err error)
	// DeleteDestination 删除没有机场的目的地, 仍有机场时返回 ErrDestinationInUse
	DeleteDestination(destination *Destination) (err error)
	// GetFlightCountPerDestination 统计飞往每个目的地的航班数目
	GetFlightCountPerDestination() (counts []*DestinationFlightCount, err error)
}
