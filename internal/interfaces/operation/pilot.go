// Package operation
package operation

import "errors"

var (
	// ErrPilotNotFound 飞行员不存在
	ErrPilotNotFound = errors.New("pilot does not exist")
	// ErrLicenseTaken 执照编号已被使用
	ErrLicenseTaken = errors.New("license number has been used")
)

// PilotOperationInterface 飞行员操作接口定义
type PilotOperationInterface interface {
	// NewPilot 创建新飞行员(只是创建, 没有写入数据库)
	NewPilot(firstName, lastName, licenseNumber string) (pilot *Pilot)
	// AddPilot 写入飞行员, 执照编号重复时返回 ErrLicenseTaken
	AddPilot(pilot *Pilot) (err error)
	// GetPilotById 通过主键获取飞行员, 当err为nil时返回值pilot有效
	GetPilotById(id uint) (pilot *Pilot, err error)
	// GetPilots 获取所有飞行员
	GetPilots() (pilots []*Pilot, err error)
	// UpdatePilotName 更新飞行员姓名
	UpdatePilotName(pilot *Pilot, firstName, lastName string) (err error)
	// UpdatePilotLicense 更新飞行员执照编号, 重复时返回 ErrLicenseTaken
	UpdatePilotLicense(pilot *Pilot, licenseNumber string) (err error)
	// DeletePilot 在同一事务中解除飞行员的全部航班分配后删除飞行员, released为被解除分配的航班数
	DeletePilot(pilot *Pilot) (released int64, err error)
	// CountPilotsFlownTo 统计执飞过(已起飞)城市或国家名称包含location的目的地的不同飞行员数目
	CountPilotsFlownTo(location string) (total int64, err error)
}
