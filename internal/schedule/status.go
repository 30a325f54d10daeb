package schedule

import (
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	. "github.com/half-nothing/simple-fms/internal/interfaces/operation"
	"time"
)

// ResolveStatus 按当前时间推导航班状态, 已取消为终态
func ResolveStatus(flight *Flight, now time.Time) FlightStatus {
	if flight.Status == Cancelled {
		return Cancelled
	}
	if flight.DepartureTime.Before(now) {
		return Departed
	}
	return Scheduled
}

// IsModifiable 航班未取消且尚未起飞时才允许改期, 换人或改目的地
func IsModifiable(flight *Flight, now time.Time) bool {
	return ResolveStatus(flight, now) == Scheduled
}

type Resolver struct {
	flights FlightOperationInterface
	logger  log.LoggerInterface
}

func NewResolver(flights FlightOperationInterface, logger log.LoggerInterface) *Resolver {
	return &Resolver{flights: flights, logger: logger}
}

// Reconcile 批量同步所有未取消航班的状态
func (resolver *Resolver) Reconcile(now time.Time) (departed int64, scheduled int64, err error) {
	departed, scheduled, err = resolver.flights.ReconcileStatuses(now)
	if err != nil {
		resolver.logger.ErrorF("Fail to reconcile flight statuses, %v", err)
		return
	}
	if departed > 0 || scheduled > 0 {
		resolver.logger.InfoF("Flight statuses reconciled, %d departed, %d scheduled", departed, scheduled)
	} else {
		resolver.logger.Debug("Flight statuses already up to date")
	}
	return
}
