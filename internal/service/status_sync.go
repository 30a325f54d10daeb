package service

import (
	"github.com/half-nothing/simple-fms/internal/interfaces/config"
	"github.com/half-nothing/simple-fms/internal/schedule"
	"time"
)

// statusSync 在 lazy 模式下于每次读取航班前同步航班状态
type statusSync struct {
	resolver *schedule.Resolver
	mode     config.ReconcileMode
	now      func() time.Time
}

func (sync *statusSync) beforeRead() time.Time {
	now := sync.now()
	if sync.mode == config.ReconcileLazy {
		// 失败已由 Resolver 记录, 读取仍然继续
		_, _, _ = sync.resolver.Reconcile(now)
	}
	return now
}
