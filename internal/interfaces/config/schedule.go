// Package config
package config

import (
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	"slices"
	"strings"
	"time"
)

type ReconcileMode string

const (
	// ReconcileOnStartup 仅在程序启动时同步一次航班状态
	ReconcileOnStartup ReconcileMode = "startup"
	// ReconcileLazy 每次选择航班之前同步航班状态
	ReconcileLazy ReconcileMode = "lazy"
)

var allowedReconcileMode = []ReconcileMode{ReconcileOnStartup, ReconcileLazy}

type ScheduleConfig struct {
	AirlineCodes         []string      `json:"airline_codes" yaml:"airline_codes"`
	FlightNumberAttempts int           `json:"flight_number_attempts" yaml:"flight_number_attempts"` // 生成航班号的最大尝试次数
	MaxDuration          string        `json:"max_duration" yaml:"max_duration"`                     // 航班最长飞行时间
	MaxFlightDuration    time.Duration `json:"-" yaml:"-"`
	StrictOverlap        bool          `json:"strict_overlap" yaml:"strict_overlap"`                 // 为true时首尾相接的航班不视为冲突
	CancelledBlocksPilot bool          `json:"cancelled_blocks_pilot" yaml:"cancelled_blocks_pilot"` // 为true时已取消的航班仍占用飞行员
	Reconcile            string        `json:"reconcile_mode" yaml:"reconcile_mode"`
	ReconcileMode        ReconcileMode `json:"-" yaml:"-"`
}

func defaultScheduleConfig() *ScheduleConfig {
	return &ScheduleConfig{
		AirlineCodes:         []string{"NY", "LA", "LD", "TP", "BC", "KJ", "IB", "EN"},
		FlightNumberAttempts: 1000,
		MaxDuration:          "36h",
		StrictOverlap:        false,
		CancelledBlocksPilot: false,
		Reconcile:            string(ReconcileOnStartup),
	}
}

func (config *ScheduleConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if len(config.AirlineCodes) == 0 {
		return ValidFailF("airline_codes must contain at least one airline code")
	}
	for i, code := range config.AirlineCodes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) != 2 {
			return ValidFailF("airline code %q must be exactly two characters", code)
		}
		config.AirlineCodes[i] = code
	}

	if config.FlightNumberAttempts <= 0 {
		logger.WarnF("Invalid flight_number_attempts %d, using default 1000", config.FlightNumberAttempts)
		config.FlightNumberAttempts = 1000
	}

	if duration, result := parseDuration("max_duration", config.MaxDuration); result.IsFail() {
		return result
	} else if duration <= 0 {
		return ValidFailF("max_duration must be greater than zero")
	} else {
		config.MaxFlightDuration = duration
	}

	config.ReconcileMode = ReconcileMode(config.Reconcile)
	if !slices.Contains(allowedReconcileMode, config.ReconcileMode) {
		return ValidFailF("reconcile mode %s is not allowed, support mode is %v", config.Reconcile, allowedReconcileMode)
	}
	return ValidPass()
}
