// Package config
package config

import (
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	"time"
)

type ConsoleConfig struct {
	TimeZone    string         `json:"time_zone" yaml:"time_zone"` // 输入与显示时间所用时区, 空或local表示本地时区
	Location    *time.Location `json:"-" yaml:"-"`
	ClearScreen bool           `json:"clear_screen" yaml:"clear_screen"`
	Color       bool           `json:"color" yaml:"color"`
	PageSize    int            `json:"page_size" yaml:"page_size"`
}

func defaultConsoleConfig() *ConsoleConfig {
	return &ConsoleConfig{
		TimeZone:    "local",
		ClearScreen: true,
		Color:       true,
		PageSize:    20,
	}
}

func (config *ConsoleConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if location, result := loadLocation("time_zone", config.TimeZone); result.IsFail() {
		return result
	} else {
		config.Location = location
	}
	if config.PageSize <= 0 {
		logger.WarnF("Invalid page_size %d, using default 20", config.PageSize)
		config.PageSize = 20
	}
	return ValidPass()
}
