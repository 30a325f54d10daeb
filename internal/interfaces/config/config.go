// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
)

type Config struct {
	ConfigVersion string          `json:"config_version" yaml:"config_version"`
	Database      *DatabaseConfig `json:"database" yaml:"database"`
	Schedule      *ScheduleConfig `json:"schedule" yaml:"schedule"`
	Console       *ConsoleConfig  `json:"console" yaml:"console"`
}

func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: ConfVersion.String(),
		Database:      defaultDatabaseConfig(),
		Schedule:      defaultScheduleConfig(),
		Console:       defaultConsoleConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if version, err := newVersion(c.ConfigVersion); err != nil {
		return ValidFailWith(errors.New("version string parse fail"), err)
	} else if result := ConfVersion.checkVersion(version); result != AllMatch {
		return ValidFail(fmt.Errorf("config version mismatch, expected %s, got %s", ConfVersion.String(), version.String()))
	}
	if c.Database == nil {
		c.Database = defaultDatabaseConfig()
	}
	if c.Schedule == nil {
		c.Schedule = defaultScheduleConfig()
	}
	if c.Console == nil {
		c.Console = defaultConsoleConfig()
	}
	if result := c.Database.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Schedule.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Console.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
