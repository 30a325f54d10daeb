// Package global
package global

import (
	"flag"
)

var (
	DebugMode      = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath = flag.String("config", "./config.json", "Path to configuration file")
	LogFilePath    = flag.String("log", "./fms.log", "Path to log file, empty string logs to stderr")
)

const (
	AppVersion    = "1.0.0"
	ConfigVersion = "1.0.0"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	// DateTimeLayout 操作员输入与显示时间所用格式
	DateTimeLayout = "2006-01-02 15:04:05"
)
