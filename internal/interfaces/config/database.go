// Package config
package config

import (
	"fmt"
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
	"slices"
	"strings"
	"time"
)

type DatabaseType string

const (
	MySQL      DatabaseType = "mysql"
	PostgreSQL DatabaseType = "postgres"
	SQLite     DatabaseType = "sqlite3"
	// PureSQLite 使用 modernc.org/sqlite 驱动, 无需 cgo
	PureSQLite DatabaseType = "sqlite"
)

var allowedDatabaseType = []DatabaseType{MySQL, PostgreSQL, SQLite, PureSQLite}

type DatabaseConfig struct {
	Type                 string        `json:"type" yaml:"type"`
	DBType               DatabaseType  `json:"-" yaml:"-"`
	Database             string        `json:"database" yaml:"database"`
	Host                 string        `json:"host" yaml:"host"`
	Port                 int           `json:"port" yaml:"port"`
	Username             string        `json:"username" yaml:"username"`
	Password             string        `json:"password" yaml:"password"`
	EnableSSL            bool          `json:"enable_ssl" yaml:"enable_ssl"`
	TimeZone             string        `json:"time_zone" yaml:"time_zone"`                       // 仅 PostgreSQL 使用
	ConnectIdleTimeout   string        `json:"connect_idle_timeout" yaml:"connect_idle_timeout"` // 连接空闲超时时间
	ConnectIdleDuration  time.Duration `json:"-" yaml:"-"`
	QueryTimeout         string        `json:"query_timeout" yaml:"query_timeout"` // 每次查询超时时间
	QueryDuration        time.Duration `json:"-" yaml:"-"`
	ServerMaxConnections int           `json:"server_max_connections" yaml:"server_max_connections"` // 最大连接池大小
}

func defaultDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Type:                 string(SQLite),
		Database:             "flight_management.db",
		Host:                 "",
		Port:                 0,
		Username:             "",
		Password:             "",
		EnableSSL:            false,
		TimeZone:             "UTC",
		ConnectIdleTimeout:   "1h",
		QueryTimeout:         "5s",
		ServerMaxConnections: 32,
	}
}

func (config *DatabaseConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	config.DBType = DatabaseType(config.Type)
	if !slices.Contains(allowedDatabaseType, config.DBType) {
		return ValidFailF("database type %s is not allowed, support database is %v, please check the configuration file", config.DBType, allowedDatabaseType)
	}

	if config.Database == "" {
		return ValidFailF("database name must not be empty")
	}

	if config.ServerMaxConnections <= 0 {
		return ValidFailF("server_max_connections must be greater than zero")
	}

	if duration, result := parseDuration("connect_idle_timeout", config.ConnectIdleTimeout); result.IsFail() {
		return result
	} else {
		config.ConnectIdleDuration = duration
	}

	if duration, result := parseDuration("query_timeout", config.QueryTimeout); result.IsFail() {
		return result
	} else {
		config.QueryDuration = duration
	}
	return ValidPass()
}

func (config *DatabaseConfig) GetConnection(logger log.LoggerInterface) gorm.Dialector {
	switch config.DBType {
	case MySQL:
		return mySQLConnection(logger, config)
	case PostgreSQL:
		return postgreSQLConnection(logger, config)
	case SQLite:
		return sqliteConnection(logger, config)
	case PureSQLite:
		return pureSQLiteConnection(logger, config)
	default:
		return nil
	}
}

func mySQLConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	var enableSSL string
	if db.EnableSSL {
		enableSSL = "true"
	} else {
		enableSSL = "false"
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&tls=%s",
		db.Username,
		db.Password,
		db.Host,
		db.Port,
		db.Database,
		enableSSL,
	)
	logger.DebugF("Mysql Connection DSN %s", strings.Replace(dsn, db.Password, "******", 1))
	return mysql.Open(dsn)
}

func postgreSQLConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	var enableSSL string
	if db.EnableSSL {
		enableSSL = "require"
	} else {
		enableSSL = "disable"
	}
	timeZone := db.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		db.Host,
		db.Username,
		db.Password,
		db.Database,
		db.Port,
		enableSSL,
		timeZone,
	)
	logger.DebugF("PostgreSQL Connection DSN %s", strings.Replace(dsn, "password="+db.Password, "password=******", 1))
	return postgres.Open(dsn)
}

// appendQuery 在DSN后追加查询参数
func appendQuery(dsn string, params ...string) string {
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + strings.Join(params, "&")
}

func sqliteConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	dsn := appendQuery(db.Database, "_foreign_keys=1", "_busy_timeout=5000")
	logger.DebugF("SQLite Connection DSN %s", dsn)
	return sqlite.Open(dsn)
}

func pureSQLiteConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	dsn := appendQuery(db.Database, "_pragma=foreign_keys(1)", "_pragma=busy_timeout(5000)")
	logger.DebugF("SQLite(pure go) Connection DSN %s", dsn)
	return sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn})
}
