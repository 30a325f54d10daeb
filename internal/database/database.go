// Package database
package database

import (
	"context"
	"fmt"
	. "github.com/half-nothing/simple-fms/internal/interfaces/config"
	"github.com/half-nothing/simple-fms/internal/interfaces/global"
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"time"
)

type DBCloseCallback struct {
	db     *gorm.DB
	logger log.LoggerInterface
}

func NewDBCloseCallback(db *gorm.DB, logger log.LoggerInterface) *DBCloseCallback {
	return &DBCloseCallback{db: db, logger: logger}
}

func (dc *DBCloseCallback) Invoke(_ context.Context) error {
	dc.logger.Info("Closing database connection")
	db, err := dc.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

// gormWriter 将gorm日志转发到程序日志, 避免输出混入控制台菜单
type gormWriter struct {
	logger log.LoggerInterface
}

func (w *gormWriter) Printf(format string, v ...interface{}) {
	w.logger.WarnF(format, v...)
}

func openDatabase(lg log.LoggerInterface, config *DatabaseConfig, debug bool) (*gorm.DB, error) {
	connection := config.GetConnection(lg)
	if connection == nil {
		return nil, fmt.Errorf("unsupported database type %s", config.DBType)
	}

	logLevel := logger.Silent
	if debug {
		logLevel = logger.Error
	}

	connectionConfig := gorm.Config{
		DefaultTransactionTimeout: 5 * time.Second,
		PrepareStmt:               true,
		NowFunc:                   func() time.Time { return time.Now().UTC() },
		Logger: logger.New(&gormWriter{logger: lg}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	}

	db, err := gorm.Open(connection, &connectionConfig)
	if err != nil {
		return nil, fmt.Errorf("error occured while connecting to database: %v", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error occured while creating database pool: %v", err)
	}

	maxOpenConnections := config.ServerMaxConnections * 4 / 5 // 不超过数据库最大连接的80%
	maxIdleConnections := maxOpenConnections / 5              // 空闲连接约为最大连接的20%
	// 内存SQLite在最后一个连接关闭时会被销毁, 至少保留一个空闲连接
	maxOpenConnections = max(maxOpenConnections, 1)
	maxIdleConnections = max(maxIdleConnections, 1)

	dbPool.SetMaxIdleConns(maxIdleConnections)
	dbPool.SetMaxOpenConns(maxOpenConnections)
	dbPool.SetConnMaxLifetime(config.ConnectIdleDuration)

	if err = dbPool.Ping(); err != nil {
		return nil, fmt.Errorf("error occured while pinging database: %v", err)
	}

	if err = db.Migrator().AutoMigrate(operation.AllModels()...); err != nil {
		return nil, fmt.Errorf("error occured while migrating database: %v", err)
	}
	return db, nil
}

func newDatabaseOperations(db *gorm.DB, queryTimeout time.Duration) *operation.DatabaseOperations {
	return operation.NewDatabaseOperations(
		NewDestinationOperation(db, queryTimeout),
		NewAirportOperation(db, queryTimeout),
		NewPilotOperation(db, queryTimeout),
		NewFlightOperation(db, queryTimeout),
		NewAuditLogOperation(db, queryTimeout),
	)
}

func ConnectDatabase(lg log.LoggerInterface, config *Config, debug bool) (global.Callable, *operation.DatabaseOperations, error) {
	db, err := openDatabase(lg, config.Database, debug)
	if err != nil {
		return nil, nil, err
	}
	lg.InfoF("Database(%s) initialized and connection established", config.Database.DBType)
	return NewDBCloseCallback(db, lg), newDatabaseOperations(db, config.Database.QueryDuration), nil
}
