// Package interfaces
package interfaces

import (
	"github.com/half-nothing/simple-fms/internal/interfaces/config"
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	"github.com/half-nothing/simple-fms/internal/interfaces/operation"
	"time"
)

// Clock 当前时间来源, 测试时可替换为固定时间
type Clock func() time.Time

// ApplicationContent 控制台与各业务服务共享的运行时依赖
type ApplicationContent struct {
	configManager ConfigManagerInterface
	cleaner       CleanerInterface
	logger        log.LoggerInterface
	operations    *operation.DatabaseOperations
	clock         Clock
}

func NewApplicationContent(
	configManager ConfigManagerInterface,
	cleaner CleanerInterface,
	logger log.LoggerInterface,
	db *operation.DatabaseOperations,
	clock Clock,
) *ApplicationContent {
	if clock == nil {
		clock = time.Now
	}
	return &ApplicationContent{
		configManager: configManager,
		cleaner:       cleaner,
		logger:        logger,
		operations:    db,
		clock:         clock,
	}
}

func (app *ApplicationContent) ConfigManager() ConfigManagerInterface { return app.configManager }

func (app *ApplicationContent) Config() *config.Config { return app.configManager.Config() }

func (app *ApplicationContent) Cleaner() CleanerInterface { return app.cleaner }

func (app *ApplicationContent) Logger() log.LoggerInterface { return app.logger }

func (app *ApplicationContent) Operations() *operation.DatabaseOperations { return app.operations }

func (app *ApplicationContent) Now() time.Time { return app.clock() }
