package main

import (
	"flag"
	"fmt"
	"github.com/half-nothing/simple-fms/internal/base"
	"github.com/half-nothing/simple-fms/internal/console"
	"github.com/half-nothing/simple-fms/internal/database"
	"github.com/half-nothing/simple-fms/internal/interfaces"
	"github.com/half-nothing/simple-fms/internal/interfaces/config"
	"github.com/half-nothing/simple-fms/internal/interfaces/global"
	"github.com/half-nothing/simple-fms/internal/schedule"
	"os"
	"time"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	flag.Parse()

	defer recoverFromError()

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.InfoF("Flight management system v%s initializing...", global.AppVersion)

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger)
	cfg := configManager.Config()

	shutdownCallback, databaseOperation, err := database.ConnectDatabase(logger, cfg, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing operation, details: %v", err)
		return
	}

	cleaner.Add(shutdownCallback)

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperation, time.Now)

	if cfg.Schedule.ReconcileMode == config.ReconcileOnStartup {
		resolver := schedule.NewResolver(databaseOperation.FlightOperation(), logger)
		if _, _, err := resolver.Reconcile(applicationContent.Now()); err != nil {
			logger.WarnF("Flight statuses could not be refreshed at startup, details: %v", err)
		}
	}

	if err := console.NewConsole(applicationContent, os.Stdin, os.Stdout, nil).Run(); err != nil {
		logger.ErrorF("Console stopped with error: %v", err)
	}
}
