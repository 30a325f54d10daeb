package base

import (
	"context"
	"fmt"
	. "github.com/half-nothing/simple-fms/internal/interfaces/global"
	. "github.com/half-nothing/simple-fms/internal/interfaces/log"
	"github.com/half-nothing/simple-fms/internal/utils"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Cleaner 按注册的逆序执行清理回调, 最后关闭日志并退出进程
type Cleaner struct {
	callbacks      []Callable
	mu             sync.Mutex
	once           sync.Once
	cleaning       bool
	loggerShutdown Callable
	logger         LoggerInterface
	exit           func(code int)
}

func NewCleaner(logger LoggerInterface) *Cleaner {
	return &Cleaner{
		callbacks:      make([]Callable, 0),
		loggerShutdown: logger.ShutdownCallback(),
		logger:         logger,
		exit:           syscall.Exit,
	}
}

func (c *Cleaner) Add(callable Callable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleaning {
		c.logger.Debug("Cleaner is already shutting down, ignoring new callback")
		return
	}
	c.callbacks = append(c.callbacks, callable)
	c.logger.DebugF("Adding cleaner #%d (%T)", len(c.callbacks), callable)
}

// Clean 只会执行一次, 信号处理与正常退出可能同时触发
func (c *Cleaner) Clean() {
	c.once.Do(c.clean)
}

func (c *Cleaner) clean() {
	c.mu.Lock()
	c.cleaning = true
	callbacks := make([]Callable, len(c.callbacks))
	copy(callbacks, c.callbacks)
	c.mu.Unlock()

	c.logger.DebugF("Starting cleanup of %d registered functions", len(callbacks))

	var errs []error
	utils.ReverseForEach(callbacks, func(idx int, callback Callable) {
		c.logger.DebugF("Invoking cleaner #%d (%T)", idx+1, callback)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := callback.Invoke(ctx); err != nil {
			c.logger.ErrorF("Cleaner #%d (%T) failed: %v", idx+1, callback, err)
			errs = append(errs, err)
		}
	})

	if len(errs) > 0 {
		c.logger.ErrorF("%d errors occurred during cleanup", len(errs))
	} else {
		c.logger.Debug("All cleaners executed successfully")
	}
	c.logger.Info("Cleanup finished, flight management system offline")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.loggerShutdown.Invoke(shutdownCtx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "LOGGER SHUTDOWN ERROR: %v\n", err)
	}
	if len(errs) > 0 {
		c.exit(1)
		return
	}
	c.exit(0)
}

func (c *Cleaner) Init() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
		c.logger.Info("Received interrupt signal, shutting down")
		c.Clean()
	}()
}
