// Package base
package base

import (
	"context"
	"fmt"
	"github.com/fatih/color"
	"github.com/half-nothing/simple-fms/internal/interfaces/global"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"io"
	"log/slog"
	"os"
	"sync"
)

// LevelFatal 致命错误级别, 输出后由调用方负责退出
const LevelFatal = slog.Level(12)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
	LevelFatal:      color.New(color.FgHiRed, color.Bold),
}

type Logger struct {
	mu     sync.Mutex
	logger *slog.Logger
	level  *slog.LevelVar
	file   *os.File
}

func NewLogger() *Logger {
	level := &slog.LevelVar{}
	return &Logger{
		level:  level,
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})),
	}
}

// Init 根据 -log 参数决定输出位置, 为空时输出到标准错误
func (l *Logger) Init(debug bool) {
	path := *global.LogFilePath
	if path == "" {
		colored := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		l.InitWithWriter(colorable.NewColorableStderr(), debug, colored)
		return
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Fail to open log file %s, fallback to stderr: %v\n", path, err)
		l.InitWithWriter(colorable.NewColorableStderr(), debug, false)
		return
	}
	l.mu.Lock()
	l.file = file
	l.mu.Unlock()
	l.InitWithWriter(file, debug, false)
}

func (l *Logger) InitWithWriter(writer io.Writer, debug bool, colored bool) {
	if debug {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
	options := &slog.HandlerOptions{
		Level: l.level,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key != slog.LevelKey {
				return attr
			}
			level := attr.Value.Any().(slog.Level)
			name := level.String()
			if level == LevelFatal {
				name = "FATAL"
			}
			if colored {
				if c, ok := levelColors[level]; ok {
					name = c.Sprint(name)
				}
			}
			return slog.String(slog.LevelKey, name)
		},
	}
	l.mu.Lock()
	l.logger = slog.New(slog.NewTextHandler(writer, options))
	l.mu.Unlock()
	slog.SetDefault(l.logger)
}

func (l *Logger) ShutdownCallback() global.Callable {
	return global.CallableFunc(func(_ context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.file == nil {
			return nil
		}
		err := l.file.Close()
		l.file = nil
		return err
	})
}

func (l *Logger) log(level slog.Level, msg string, v ...interface{}) {
	l.mu.Lock()
	logger := l.logger
	l.mu.Unlock()
	logger.Log(context.Background(), level, msg, v...)
}

func (l *Logger) Debug(msg string, v ...interface{}) { l.log(slog.LevelDebug, msg, v...) }

func (l *Logger) DebugF(msg string, v ...interface{}) {
	l.log(slog.LevelDebug, fmt.Sprintf(msg, v...))
}

func (l *Logger) Info(msg string, v ...interface{}) { l.log(slog.LevelInfo, msg, v...) }

func (l *Logger) InfoF(msg string, v ...interface{}) { l.log(slog.LevelInfo, fmt.Sprintf(msg, v...)) }

func (l *Logger) Warn(msg string, v ...interface{}) { l.log(slog.LevelWarn, msg, v...) }

func (l *Logger) WarnF(msg string, v ...interface{}) { l.log(slog.LevelWarn, fmt.Sprintf(msg, v...)) }

func (l *Logger) Error(msg string, v ...interface{}) { l.log(slog.LevelError, msg, v...) }

func (l *Logger) ErrorF(msg string, v ...interface{}) {
	l.log(slog.LevelError, fmt.Sprintf(msg, v...))
}

func (l *Logger) Fatal(msg string, v ...interface{}) { l.log(LevelFatal, msg, v...) }

func (l *Logger) FatalF(msg string, v ...interface{}) { l.log(LevelFatal, fmt.Sprintf(msg, v...)) }
