package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Debug(msg string)
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Close()
}

type Config struct {
	Dir        string
	Prefix     string
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

type fileLogger struct {
	mu     sync.Mutex
	zap    *zap.Logger
	writer *lumberjack.Logger
}

// NewFileLogger writes JSON lines to <Dir>/<Prefix>_<start time>.json. The TUI
// owns the terminal, so nothing is written to stdout.
func NewFileLogger(cfg Config) (Logger, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("error while creating log directory '%s': %w", cfg.Dir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(cfg.Dir, fmt.Sprintf("%s_%s.json", cfg.Prefix, timestamp))

	writer := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		CallerKey:      "file",
		FunctionKey:    "function",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(writer),
		ParseLevel(cfg.Level),
	)

	return &fileLogger{
		zap:    zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
		writer: writer,
	}, nil
}

// NewNopLogger discards everything.
func NewNopLogger() Logger {
	return &fileLogger{zap: zap.NewNop()}
}

func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *fileLogger) Debug(msg string) {
	l.zap.Debug(msg)
}

func (l *fileLogger) Info(msg string) {
	l.zap.Info(msg)
}

func (l *fileLogger) Error(msg string, err error) {
	l.zap.Error(msg, zap.Error(err))
}

func (l *fileLogger) Warning(msg string) {
	l.zap.Warn(msg)
}

func (l *fileLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.zap.Sync()
	if l.writer != nil {
		if err := l.writer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error while closing log file: %v\n", err)
		}
		l.writer = nil
	}
}
