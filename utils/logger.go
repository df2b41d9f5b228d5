package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel enumerates severity tiers.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l LogLevel) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLogLevel accepts the level names case-insensitively.
func ParseLogLevel(s string) (LogLevel, error) {
	for i, n := range levelNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return LogLevel(i), nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger is the levelled, printf-style facade over zap used across the tour.
type Logger struct {
	level LogLevel
	zl    *zap.Logger
	sugar *zap.SugaredLogger

	closeFile func()
}

var (
	globalMu     sync.Mutex
	globalLogger *Logger
)

// InitLogger builds the global logger. Output goes to out (stderr when nil),
// plus logFilePath when it is set. Calling it again replaces the previous
// logger.
func InitLogger(minLevel LogLevel, logFilePath string, out io.Writer) (*Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")

	sinks := []zapcore.WriteSyncer{zapcore.Lock(zapcore.AddSync(out))}
	var closeFile func()
	if logFilePath != "" {
		ws, closer, err := zap.Open(logFilePath)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", logFilePath, err)
		}
		sinks = append(sinks, ws)
		closeFile = closer
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.NewMultiWriteSyncer(sinks...),
		zap.NewAtomicLevelAt(minLevel.zapLevel()),
	)
	l := SetLogger(zap.New(core), minLevel)
	l.closeFile = closeFile
	return l, nil
}

// SetLogger installs zl as the global logger backend.
func SetLogger(zl *zap.Logger, minLevel LogLevel) *Logger {
	l := &Logger{level: minLevel, zl: zl, sugar: zl.Sugar()}
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
	return l
}

// L returns the global logger, falling back to a no-op logger when
// InitLogger has not been called.
func L() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		zl := zap.NewNop()
		globalLogger = &Logger{level: INFO, zl: zl, sugar: zl.Sugar()}
	}
	return globalLogger
}

// Level reports the minimum level this logger was built with.
func (l *Logger) Level() LogLevel { return l.level }

// Zap exposes the underlying structured logger.
func (l *Logger) Zap() *zap.Logger { return l.zl }

// Close flushes buffered entries and closes the log file, if any.
func (l *Logger) Close() {
	_ = l.zl.Sync()
	if l.closeFile != nil {
		l.closeFile()
		l.closeFile = nil
	}
}

func (l *Logger) Debug(f string, a ...any) { l.sugar.Debugf(f, a...) }
func (l *Logger) Info(f string, a ...any)  { l.sugar.Infof(f, a...) }
func (l *Logger) Warn(f string, a ...any)  { l.sugar.Warnf(f, a...) }
func (l *Logger) Error(f string, a ...any) { l.sugar.Errorf(f, a...) }
func (l *Logger) Fatal(f string, a ...any) { l.sugar.Fatalf(f, a...) }
