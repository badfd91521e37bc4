package xlog

import (
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

// EnvLogLevel is read when no level option is given.
const EnvLogLevel = "XCOLL_LOG_LVL"

func (lvl LogLevel) zapLevel() zapcore.Level {
	switch LogLevel(strings.ToUpper(string(lvl))) {
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	case LogLevelDebug:
		fallthrough
	default:
	}
	return zapcore.DebugLevel
}

func (lvl LogLevel) String() string {
	return string(lvl)
}

func getLogLevelOrDefault() zapcore.Level {
	level := os.Getenv(EnvLogLevel)
	if len(strings.TrimSpace(level)) == 0 {
		return zapcore.InfoLevel
	}
	return LogLevel(level).zapLevel()
}
