package xlog

import (
	"fmt"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

var _ ants.Logger = (*AntsLogger)(nil)

// AntsLogger forwards the ants pool logs at debug level.
type AntsLogger struct {
	logger *zap.Logger
}

func (l *AntsLogger) Printf(format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func NewAntsLogger(logger *zap.Logger) *AntsLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AntsLogger{
		logger: logger.Named("ants"),
	}
}
