package xlog

import (
	"errors"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogEncoderType uint8

const (
	JSON LogEncoderType = iota
	PlainText
	_encMax
)

var (
	errUnknownEncoder = errors.New("[xlog] unknown encoder")
	errNilWriter      = errors.New("[xlog] nil writer")
)

var encoderMap = map[LogEncoderType]func(cfg zapcore.EncoderConfig) zapcore.Encoder{
	JSON:      zapcore.NewJSONEncoder,
	PlainText: zapcore.NewConsoleEncoder,
}

type loggerCfg struct {
	level   *zapcore.Level
	encoder LogEncoderType
	writer  zapcore.WriteSyncer
	lvlEnc  zapcore.LevelEncoder
	tsEnc   zapcore.TimeEncoder
}

type LoggerOption func(*loggerCfg) error

func WithLoggerLevel(lvl LogLevel) LoggerOption {
	return func(cfg *loggerCfg) error {
		_lvl := lvl.zapLevel()
		cfg.level = &_lvl
		return nil
	}
}

func WithLoggerEncoder(enc LogEncoderType) LoggerOption {
	return func(cfg *loggerCfg) error {
		if enc >= _encMax {
			return errUnknownEncoder
		}
		cfg.encoder = enc
		return nil
	}
}

func WithLoggerWriter(w io.Writer) LoggerOption {
	return func(cfg *loggerCfg) error {
		if w == nil {
			return errNilWriter
		}
		cfg.writer = zapcore.Lock(zapcore.AddSync(w))
		return nil
	}
}

func WithLoggerLevelEncoder(lvlEnc zapcore.LevelEncoder) LoggerOption {
	return func(cfg *loggerCfg) error {
		if lvlEnc == nil {
			lvlEnc = zapcore.CapitalColorLevelEncoder
		}
		cfg.lvlEnc = lvlEnc
		return nil
	}
}

func WithLoggerTimeEncoder(tsEnc zapcore.TimeEncoder) LoggerOption {
	return func(cfg *loggerCfg) error {
		if tsEnc == nil {
			tsEnc = zapcore.ISO8601TimeEncoder
		}
		cfg.tsEnc = tsEnc
		return nil
	}
}

// NewLogger builds the zap logger handed to the containers through
// ordered.WithLogger. Defaults: JSON to stdout, level from XCOLL_LOG_LVL
// (INFO if unset). Every option error is reported.
func NewLogger(opts ...LoggerOption) (*zap.Logger, error) {
	cfg := &loggerCfg{
		encoder: JSON,
		lvlEnc:  zapcore.CapitalLevelEncoder,
		tsEnc:   zapcore.ISO8601TimeEncoder,
	}
	var merr error
	for _, o := range opts {
		if o == nil {
			continue
		}
		merr = multierr.Append(merr, o(cfg))
	}
	if merr != nil {
		return nil, merr
	}
	if cfg.level == nil {
		lvl := getLogLevelOrDefault()
		cfg.level = &lvl
	}
	if cfg.writer == nil {
		cfg.writer = zapcore.Lock(os.Stdout)
	}

	config := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   cfg.lvlEnc,
		TimeKey:       "ts",
		EncodeTime:    cfg.tsEnc,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: zapcore.OmitKey,
	}
	core := zapcore.NewCore(encoderMap[cfg.encoder](config), cfg.writer, cfg.level)
	return zap.New(core, zap.AddCaller()), nil
}
