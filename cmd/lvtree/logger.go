package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a console or JSON logger writing to w (stderr when w is
// nil), so command results on stdout stay machine readable.
func newLogger(format string, level zapcore.Level, w io.Writer) *zap.Logger {
	econf := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if w == nil {
		w = os.Stderr
	}
	ws := zapcore.AddSync(w)

	var core zapcore.Core
	if format == "json" {
		core = zapcore.NewCore(zapcore.NewJSONEncoder(econf), ws, level)
	} else {
		econf.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(econf), ws, level)
	}

	return zap.New(core)
}

func parseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return lvl, nil
}
