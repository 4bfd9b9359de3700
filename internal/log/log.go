// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package log provides named, leveled loggers.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is the verbosity of logging.
type Level int

// Levels, from most to least verbose.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	backend logging.LeveledBackend
	level   = Notice
)

// Logger is a named, leveled logger.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a logger identified by name.
func New(name string) Logger { return logging.MustGetLogger(name) }

// SetSink replaces the output of all loggers.
// The current level is preserved.
func SetSink(w io.Writer) {
	b := logging.NewLogBackend(w, "", 0)
	backend = logging.AddModuleLevel(logging.NewBackendFormatter(b, format))
	backend.SetLevel(conv(level), "")
	logging.SetBackend(backend)
}

// SetLevel sets the verbosity of all loggers.
func SetLevel(lvl Level) {
	level = lvl
	backend.SetLevel(conv(lvl), "")
}

// CurrentLevel returns the verbosity set by SetLevel.
func CurrentLevel() Level { return level }

func conv(lvl Level) logging.Level {
	switch lvl {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Notice:
		return logging.NOTICE
	case Warning:
		return logging.WARNING
	default:
		return logging.ERROR
	}
}

func init() { SetSink(os.Stdout) }
