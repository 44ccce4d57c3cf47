package logging

import (
	"gopkg.in/natefinch/lumberjack.v2"
)

// UseFileLogger replaces the global logger with one that writes to a
// rotated log file instead of stderr.
func UseFileLogger(filepath string) {
	writer := &lumberjack.Logger{
		Filename:   filepath,
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     28, // days
	}

	L = newLogger(writer)
}
