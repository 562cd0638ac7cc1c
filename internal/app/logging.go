package app

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns the progress logger printed to w.
func NewLogger(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		ReportCaller:    debug,
	})
}
