// Package telemetry carries the engine's two ambient output channels:
// structured diagnostic logging for the search drivers (zap) and
// human-facing progress reporting and tree rendering for interactive use
// (pterm).
package telemetry

import "go.uber.org/zap"

// logger is the package-level structured logger used by the search
// drivers to report iteration counts, memory-probe samples and mode
// switches. It defaults to a no-op logger so importing gambit never forces
// a caller to configure logging; SetLogger installs a real one.
var logger *zap.SugaredLogger = zap.NewNop().Sugar()

// SetLogger installs l as the package-level logger used by the search
// drivers. Passing nil restores the no-op default.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l
}

// Logger returns the currently installed logger.
func Logger() *zap.SugaredLogger {
	return logger
}

// NewDevelopmentLogger builds a human-readable, colorized zap logger
// suitable for the example harness and local debugging.
func NewDevelopmentLogger() (*zap.SugaredLogger, error) {
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
