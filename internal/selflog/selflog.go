// Package selflog is the library's own trouble reporter. Components route
// non-fatal internal failures here (for example a directory that could not
// be created) so they never interrupt the host application's logging path.
//
// Reporting is disabled until Enable is called; every function is a safe
// no-op while no logger is configured.
package selflog

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu     sync.RWMutex
	logger logrus.FieldLogger
)

// Enable routes internal diagnostics to the given logger. Passing nil
// disables reporting again.
func Enable(l logrus.FieldLogger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Warnf reports a non-fatal internal failure. It never blocks on anything
// beyond the configured logger and never returns an error.
func Warnf(format string, args ...interface{}) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		return
	}
	l.Warnf(format, args...)
}
