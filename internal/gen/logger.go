package gen

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logMu  sync.RWMutex
	logger = zap.NewNop()
)

// SetLogger sets the logger used by the generator. A nil logger restores the
// no-op default.
func SetLogger(l *zap.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the generator logger.
func Logger() *zap.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}
