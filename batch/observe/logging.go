package observe

import (
	"sync"

	"go.uber.org/zap"

	"github.com/lguimbarda/min-batch/batch/core"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's logger.
// This must be called before any builds are observed with LogHooks.
func SetLogger(l *zap.Logger) {
	logger = l
}

// LogHooks returns hooks that log builder lifecycle events under the given
// build name. Per-value events log at Debug, terminal events at Info.
func LogHooks[T any](name string) core.Hooks[T] {
	return core.Hooks[T]{
		OnPut: func(index int, _ T) {
			Logger().Debug("batch put",
				zap.String("build", name),
				zap.Int("index", index))
		},
		OnDrop: func(index int, _ T) {
			Logger().Debug("batch drop",
				zap.String("build", name),
				zap.Int("index", index))
		},
		OnCommit: func(size int) {
			Logger().Info("batch committed",
				zap.String("build", name),
				zap.Int("size", size))
		},
		OnRollback: func(dropped int) {
			Logger().Info("batch rolled back",
				zap.String("build", name),
				zap.Int("dropped", dropped))
		},
	}
}

// WithLogging returns an Option that logs builder lifecycle events under
// the given build name.
func WithLogging[T any](name string) core.Option[T] {
	return core.WithHooks(LogHooks[T](name))
}
