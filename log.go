package quizgame

import "go.uber.org/zap"

var logger = zap.NewNop().Sugar()

// SetVerbose switches diagnostic logging to stderr on or off
func SetVerbose(verbose bool) error {
	if !verbose {
		SetLogger(zap.NewNop())
		return nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

// SetLogger replaces the package logger
func SetLogger(l *zap.Logger) {
	logger = l.Sugar()
}

// SyncLog flushes buffered log entries
func SyncLog() {
	_ = logger.Sync()
}

// VerboseLog logs at debug level; it is silent unless verbose mode is on
func VerboseLog(msg string, keysAndValues ...interface{}) {
	logger.Debugw(msg, keysAndValues...)
}

// WarnLog logs a problem that does not stop the game
func WarnLog(msg string, keysAndValues ...interface{}) {
	logger.Warnw(msg, keysAndValues...)
}
