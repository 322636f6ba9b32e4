package logger

import "go.uber.org/zap"

// Log is the process-wide sugared logger. It defaults to a no-op logger so
// library code and tests can log without setup; Init replaces it once in main.
var Log = zap.NewNop().Sugar()

func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l.Sugar()
	return nil
}

func Sync() {
	_ = Log.Sync()
}
