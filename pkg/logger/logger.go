package logger

import (
	"go.uber.org/zap"
)

// Log is the process-wide logger. It is a no-op until Initialize is called,
// so packages may log safely during early startup.
var Log = zap.NewNop()

func Initialize() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}

	Log = l

	return nil
}

var (
	String  = zap.String
	Int64   = zap.Int64
	Float64 = zap.Float64
	Error   = zap.Error
)
