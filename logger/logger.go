package logger

import "go.uber.org/zap"

var log *zap.Logger

func Init() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L returns the process logger; Init must have run first.
func L() *zap.Logger {
	return log
}
