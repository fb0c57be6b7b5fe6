package logger

import (
	"go.uber.org/zap"
)

// Init replaces zap's global logger. Anything outside "production" gets the
// human-readable development config.
func Init(environment string) error {
	var logger *zap.Logger
	var err error

	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)

	return nil
}
