// Package logger builds the service's zap logger.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a console logger for "development" and a JSON production
// logger for anything else.
func New(env string) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.With(zap.String("service", "todo-api")), nil
}
