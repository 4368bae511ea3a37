// Package logger constructs the application's structured logger.
package logger

import "go.uber.org/zap"

// New returns a zap logger: human-readable in debug mode, JSON in production.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
