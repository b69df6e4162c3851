package pkg

import "go.uber.org/zap"

// NewLogger builds the production logger handed to every component at startup.
func NewLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
