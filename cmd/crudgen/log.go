package main

import "go.uber.org/zap"

// newLogger builds a production logger, or a development one for debug runs.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}
