package fiberlog

import "github.com/sirupsen/logrus"

// Config selects the logger and the request tags written per request.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault is used when New is called without a config.
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
