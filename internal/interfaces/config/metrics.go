// Package config
package config

import (
	"errors"
	"github.com/half-nothing/flylog/internal/interfaces/log"
)

type MetricsConfig struct {
	Enabled   bool   `json:"enabled"`
	Path      string `json:"path"`
	Namespace string `json:"namespace"`
}

func defaultMetricsConfig() *MetricsConfig {
	return &MetricsConfig{
		Enabled:   true,
		Path:      "/metrics",
		Namespace: "flylog",
	}
}

func (config *MetricsConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}
	if config.Path == "" || config.Path[0] != '/' {
		return ValidFail(errors.New("invalid json field http_server.metrics.path, must start with /"))
	}
	if config.Namespace == "" {
		return ValidFail(errors.New("invalid json field http_server.metrics.namespace, must not be empty"))
	}
	return ValidPass()
}
