// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"time"
)

type HttpServerConfig struct {
	Host            string           `json:"host"`
	Port            uint             `json:"port"`
	Address         string           `json:"-"`
	ProxyType       int              `json:"proxy_type"`
	BodyLimit       string           `json:"body_limit"`
	RequestTimeout  string           `json:"request_timeout"`
	RequestDuration time.Duration    `json:"-"`
	GraphQL         *GraphQLConfig   `json:"graphql"`
	Metrics         *MetricsConfig   `json:"metrics"`
	Limits          *HttpServerLimit `json:"limits"`
	JWT             *JWTConfig       `json:"jwt"`
	SSL             *SSLConfig       `json:"ssl"`
}

func defaultHttpServerConfig() *HttpServerConfig {
	return &HttpServerConfig{
		Host:           "0.0.0.0",
		Port:           4001,
		ProxyType:      0,
		BodyLimit:      "1MB",
		RequestTimeout: "30s",
		GraphQL:        defaultGraphQLConfig(),
		Metrics:        defaultMetricsConfig(),
		Limits:         defaultHttpServerLimit(),
		JWT:            defaultJWTConfig(),
		SSL:            defaultSSLConfig(),
	}
}

func (config *HttpServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if result := checkPort(config.Port); result.IsFail() {
		return result
	}

	config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)

	if config.BodyLimit == "" {
		logger.WarnF("body_limit is empty, where the length of the request body is not restricted. This is a very dangerous behavior")
	}

	if duration, err := time.ParseDuration(config.RequestTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.request_timeout"), err)
	} else {
		config.RequestDuration = duration
	}

	if config.GraphQL == nil || config.Metrics == nil || config.Limits == nil || config.JWT == nil || config.SSL == nil {
		return ValidFail(errors.New("missing json field in http_server, expected graphql, metrics, limits, jwt and ssl"))
	}

	if result := config.GraphQL.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Metrics.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Limits.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.JWT.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.SSL.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
