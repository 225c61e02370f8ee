// Package config
package config

import (
	"errors"
	"github.com/half-nothing/flylog/internal/interfaces/log"
)

type ServerConfig struct {
	General    *GeneralConfig    `json:"general"`
	HttpServer *HttpServerConfig `json:"http_server"`
}

func defaultServerConfig() *ServerConfig {
	return &ServerConfig{
		General:    defaultGeneralConfig(),
		HttpServer: defaultHttpServerConfig(),
	}
}

func (config *ServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.General == nil || config.HttpServer == nil {
		return ValidFail(errors.New("missing json field server.general or server.http_server"))
	}
	if result := config.General.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.HttpServer.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
