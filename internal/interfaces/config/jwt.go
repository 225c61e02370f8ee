// Package config
package config

import (
	"errors"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"github.com/thanhpk/randstr"
	"time"
)

type JWTConfig struct {
	Secret          string        `json:"secret"`
	Issuer          string        `json:"issuer"`
	ExpiresTime     string        `json:"expires_time"`
	ExpiresDuration time.Duration `json:"-"`
}

func defaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		Secret:      randstr.String(64),
		Issuer:      "FlyLogServer",
		ExpiresTime: "72h",
	}
}

func (config *JWTConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.ExpiresTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.jwt.expires_time"), err)
	} else {
		config.ExpiresDuration = duration
	}

	if config.ExpiresDuration <= 0 {
		return ValidFail(errors.New("invalid json field http_server.jwt.expires_time, value must larger than 0"))
	}

	if config.Secret == "" {
		config.Secret = randstr.String(64)
		logger.Warn("jwt secret is empty, a random secret has been generated, tokens will not survive a restart")
	}

	return ValidPass()
}
