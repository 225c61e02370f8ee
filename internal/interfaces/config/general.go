// Package config
package config

import (
	"errors"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"golang.org/x/crypto/bcrypt"
)

type GeneralConfig struct {
	BcryptCost  int    `json:"bcrypt_cost"`
	DefaultRole string `json:"default_role"` // 新用户默认角色
}

func defaultGeneralConfig() *GeneralConfig {
	return &GeneralConfig{
		BcryptCost:  12,
		DefaultRole: "user",
	}
}

func (config *GeneralConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.BcryptCost < bcrypt.MinCost || config.BcryptCost > bcrypt.MaxCost {
		return ValidFail(errors.New("bcrypt_cost out of range, must between 4 and 31"))
	}
	if config.DefaultRole == "" {
		logger.Warn("default_role is empty, falling back to \"user\"")
		config.DefaultRole = "user"
	}
	return ValidPass()
}
