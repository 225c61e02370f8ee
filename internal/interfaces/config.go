// Package interfaces
package interfaces

import (
	. "github.com/half-nothing/flylog/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
