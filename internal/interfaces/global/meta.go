// Package global
package global

import (
	"flag"
)

var (
	DebugMode      = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath = flag.String("config", "./config.json", "Path to configuration file")
)

const (
	AppName       = "flylog"
	AppVersion    = "1.0.0"
	ConfigVersion = "1.0.0"

	// GraphQLEndpoint 客户端依赖的固定路径
	GraphQLEndpoint = "/graphql"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755
)
