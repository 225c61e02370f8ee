// Package config
package config

import (
	"errors"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"time"
)

type GraphQLConfig struct {
	MaxDepth         int           `json:"max_depth"`
	MaxParallelism   int           `json:"max_parallelism"`
	AllowGet         bool          `json:"allow_get"`
	GraphiQL         bool          `json:"graphiql"`    // 浏览器访问时返回 GraphiQL 页面
	LoaderWait       string        `json:"loader_wait"` // 批量加载等待窗口
	LoaderDuration   time.Duration `json:"-"`
	LoaderBatchLimit int           `json:"loader_batch_limit"`
}

func defaultGraphQLConfig() *GraphQLConfig {
	return &GraphQLConfig{
		MaxDepth:         8,
		MaxParallelism:   10,
		AllowGet:         true,
		GraphiQL:         true,
		LoaderWait:       "2ms",
		LoaderBatchLimit: 100,
	}
}

func (config *GraphQLConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.MaxDepth <= 0 {
		return ValidFail(errors.New("invalid json field http_server.graphql.max_depth, value must larger than 0"))
	}
	if config.MaxParallelism <= 0 {
		return ValidFail(errors.New("invalid json field http_server.graphql.max_parallelism, value must larger than 0"))
	}
	if duration, err := time.ParseDuration(config.LoaderWait); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.graphql.loader_wait"), err)
	} else {
		config.LoaderDuration = duration
	}
	if config.LoaderBatchLimit < 0 {
		return ValidFail(errors.New("invalid json field http_server.graphql.loader_batch_limit, value must not be negative"))
	}
	return ValidPass()
}
