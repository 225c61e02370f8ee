// Package graph
package graph

import (
	"context"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"github.com/half-nothing/flylog/internal/interfaces/service"
)

// Resolver 根解析器, 同时承载 Query 与 Mutation 字段
type Resolver struct {
	logger         log.LoggerInterface
	userService    service.UserServiceInterface
	flyService     service.FlyServiceInterface
	commentService service.CommentServiceInterface
	planeService   service.PlaneServiceInterface
	loaderFactory  *LoaderFactory
}

func NewResolver(
	logger log.LoggerInterface,
	userService service.UserServiceInterface,
	flyService service.FlyServiceInterface,
	commentService service.CommentServiceInterface,
	planeService service.PlaneServiceInterface,
	loaderFactory *LoaderFactory,
) *Resolver {
	return &Resolver{
		logger:         logger,
		userService:    userService,
		flyService:     flyService,
		commentService: commentService,
		planeService:   planeService,
		loaderFactory:  loaderFactory,
	}
}

// loaders 优先使用请求上下文中的加载器, 缺失时临时创建
func (r *Resolver) loaders(ctx context.Context) *Loaders {
	if loaders, ok := LoadersFrom(ctx); ok {
		return loaders
	}
	r.logger.Debug("No loaders attached to request context, creating a private set")
	return r.loaderFactory.NewLoaders()
}
