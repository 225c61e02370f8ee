// Package graph
package graph

import (
	"context"
	"github.com/graph-gophers/dataloader/v7"
	c "github.com/half-nothing/flylog/internal/interfaces/config"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
	"github.com/half-nothing/flylog/internal/interfaces/service"
	"github.com/samber/lo"
)

type loadersKey struct{}

// BatchObserver 记录每次批量加载的键数量
type BatchObserver interface {
	ObserveBatch(loader string, size int)
}

type nopBatchObserver struct{}

func (nopBatchObserver) ObserveBatch(string, int) {}

// Loaders 单个请求内的批量加载器, 缓存只在请求生命周期内有效
type Loaders struct {
	UserById        *dataloader.Loader[string, *operation.User]
	FlyById         *dataloader.Loader[string, *operation.Fly]
	PlaneById       *dataloader.Loader[string, *operation.Plane]
	FlysByAuthorId  *dataloader.Loader[string, []*operation.Fly]
	FlysByPlaneId   *dataloader.Loader[string, []*operation.Fly]
	CommentsByFlyId *dataloader.Loader[string, []*operation.Comment]
}

type LoaderFactory struct {
	logger     log.LoggerInterface
	operations *operation.DatabaseOperations
	config     *c.GraphQLConfig
	observer   BatchObserver
}

func NewLoaderFactory(
	logger log.LoggerInterface,
	operations *operation.DatabaseOperations,
	config *c.GraphQLConfig,
	observer BatchObserver,
) *LoaderFactory {
	if observer == nil {
		observer = nopBatchObserver{}
	}
	return &LoaderFactory{
		logger:     logger,
		operations: operations,
		config:     config,
		observer:   observer,
	}
}

func newLoader[V any](factory *LoaderFactory, batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	options := []dataloader.Option[string, V]{dataloader.WithWait[string, V](factory.config.LoaderDuration)}
	if factory.config.LoaderBatchLimit > 0 {
		options = append(options, dataloader.WithBatchCapacity[string, V](factory.config.LoaderBatchLimit))
	}
	return dataloader.NewBatchedLoader(batchFn, options...)
}

// batchOne 按主键批量加载, 不存在的键返回 nil
func batchOne[V any](
	factory *LoaderFactory,
	name string,
	fetch func(ctx context.Context, keys []string) ([]*V, error),
	key func(value *V) string,
) dataloader.BatchFunc[string, *V] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*V] {
		factory.observer.ObserveBatch(name, len(keys))
		values, err := fetch(ctx, keys)
		if err != nil {
			return failAll(factory, name, keys, err, func(err error) *dataloader.Result[*V] {
				return &dataloader.Result[*V]{Error: err}
			})
		}
		byKey := lo.KeyBy(values, key)
		return lo.Map(keys, func(k string, _ int) *dataloader.Result[*V] {
			return &dataloader.Result[*V]{Data: byKey[k]}
		})
	}
}

// batchMany 按外键批量加载, 没有子记录的键返回空列表
func batchMany[V any](
	factory *LoaderFactory,
	name string,
	fetch func(ctx context.Context, keys []string) ([]*V, error),
	key func(value *V) string,
) dataloader.BatchFunc[string, []*V] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[[]*V] {
		factory.observer.ObserveBatch(name, len(keys))
		values, err := fetch(ctx, keys)
		if err != nil {
			return failAll(factory, name, keys, err, func(err error) *dataloader.Result[[]*V] {
				return &dataloader.Result[[]*V]{Error: err}
			})
		}
		grouped := lo.GroupBy(values, key)
		return lo.Map(keys, func(k string, _ int) *dataloader.Result[[]*V] {
			children, ok := grouped[k]
			if !ok {
				children = make([]*V, 0)
			}
			return &dataloader.Result[[]*V]{Data: children}
		})
	}
}

func failAll[R any](factory *LoaderFactory, name string, keys []string, err error, result func(error) R) []R {
	factory.logger.ErrorF("Batch load %s of %d keys failed: %v", name, len(keys), err)
	return lo.Map(keys, func(_ string, _ int) R {
		return result(&service.ErrDatabaseFail)
	})
}

func (factory *LoaderFactory) NewLoaders() *Loaders {
	userOperation := factory.operations.UserOperation()
	flyOperation := factory.operations.FlyOperation()
	planeOperation := factory.operations.PlaneOperation()
	commentOperation := factory.operations.CommentOperation()

	userId := func(user *operation.User) string { return user.ID }
	flyId := func(fly *operation.Fly) string { return fly.ID }
	planeId := func(plane *operation.Plane) string { return plane.ID }
	flyAuthor := func(fly *operation.Fly) string { return fly.AuthorId }
	flyPlane := func(fly *operation.Fly) string { return fly.PlaneId }
	commentFly := func(comment *operation.Comment) string { return comment.FlyId }

	return &Loaders{
		UserById:        newLoader(factory, batchOne(factory, "user_by_id", userOperation.GetUsersByIds, userId)),
		FlyById:         newLoader(factory, batchOne(factory, "fly_by_id", flyOperation.GetFlysByIds, flyId)),
		PlaneById:       newLoader(factory, batchOne(factory, "plane_by_id", planeOperation.GetPlanesByIds, planeId)),
		FlysByAuthorId:  newLoader(factory, batchMany(factory, "flys_by_author_id", flyOperation.GetFlysByAuthorIds, flyAuthor)),
		FlysByPlaneId:   newLoader(factory, batchMany(factory, "flys_by_plane_id", flyOperation.GetFlysByPlaneIds, flyPlane)),
		CommentsByFlyId: newLoader(factory, batchMany(factory, "comments_by_fly_id", commentOperation.GetCommentsByFlyIds, commentFly)),
	}
}

func WithLoaders(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey{}, loaders)
}

func LoadersFrom(ctx context.Context) (*Loaders, bool) {
	loaders, ok := ctx.Value(loadersKey{}).(*Loaders)
	return loaders, ok
}
