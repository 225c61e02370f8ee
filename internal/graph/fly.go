// Package graph
package graph

import (
	"context"
	"github.com/graph-gophers/graphql-go"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
)

type FlyResolver struct {
	root *Resolver
	fly  *operation.Fly
}

func (r *Resolver) newFly(fly *operation.Fly) *FlyResolver {
	if fly == nil {
		return nil
	}
	return &FlyResolver{root: r, fly: fly}
}

func (r *Resolver) newFlys(flys []*operation.Fly) []*FlyResolver {
	result := make([]*FlyResolver, 0, len(flys))
	for _, fly := range flys {
		result = append(result, r.newFly(fly))
	}
	return result
}

func (f *FlyResolver) ID() graphql.ID { return graphql.ID(f.fly.ID) }

func (f *FlyResolver) Date() DateTime { return DateTime{f.fly.Date} }

func (f *FlyResolver) Duration() int32 { return int32(f.fly.Duration) }

func (f *FlyResolver) AuthorID() graphql.ID { return graphql.ID(f.fly.AuthorId) }

func (f *FlyResolver) PlaneID() graphql.ID { return graphql.ID(f.fly.PlaneId) }

func (f *FlyResolver) Author(ctx context.Context) (*UserResolver, error) {
	if f.fly.AuthorId == "" {
		return nil, nil
	}
	user, err := f.root.loaders(ctx).UserById.Load(ctx, f.fly.AuthorId)()
	if err != nil {
		return nil, err
	}
	return f.root.newUser(user), nil
}

func (f *FlyResolver) Plane(ctx context.Context) (*PlaneResolver, error) {
	if f.fly.PlaneId == "" {
		return nil, nil
	}
	plane, err := f.root.loaders(ctx).PlaneById.Load(ctx, f.fly.PlaneId)()
	if err != nil {
		return nil, err
	}
	return f.root.newPlane(plane), nil
}

func (f *FlyResolver) Comments(ctx context.Context) ([]*CommentResolver, error) {
	comments, err := f.root.loaders(ctx).CommentsByFlyId.Load(ctx, f.fly.ID)()
	if err != nil {
		return nil, err
	}
	return f.root.newComments(comments), nil
}
