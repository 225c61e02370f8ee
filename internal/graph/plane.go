// Package graph
package graph

import (
	"context"
	"github.com/graph-gophers/graphql-go"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
)

type PlaneResolver struct {
	root  *Resolver
	plane *operation.Plane
}

func (r *Resolver) newPlane(plane *operation.Plane) *PlaneResolver {
	if plane == nil {
		return nil
	}
	return &PlaneResolver{root: r, plane: plane}
}

func (r *Resolver) newPlanes(planes []*operation.Plane) []*PlaneResolver {
	result := make([]*PlaneResolver, 0, len(planes))
	for _, plane := range planes {
		result = append(result, r.newPlane(plane))
	}
	return result
}

func (p *PlaneResolver) ID() graphql.ID { return graphql.ID(p.plane.ID) }

func (p *PlaneResolver) Name() string { return p.plane.Name }

func (p *PlaneResolver) Flys(ctx context.Context) ([]*FlyResolver, error) {
	flys, err := p.root.loaders(ctx).FlysByPlaneId.Load(ctx, p.plane.ID)()
	if err != nil {
		return nil, err
	}
	return p.root.newFlys(flys), nil
}
