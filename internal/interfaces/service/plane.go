// Package service
package service

import (
	"context"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
)

type PlaneServiceInterface interface {
	GetAllPlanes(ctx context.Context) ([]*operation.Plane, error)
	AddPlane(ctx context.Context, req *RequestAddPlane) (*operation.Plane, error)
	DeletePlane(ctx context.Context, req *RequestDeletePlane) (*operation.Plane, error)
}

type RequestAddPlane struct {
	Name string
}

type RequestDeletePlane struct {
	ID string
}
