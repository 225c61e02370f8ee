// Package operation
package operation

import (
	"context"
	"errors"
)

var (
	ErrPlaneNotFound = errors.New("plane not found")
)

// PlaneOperationInterface 飞机操作接口定义, 飞机创建后不可修改
type PlaneOperationInterface interface {
	NewPlane(name string) (plane *Plane)
	AddPlane(ctx context.Context, plane *Plane) (err error)
	GetPlanes(ctx context.Context) (planes []*Plane, err error)
	GetPlanesByIds(ctx context.Context, ids []string) (planes []*Plane, err error)
	// DeletePlane 删除飞机, 不存在时返回 ErrPlaneNotFound
	DeletePlane(ctx context.Context, id string) (plane *Plane, err error)
}
