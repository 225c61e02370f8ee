// Package database
package database

import (
	"context"
	"fmt"
	. "github.com/half-nothing/flylog/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

var _ PlaneOperationInterface = (*PlaneOperation)(nil)

type PlaneOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewPlaneOperation(db *gorm.DB, queryTimeout time.Duration) *PlaneOperation {
	return &PlaneOperation{db: db, queryTimeout: queryTimeout}
}

func (planeOperation *PlaneOperation) NewPlane(name string) *Plane {
	return &Plane{Name: name}
}

func (planeOperation *PlaneOperation) AddPlane(ctx context.Context, plane *Plane) error {
	ctx, cancel := context.WithTimeout(ctx, planeOperation.queryTimeout)
	defer cancel()
	return planeOperation.db.WithContext(ctx).Create(plane).Error
}

func (planeOperation *PlaneOperation) GetPlanes(ctx context.Context) (planes []*Plane, err error) {
	planes = make([]*Plane, 0)
	ctx, cancel := context.WithTimeout(ctx, planeOperation.queryTimeout)
	defer cancel()
	err = planeOperation.db.WithContext(ctx).Order("created_at").Find(&planes).Error
	return
}

func (planeOperation *PlaneOperation) GetPlanesByIds(ctx context.Context, ids []string) (planes []*Plane, err error) {
	planes = make([]*Plane, 0, len(ids))
	if len(ids) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, planeOperation.queryTimeout)
	defer cancel()
	err = planeOperation.db.WithContext(ctx).Where("id IN ?", ids).Find(&planes).Error
	return
}

func (planeOperation *PlaneOperation) DeletePlane(ctx context.Context, id string) (plane *Plane, err error) {
	plane = &Plane{}
	ctx, cancel := context.WithTimeout(ctx, planeOperation.queryTimeout)
	defer cancel()
	err = planeOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(plane).Error; err != nil {
			return notFound(err, ErrPlaneNotFound)
		}
		if err := tx.Delete(plane).Error; err != nil {
			return fmt.Errorf("fail to delete plane %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return
}
