// Package database
package database

import (
	"context"
	"fmt"
	. "github.com/half-nothing/flylog/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

var _ FlyOperationInterface = (*FlyOperation)(nil)

type FlyOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewFlyOperation(db *gorm.DB, queryTimeout time.Duration) *FlyOperation {
	return &FlyOperation{db: db, queryTimeout: queryTimeout}
}

func (flyOperation *FlyOperation) NewFly(authorId string, date time.Time, duration int, planeId string) (fly *Fly) {
	return &Fly{
		Date:     date.UTC(),
		Duration: duration,
		AuthorId: authorId,
		PlaneId:  planeId,
	}
}

func (flyOperation *FlyOperation) AddFly(ctx context.Context, fly *Fly) error {
	ctx, cancel := context.WithTimeout(ctx, flyOperation.queryTimeout)
	defer cancel()
	return flyOperation.db.WithContext(ctx).Create(fly).Error
}

func (flyOperation *FlyOperation) GetFlyById(ctx context.Context, id string) (fly *Fly, err error) {
	fly = &Fly{}
	ctx, cancel := context.WithTimeout(ctx, flyOperation.queryTimeout)
	defer cancel()
	err = flyOperation.db.WithContext(ctx).Where("id = ?", id).First(fly).Error
	if err != nil {
		return nil, notFound(err, ErrFlyNotFound)
	}
	return
}

func (flyOperation *FlyOperation) GetFlys(ctx context.Context) (flys []*Fly, err error) {
	flys = make([]*Fly, 0)
	ctx, cancel := context.WithTimeout(ctx, flyOperation.queryTimeout)
	defer cancel()
	err = flyOperation.db.WithContext(ctx).Order("created_at").Find(&flys).Error
	return
}

func (flyOperation *FlyOperation) GetFlysByIds(ctx context.Context, ids []string) (flys []*Fly, err error) {
	return flyOperation.findIn(ctx, "id", ids)
}

func (flyOperation *FlyOperation) GetFlysBetween(ctx context.Context, from, to time.Time) (flys []*Fly, err error) {
	flys = make([]*Fly, 0)
	ctx, cancel := context.WithTimeout(ctx, flyOperation.queryTimeout)
	defer cancel()
	err = flyOperation.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from.UTC(), to.UTC()).
		Order("date").
		Find(&flys).Error
	return
}

func (flyOperation *FlyOperation) GetFlysByAuthorIds(ctx context.Context, authorIds []string) (flys []*Fly, err error) {
	return flyOperation.findIn(ctx, "author_id", authorIds)
}

func (flyOperation *FlyOperation) GetFlysByPlaneIds(ctx context.Context, planeIds []string) (flys []*Fly, err error) {
	return flyOperation.findIn(ctx, "plane_id", planeIds)
}

func (flyOperation *FlyOperation) findIn(ctx context.Context, column string, values []string) (flys []*Fly, err error) {
	flys = make([]*Fly, 0, len(values))
	if len(values) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, flyOperation.queryTimeout)
	defer cancel()
	err = flyOperation.db.WithContext(ctx).
		Where(fmt.Sprintf("%s IN ?", column), values).
		Order("created_at").
		Find(&flys).Error
	return
}

func (flyOperation *FlyOperation) UpdateFly(ctx context.Context, id string, update *FlyUpdate) (fly *Fly, err error) {
	fly = &Fly{}
	ctx, cancel := context.WithTimeout(ctx, flyOperation.queryTimeout)
	defer cancel()
	err = flyOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(fly).Error; err != nil {
			return notFound(err, ErrFlyNotFound)
		}
		fields := update.Fields()
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(fly).Updates(fields).Error; err != nil {
			return fmt.Errorf("fail to update fly %s: %w", id, err)
		}
		update.ApplyTo(fly)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return
}

func (flyOperation *FlyOperation) DeleteFly(ctx context.Context, id string, authorId string) (fly *Fly, err error) {
	fly = &Fly{}
	ctx, cancel := context.WithTimeout(ctx, flyOperation.queryTimeout)
	defer cancel()
	err = flyOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("id = ?", id)
		if authorId != "" {
			query = query.Where("author_id = ?", authorId)
		}
		if err := query.First(fly).Error; err != nil {
			return notFound(err, ErrFlyNotFound)
		}
		// 评论保留为孤儿记录
		if err := tx.Delete(fly).Error; err != nil {
			return fmt.Errorf("fail to delete fly %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return
}
