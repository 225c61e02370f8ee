// Package operation
package operation

import (
	"context"
	"errors"
	"time"
)

var (
	ErrFlyNotFound = errors.New("fly not found")
)

type FlyUpdate struct {
	Date     *time.Time
	Duration *int
	PlaneId  *string
}

func (update *FlyUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, 3)
	if update.Date != nil {
		fields["date"] = update.Date.UTC()
	}
	if update.Duration != nil {
		fields["duration"] = *update.Duration
	}
	if update.PlaneId != nil {
		fields["plane_id"] = *update.PlaneId
	}
	return fields
}

func (update *FlyUpdate) ApplyTo(fly *Fly) {
	if update.Date != nil {
		fly.Date = update.Date.UTC()
	}
	if update.Duration != nil {
		fly.Duration = *update.Duration
	}
	if update.PlaneId != nil {
		fly.PlaneId = *update.PlaneId
	}
}

// FlyOperationInterface 飞行记录操作接口定义
type FlyOperationInterface interface {
	// NewFly 创建飞行记录(不写入数据库)
	NewFly(authorId string, date time.Time, duration int, planeId string) (fly *Fly)
	// AddFly 写入飞行记录, 当err为nil时表示创建成功
	AddFly(ctx context.Context, fly *Fly) (err error)
	// GetFlyById 通过ID获取飞行记录, 当err为nil时返回值fly有效
	GetFlyById(ctx context.Context, id string) (fly *Fly, err error)
	// GetFlys 按创建顺序获取所有飞行记录
	GetFlys(ctx context.Context) (flys []*Fly, err error)
	// GetFlysByIds 批量获取飞行记录, 不存在的ID会被忽略
	GetFlysByIds(ctx context.Context, ids []string) (flys []*Fly, err error)
	// GetFlysBetween 获取日期在闭区间 [from, to] 内的飞行记录
	GetFlysBetween(ctx context.Context, from, to time.Time) (flys []*Fly, err error)
	// GetFlysByAuthorIds 获取指定作者们的所有飞行记录
	GetFlysByAuthorIds(ctx context.Context, authorIds []string) (flys []*Fly, err error)
	// GetFlysByPlaneIds 获取指定飞机们的所有飞行记录
	GetFlysByPlaneIds(ctx context.Context, planeIds []string) (flys []*Fly, err error)
	// UpdateFly 更新飞行记录, 当err为nil时返回更新后的记录
	UpdateFly(ctx context.Context, id string, update *FlyUpdate) (fly *Fly, err error)
	// DeleteFly 删除飞行记录, authorId 非空时只删除该作者的记录; 不存在时返回 ErrFlyNotFound
	DeleteFly(ctx context.Context, id string, authorId string) (fly *Fly, err error)
}
