// Package service
package service

import (
	"context"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
	"time"
)

type FlyServiceInterface interface {
	GetFlyById(ctx context.Context, req *RequestFlyById) (*operation.Fly, error)
	GetAllFlys(ctx context.Context) ([]*operation.Fly, error)
	// GetDailyFlys 日期在 [date, date+1天] 内的飞行记录
	GetDailyFlys(ctx context.Context, date time.Time) ([]*operation.Fly, error)
	// GetWeeklyFlys 日期在 [date, date+7天] 内的飞行记录
	GetWeeklyFlys(ctx context.Context, date time.Time) ([]*operation.Fly, error)
	// GetFlysByDate 日期在 [from, to] 内的飞行记录
	GetFlysByDate(ctx context.Context, req *RequestFlysByDate) ([]*operation.Fly, error)
	AddFly(ctx context.Context, req *RequestAddFly) (*operation.Fly, error)
	ChangeFly(ctx context.Context, req *RequestChangeFly) (*operation.Fly, error)
	DeleteFly(ctx context.Context, req *RequestDeleteFly) (*operation.Fly, error)
}

type RequestFlyById struct {
	ID string
}

type RequestFlysByDate struct {
	From time.Time
	To   time.Time
}

type RequestAddFly struct {
	AuthorId string
	Date     time.Time
	Duration int
	PlaneId  string
}

type RequestChangeFly struct {
	FlyId    string
	Date     *time.Time
	Duration *int
	PlaneId  *string
}

type RequestDeleteFly struct {
	FlyId    string
	AuthorId string
}
