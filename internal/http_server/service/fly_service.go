// Package service
package service

import (
	"context"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
	. "github.com/half-nothing/flylog/internal/interfaces/service"
	"time"
)

var _ FlyServiceInterface = (*FlyService)(nil)

type FlyService struct {
	logger       log.LoggerInterface
	flyOperation operation.FlyOperationInterface
}

func NewFlyService(logger log.LoggerInterface, flyOperation operation.FlyOperationInterface) *FlyService {
	return &FlyService{
		logger:       logger,
		flyOperation: flyOperation,
	}
}

func (flyService *FlyService) GetFlyById(ctx context.Context, req *RequestFlyById) (*operation.Fly, error) {
	if req.ID == "" {
		return nil, nil
	}
	return CallDBFuncAndCheckError(flyService.logger, operation.ErrFlyNotFound, func() (*operation.Fly, error) {
		return flyService.flyOperation.GetFlyById(ctx, req.ID)
	})
}

func (flyService *FlyService) GetAllFlys(ctx context.Context) ([]*operation.Fly, error) {
	return CallDBListFuncAndCheckError(flyService.logger, func() ([]*operation.Fly, error) {
		return flyService.flyOperation.GetFlys(ctx)
	})
}

func (flyService *FlyService) getFlysBetween(ctx context.Context, from, to time.Time) ([]*operation.Fly, error) {
	return CallDBListFuncAndCheckError(flyService.logger, func() ([]*operation.Fly, error) {
		return flyService.flyOperation.GetFlysBetween(ctx, from, to)
	})
}

// DailyWindow 返回 [date, date+1天], 按日历日相加
func DailyWindow(date time.Time) (time.Time, time.Time) {
	return date, date.AddDate(0, 0, 1)
}

// WeeklyWindow 返回 [date, date+7天], 按日历日相加
func WeeklyWindow(date time.Time) (time.Time, time.Time) {
	return date, date.AddDate(0, 0, 7)
}

func (flyService *FlyService) GetDailyFlys(ctx context.Context, date time.Time) ([]*operation.Fly, error) {
	from, to := DailyWindow(date)
	return flyService.getFlysBetween(ctx, from, to)
}

func (flyService *FlyService) GetWeeklyFlys(ctx context.Context, date time.Time) ([]*operation.Fly, error) {
	from, to := WeeklyWindow(date)
	return flyService.getFlysBetween(ctx, from, to)
}

func (flyService *FlyService) GetFlysByDate(ctx context.Context, req *RequestFlysByDate) ([]*operation.Fly, error) {
	if req.From.After(req.To) {
		return make([]*operation.Fly, 0), nil
	}
	return flyService.getFlysBetween(ctx, req.From, req.To)
}

func (flyService *FlyService) AddFly(ctx context.Context, req *RequestAddFly) (*operation.Fly, error) {
	if req.Duration < 0 {
		return nil, ErrNegativeDuration
	}
	if req.AuthorId == "" {
		return nil, ErrIdMissing
	}
	fly := flyService.flyOperation.NewFly(req.AuthorId, req.Date, req.Duration, req.PlaneId)
	return CallDBFuncAndCheckError(flyService.logger, nil, func() (*operation.Fly, error) {
		return fly, flyService.flyOperation.AddFly(ctx, fly)
	})
}

func (flyService *FlyService) ChangeFly(ctx context.Context, req *RequestChangeFly) (*operation.Fly, error) {
	if req.FlyId == "" {
		return nil, ErrIdMissing
	}
	if req.Duration != nil && *req.Duration < 0 {
		return nil, ErrNegativeDuration
	}
	update := &operation.FlyUpdate{Date: req.Date, Duration: req.Duration, PlaneId: req.PlaneId}
	return CallDBFuncAndCheckError(flyService.logger, operation.ErrFlyNotFound, func() (*operation.Fly, error) {
		return flyService.flyOperation.UpdateFly(ctx, req.FlyId, update)
	})
}

func (flyService *FlyService) DeleteFly(ctx context.Context, req *RequestDeleteFly) (*operation.Fly, error) {
	if req.FlyId == "" {
		return nil, nil
	}
	fly, err := CallDBFuncAndCheckError(flyService.logger, operation.ErrFlyNotFound, func() (*operation.Fly, error) {
		return flyService.flyOperation.DeleteFly(ctx, req.FlyId, req.AuthorId)
	})
	if err == nil && fly == nil {
		flyService.logger.DebugF("Delete fly %s: nothing deleted", req.FlyId)
	}
	return fly, err
}
