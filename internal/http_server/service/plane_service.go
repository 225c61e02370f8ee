// Package service
package service

import (
	"context"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
	. "github.com/half-nothing/flylog/internal/interfaces/service"
)

var _ PlaneServiceInterface = (*PlaneService)(nil)

type PlaneService struct {
	logger         log.LoggerInterface
	planeOperation operation.PlaneOperationInterface
}

func NewPlaneService(logger log.LoggerInterface, planeOperation operation.PlaneOperationInterface) *PlaneService {
	return &PlaneService{
		logger:         logger,
		planeOperation: planeOperation,
	}
}

func (planeService *PlaneService) GetAllPlanes(ctx context.Context) ([]*operation.Plane, error) {
	return CallDBListFuncAndCheckError(planeService.logger, func() ([]*operation.Plane, error) {
		return planeService.planeOperation.GetPlanes(ctx)
	})
}

func (planeService *PlaneService) AddPlane(ctx context.Context, req *RequestAddPlane) (*operation.Plane, error) {
	if res := planeValidator.CheckString(req.Name); res != nil {
		return nil, res
	}
	plane := planeService.planeOperation.NewPlane(req.Name)
	return CallDBFuncAndCheckError(planeService.logger, nil, func() (*operation.Plane, error) {
		return plane, planeService.planeOperation.AddPlane(ctx, plane)
	})
}

func (planeService *PlaneService) DeletePlane(ctx context.Context, req *RequestDeletePlane) (*operation.Plane, error) {
	if req.ID == "" {
		return nil, nil
	}
	return CallDBFuncAndCheckError(planeService.logger, operation.ErrPlaneNotFound, func() (*operation.Plane, error) {
		return planeService.planeOperation.DeletePlane(ctx, req.ID)
	})
}
