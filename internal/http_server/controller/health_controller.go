// Package controller
package controller

import (
	"context"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	. "github.com/half-nothing/flylog/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"time"
)

type HealthController struct {
	logger log.LoggerInterface
	ping   func(ctx context.Context) error
}

func NewHealthController(logger log.LoggerInterface, ping func(ctx context.Context) error) *HealthController {
	return &HealthController{logger: logger, ping: ping}
}

func (controller *HealthController) Health(ctx echo.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx.Request().Context(), 3*time.Second)
	defer cancel()
	if err := controller.ping(timeoutCtx); err != nil {
		controller.logger.WarnF("Health check failed: %v", err)
		return NewErrorResponse(ctx, &ErrDatabaseDown)
	}
	return NewApiResponse[any](&SuccessHealth, Unsatisfied, nil).Response(ctx)
}
