// Package controller
package controller

import (
	"github.com/labstack/echo/v4"
)

type GraphQLControllerInterface interface {
	PostQuery(ctx echo.Context) error
	GetQuery(ctx echo.Context) error
}

type HealthControllerInterface interface {
	Health(ctx echo.Context) error
}
