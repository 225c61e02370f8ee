// Package service
package service

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	NotFound            HttpCode = 404
	MethodNotAllowed    HttpCode = 405
	TooManyRequests     HttpCode = 429
	ServerInternalError HttpCode = 500
	ServiceUnavailable  HttpCode = 503
)

func (hc HttpCode) Code() int {
	return int(hc)
}

// ApiStatus 业务状态, 同时作为GraphQL错误返回, StatusName 写入 extensions.code
type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

func (status *ApiStatus) Error() string {
	return status.Description
}

func (status *ApiStatus) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": status.StatusName}
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

type Claims struct {
	Uid string `json:"uid"`
	jwt.RegisteredClaims
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam   = ApiStatus{"INVALID_ARGUMENT", "invalid argument", BadRequest}
	ErrDatabaseFail   = ApiStatus{"DATABASE_ERROR", "internal server error", ServerInternalError}
	ErrPasswordEncode = ApiStatus{"PASSWORD_ENCODE_ERROR", "internal server error", ServerInternalError}
	ErrTokenIssue     = ApiStatus{"TOKEN_ISSUE_ERROR", "internal server error", ServerInternalError}
	ErrRateLimit      = ApiStatus{"RATE_LIMIT_EXCEEDED", "too many requests, please try again later", TooManyRequests}
	ErrBadEnvelope    = ApiStatus{"BAD_REQUEST", "request body must be a GraphQL request object", BadRequest}
	ErrQueryMissing   = ApiStatus{"QUERY_MISSING", "query must not be empty", BadRequest}
	ErrDatabaseDown   = ApiStatus{"DATABASE_UNAVAILABLE", "database unavailable", ServiceUnavailable}
	SuccessHealth     = ApiStatus{"OK", "service healthy", Ok}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

// CallDBFuncAndCheckError 调用数据库操作函数并处理错误, notFound 命中时返回 (nil, nil)
func CallDBFuncAndCheckError[R any](logger log.LoggerInterface, notFound error, fc func() (*R, error)) (*R, error) {
	result, err := fc()
	switch {
	case err == nil:
		return result, nil
	case notFound != nil && errors.Is(err, notFound):
		return nil, nil
	case errors.Is(err, operation.ErrPasswordEncode):
		logger.ErrorF("Password encode failed: %v", err)
		return nil, &ErrPasswordEncode
	default:
		logger.ErrorF("Error in DB function: %v", err)
		return nil, &ErrDatabaseFail
	}
}

// CallDBListFuncAndCheckError 列表查询版本, 不存在notFound语义
func CallDBListFuncAndCheckError[R any](logger log.LoggerInterface, fc func() ([]*R, error)) ([]*R, error) {
	result, err := fc()
	if err != nil {
		logger.ErrorF("Error in DB function: %v", err)
		return nil, &ErrDatabaseFail
	}
	return result, nil
}
