// Package controller
package controller

import (
	_ "embed"
	"encoding/json"
	"github.com/half-nothing/flylog/internal/graph"
	c "github.com/half-nothing/flylog/internal/interfaces/config"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	. "github.com/half-nothing/flylog/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"net/http"
	"strings"
	"time"
)

//go:embed graphiql.html
var graphiqlPage []byte

// RequestRecorder 记录请求指标, 未启用指标时使用空实现
type RequestRecorder interface {
	RecordRequest(operation, status string, duration time.Duration)
	RecordError(code string)
}

type nopRecorder struct{}

func (nopRecorder) RecordRequest(string, string, time.Duration) {}

func (nopRecorder) RecordError(string) {}

type GraphQLController struct {
	logger   log.LoggerInterface
	schema   *graph.Schema
	recorder RequestRecorder
	allowGet bool
	graphiql bool
}

func NewGraphQLController(logger log.LoggerInterface, schema *graph.Schema, recorder RequestRecorder, config *c.GraphQLConfig) *GraphQLController {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &GraphQLController{
		logger:   logger,
		schema:   schema,
		recorder: recorder,
		allowGet: config.AllowGet,
		graphiql: config.GraphiQL,
	}
}

type errorBody struct {
	Message    string                 `json:"message"`
	Extensions map[string]interface{} `json:"extensions"`
}

// newErrorResponse 以 GraphQL 错误格式返回请求级错误
func newErrorResponse(ctx echo.Context, status *ApiStatus) error {
	return ctx.JSON(status.HttpCode.Code(), map[string]interface{}{
		"errors": []errorBody{{Message: status.Description, Extensions: status.Extensions()}},
	})
}

var (
	ErrGetDisabled   = ApiStatus{StatusName: "METHOD_NOT_ALLOWED", Description: "GET requests are disabled, use POST", HttpCode: MethodNotAllowed}
	ErrMutationByGet = ApiStatus{StatusName: "METHOD_NOT_ALLOWED", Description: "mutations must be sent with POST", HttpCode: MethodNotAllowed}
	ErrBadVariables  = ApiStatus{StatusName: "BAD_REQUEST", Description: "variables must be a JSON object", HttpCode: BadRequest}
)

const (
	operationQuery    = "query"
	operationMutation = "mutation"
)

func (controller *GraphQLController) PostQuery(ctx echo.Context) error {
	data := &graph.Request{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.DebugF("error binding graphql request: %v", err)
		return newErrorResponse(ctx, &ErrBadEnvelope)
	}
	return controller.execute(ctx, data)
}

// wantsGraphiQL 浏览器直接打开端点时没有 query 参数且接受 html
func (controller *GraphQLController) wantsGraphiQL(ctx echo.Context) bool {
	if !controller.graphiql || ctx.QueryParam("query") != "" {
		return false
	}
	return strings.Contains(ctx.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

func (controller *GraphQLController) GetQuery(ctx echo.Context) error {
	if controller.wantsGraphiQL(ctx) {
		return ctx.HTMLBlob(http.StatusOK, graphiqlPage)
	}
	if !controller.allowGet {
		return newErrorResponse(ctx, &ErrGetDisabled)
	}
	data := &graph.Request{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.DebugF("error binding graphql request: %v", err)
		return newErrorResponse(ctx, &ErrBadEnvelope)
	}
	if variables := ctx.QueryParam("variables"); variables != "" {
		if err := json.Unmarshal([]byte(variables), &data.Variables); err != nil {
			return newErrorResponse(ctx, &ErrBadVariables)
		}
	}
	if controller.schema.IsMutation(data) {
		return newErrorResponse(ctx, &ErrMutationByGet)
	}
	return controller.execute(ctx, data)
}

func (controller *GraphQLController) execute(ctx echo.Context, data *graph.Request) error {
	if data.Query == "" {
		return newErrorResponse(ctx, &ErrQueryMissing)
	}
	operation := operationQuery
	if controller.schema.IsMutation(data) {
		operation = operationMutation
	}

	start := time.Now()
	response := controller.schema.Exec(ctx.Request().Context(), data)
	status := "ok"
	if len(response.Errors) > 0 {
		status = "error"
		for _, err := range response.Errors {
			code, _ := err.Extensions["code"].(string)
			controller.recorder.RecordError(code)
		}
	}
	controller.recorder.RecordRequest(operation, status, time.Since(start))
	return ctx.JSON(http.StatusOK, response)
}
