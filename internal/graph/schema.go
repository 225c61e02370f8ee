// Package graph
package graph

import (
	"context"
	_ "embed"
	"github.com/graph-gophers/graphql-go"
	c "github.com/half-nothing/flylog/internal/interfaces/config"
	"github.com/half-nothing/flylog/internal/interfaces/log"
)

//go:embed schema.graphql
var schemaString string

// Request GraphQL 请求体
type Request struct {
	Query         string                 `json:"query" query:"query"`
	OperationName string                 `json:"operationName" query:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type panicLogger struct {
	logger log.LoggerInterface
}

func (l *panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.logger.ErrorF("Recovered from panic in resolver: %v", value)
}

type Schema struct {
	schema        *graphql.Schema
	loaderFactory *LoaderFactory
}

func NewSchema(logger log.LoggerInterface, config *c.GraphQLConfig, resolver *Resolver) *Schema {
	schema := graphql.MustParseSchema(schemaString, resolver,
		graphql.MaxDepth(config.MaxDepth),
		graphql.MaxParallelism(config.MaxParallelism),
		graphql.Logger(&panicLogger{logger: logger}),
	)
	return &Schema{
		schema:        schema,
		loaderFactory: resolver.loaderFactory,
	}
}

// Exec 为每次请求创建独立的批量加载器后执行
func (s *Schema) Exec(ctx context.Context, req *Request) *graphql.Response {
	ctx = WithLoaders(ctx, s.loaderFactory.NewLoaders())
	return s.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
}

// IsMutation 判断请求中待执行的操作是否为 mutation
func (s *Schema) IsMutation(req *Request) bool {
	return isMutation(req.Query, req.OperationName)
}
