// Package service
package service

import (
	"context"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
)

type CommentServiceInterface interface {
	GetComments(ctx context.Context) ([]*operation.Comment, error)
	AddComment(ctx context.Context, req *RequestAddComment) (*operation.Comment, error)
	DeleteComment(ctx context.Context, req *RequestDeleteComment) (*operation.Comment, error)
}

type RequestAddComment struct {
	Comment  string
	FlyId    string
	AuthorId string
}

type RequestDeleteComment struct {
	CommentId string
}
