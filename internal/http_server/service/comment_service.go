// Package service
package service

import (
	"context"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
	. "github.com/half-nothing/flylog/internal/interfaces/service"
)

var _ CommentServiceInterface = (*CommentService)(nil)

type CommentService struct {
	logger           log.LoggerInterface
	commentOperation operation.CommentOperationInterface
}

func NewCommentService(logger log.LoggerInterface, commentOperation operation.CommentOperationInterface) *CommentService {
	return &CommentService{
		logger:           logger,
		commentOperation: commentOperation,
	}
}

func (commentService *CommentService) GetComments(ctx context.Context) ([]*operation.Comment, error) {
	return CallDBListFuncAndCheckError(commentService.logger, func() ([]*operation.Comment, error) {
		return commentService.commentOperation.GetComments(ctx)
	})
}

func (commentService *CommentService) AddComment(ctx context.Context, req *RequestAddComment) (*operation.Comment, error) {
	if res := commentValidator.CheckString(req.Comment); res != nil {
		return nil, res
	}
	if req.FlyId == "" || req.AuthorId == "" {
		return nil, ErrIdMissing
	}
	comment := commentService.commentOperation.NewComment(req.Comment, req.FlyId, req.AuthorId)
	return CallDBFuncAndCheckError(commentService.logger, nil, func() (*operation.Comment, error) {
		return comment, commentService.commentOperation.AddComment(ctx, comment)
	})
}

func (commentService *CommentService) DeleteComment(ctx context.Context, req *RequestDeleteComment) (*operation.Comment, error) {
	if req.CommentId == "" {
		return nil, nil
	}
	return CallDBFuncAndCheckError(commentService.logger, operation.ErrCommentNotFound, func() (*operation.Comment, error) {
		return commentService.commentOperation.DeleteComment(ctx, req.CommentId)
	})
}
