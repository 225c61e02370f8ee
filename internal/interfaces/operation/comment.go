// Package operation
package operation

import (
	"context"
	"errors"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
)

// CommentOperationInterface 评论操作接口定义, 评论创建后不可修改
type CommentOperationInterface interface {
	NewComment(comment, flyId, authorId string) (c *Comment)
	AddComment(ctx context.Context, comment *Comment) (err error)
	GetComments(ctx context.Context) (comments []*Comment, err error)
	// GetCommentsByFlyIds 获取指定飞行记录们的所有评论
	GetCommentsByFlyIds(ctx context.Context, flyIds []string) (comments []*Comment, err error)
	// DeleteComment 删除评论, 不存在时返回 ErrCommentNotFound
	DeleteComment(ctx context.Context, id string) (comment *Comment, err error)
}
