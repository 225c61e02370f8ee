// Package database
package database

import (
	"context"
	"fmt"
	. "github.com/half-nothing/flylog/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

var _ CommentOperationInterface = (*CommentOperation)(nil)

type CommentOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewCommentOperation(db *gorm.DB, queryTimeout time.Duration) *CommentOperation {
	return &CommentOperation{db: db, queryTimeout: queryTimeout}
}

func (commentOperation *CommentOperation) NewComment(comment, flyId, authorId string) *Comment {
	return &Comment{
		Comment:  comment,
		FlyId:    flyId,
		AuthorId: authorId,
	}
}

func (commentOperation *CommentOperation) AddComment(ctx context.Context, comment *Comment) error {
	ctx, cancel := context.WithTimeout(ctx, commentOperation.queryTimeout)
	defer cancel()
	return commentOperation.db.WithContext(ctx).Create(comment).Error
}

func (commentOperation *CommentOperation) GetComments(ctx context.Context) (comments []*Comment, err error) {
	comments = make([]*Comment, 0)
	ctx, cancel := context.WithTimeout(ctx, commentOperation.queryTimeout)
	defer cancel()
	err = commentOperation.db.WithContext(ctx).Order("created_at").Find(&comments).Error
	return
}

func (commentOperation *CommentOperation) GetCommentsByFlyIds(ctx context.Context, flyIds []string) (comments []*Comment, err error) {
	comments = make([]*Comment, 0, len(flyIds))
	if len(flyIds) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, commentOperation.queryTimeout)
	defer cancel()
	err = commentOperation.db.WithContext(ctx).
		Where("fly_id IN ?", flyIds).
		Order("created_at").
		Find(&comments).Error
	return
}

func (commentOperation *CommentOperation) DeleteComment(ctx context.Context, id string) (comment *Comment, err error) {
	comment = &Comment{}
	ctx, cancel := context.WithTimeout(ctx, commentOperation.queryTimeout)
	defer cancel()
	err = commentOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(comment).Error; err != nil {
			return notFound(err, ErrCommentNotFound)
		}
		if err := tx.Delete(comment).Error; err != nil {
			return fmt.Errorf("fail to delete comment %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return
}
