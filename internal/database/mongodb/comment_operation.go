// Package mongodb
package mongodb

import (
	"context"
	. "github.com/half-nothing/flylog/internal/interfaces/operation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"time"
)

var _ CommentOperationInterface = (*CommentOperation)(nil)

type CommentOperation struct {
	comments *collection[Comment]
}

func NewCommentOperation(database *mongo.Database, queryTimeout time.Duration) *CommentOperation {
	return &CommentOperation{comments: newCollection[Comment](database, CommentCollection, queryTimeout, ErrCommentNotFound)}
}

func (commentOperation *CommentOperation) NewComment(comment, flyId, authorId string) *Comment {
	return &Comment{
		Comment:  comment,
		FlyId:    flyId,
		AuthorId: authorId,
	}
}

func (commentOperation *CommentOperation) AddComment(ctx context.Context, comment *Comment) error {
	if comment.ID == "" {
		comment.ID = newId()
	}
	comment.CreatedAt = time.Now().UTC()
	return commentOperation.comments.insert(ctx, comment)
}

func (commentOperation *CommentOperation) GetComments(ctx context.Context) ([]*Comment, error) {
	return commentOperation.comments.find(ctx, bson.M{}, sortByCreatedAt)
}

func (commentOperation *CommentOperation) GetCommentsByFlyIds(ctx context.Context, flyIds []string) ([]*Comment, error) {
	return commentOperation.comments.findIn(ctx, "fly_id", flyIds)
}

func (commentOperation *CommentOperation) DeleteComment(ctx context.Context, id string) (*Comment, error) {
	return commentOperation.comments.delete(ctx, bson.M{"_id": id})
}
