// Package graph
package graph

import (
	"context"
	"github.com/graph-gophers/graphql-go"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
)

type CommentResolver struct {
	root    *Resolver
	comment *operation.Comment
}

func (r *Resolver) newComment(comment *operation.Comment) *CommentResolver {
	if comment == nil {
		return nil
	}
	return &CommentResolver{root: r, comment: comment}
}

func (r *Resolver) newComments(comments []*operation.Comment) []*CommentResolver {
	result := make([]*CommentResolver, 0, len(comments))
	for _, comment := range comments {
		result = append(result, r.newComment(comment))
	}
	return result
}

func (c *CommentResolver) ID() graphql.ID { return graphql.ID(c.comment.ID) }

func (c *CommentResolver) Comment() string { return c.comment.Comment }

func (c *CommentResolver) AuthorID() graphql.ID { return graphql.ID(c.comment.AuthorId) }

func (c *CommentResolver) FlyID() graphql.ID { return graphql.ID(c.comment.FlyId) }

func (c *CommentResolver) Author(ctx context.Context) (*UserResolver, error) {
	if c.comment.AuthorId == "" {
		return nil, nil
	}
	user, err := c.root.loaders(ctx).UserById.Load(ctx, c.comment.AuthorId)()
	if err != nil {
		return nil, err
	}
	return c.root.newUser(user), nil
}

func (c *CommentResolver) Fly(ctx context.Context) (*FlyResolver, error) {
	if c.comment.FlyId == "" {
		return nil, nil
	}
	fly, err := c.root.loaders(ctx).FlyById.Load(ctx, c.comment.FlyId)()
	if err != nil {
		return nil, err
	}
	return c.root.newFly(fly), nil
}
