// Package graph
package graph

import (
	"context"
	"github.com/graph-gophers/graphql-go"
	"github.com/half-nothing/flylog/internal/interfaces/service"
)

func (r *Resolver) Login(ctx context.Context, args struct {
	Email    string
	Password string
}) (*UserResolver, error) {
	user, err := r.userService.UserLogin(ctx, &service.RequestUserLogin{Email: args.Email, Password: args.Password})
	if err != nil {
		return nil, err
	}
	return r.newUser(user), nil
}

func (r *Resolver) AddUser(ctx context.Context, args struct {
	Name     string
	Email    string
	Password string
}) (*UserResolver, error) {
	user, err := r.userService.AddUser(ctx, &service.RequestAddUser{
		Name:     args.Name,
		Email:    args.Email,
		Password: args.Password,
	})
	if err != nil {
		return nil, err
	}
	return r.newUser(user), nil
}

func (r *Resolver) UpdateUser(ctx context.Context, args struct {
	ID       graphql.ID
	Name     *string
	Email    *string
	Password *string
}) (*UserResolver, error) {
	user, err := r.userService.UpdateUser(ctx, &service.RequestUpdateUser{
		ID:       string(args.ID),
		Name:     args.Name,
		Email:    args.Email,
		Password: args.Password,
	})
	if err != nil {
		return nil, err
	}
	return r.newUser(user), nil
}

func (r *Resolver) DeleteUserById(ctx context.Context, args struct{ ID graphql.ID }) (*UserResolver, error) {
	user, err := r.userService.DeleteUser(ctx, &service.RequestUserById{ID: string(args.ID)})
	if err != nil {
		return nil, err
	}
	return r.newUser(user), nil
}

func (r *Resolver) AddFly(ctx context.Context, args struct {
	AuthorID graphql.ID
	Date     DateTime
	Duration int32
	PlaneID  graphql.ID
}) (*FlyResolver, error) {
	fly, err := r.flyService.AddFly(ctx, &service.RequestAddFly{
		AuthorId: string(args.AuthorID),
		Date:     args.Date.Time,
		Duration: int(args.Duration),
		PlaneId:  string(args.PlaneID),
	})
	if err != nil {
		return nil, err
	}
	return r.newFly(fly), nil
}

func (r *Resolver) ChangeFly(ctx context.Context, args struct {
	FlyID    graphql.ID
	Date     *DateTime
	Duration *int32
	PlaneID  *graphql.ID
}) (*FlyResolver, error) {
	req := &service.RequestChangeFly{FlyId: string(args.FlyID)}
	if args.Date != nil {
		date := args.Date.Time
		req.Date = &date
	}
	if args.Duration != nil {
		duration := int(*args.Duration)
		req.Duration = &duration
	}
	if args.PlaneID != nil {
		planeId := string(*args.PlaneID)
		req.PlaneId = &planeId
	}
	fly, err := r.flyService.ChangeFly(ctx, req)
	if err != nil {
		return nil, err
	}
	return r.newFly(fly), nil
}

func (r *Resolver) DeleteFly(ctx context.Context, args struct {
	FlyID    graphql.ID
	AuthorID *graphql.ID
}) (*FlyResolver, error) {
	req := &service.RequestDeleteFly{FlyId: string(args.FlyID)}
	if args.AuthorID != nil {
		req.AuthorId = string(*args.AuthorID)
	}
	fly, err := r.flyService.DeleteFly(ctx, req)
	if err != nil {
		return nil, err
	}
	return r.newFly(fly), nil
}

func (r *Resolver) AddComment(ctx context.Context, args struct {
	Comment  string
	FlyID    graphql.ID
	AuthorID graphql.ID
}) (*CommentResolver, error) {
	comment, err := r.commentService.AddComment(ctx, &service.RequestAddComment{
		Comment:  args.Comment,
		FlyId:    string(args.FlyID),
		AuthorId: string(args.AuthorID),
	})
	if err != nil {
		return nil, err
	}
	return r.newComment(comment), nil
}

func (r *Resolver) DeleteComment(ctx context.Context, args struct{ CommentID graphql.ID }) (*CommentResolver, error) {
	comment, err := r.commentService.DeleteComment(ctx, &service.RequestDeleteComment{CommentId: string(args.CommentID)})
	if err != nil {
		return nil, err
	}
	return r.newComment(comment), nil
}

func (r *Resolver) AddPlane(ctx context.Context, args struct{ Name string }) (*PlaneResolver, error) {
	plane, err := r.planeService.AddPlane(ctx, &service.RequestAddPlane{Name: args.Name})
	if err != nil {
		return nil, err
	}
	return r.newPlane(plane), nil
}

func (r *Resolver) DeletePlane(ctx context.Context, args struct{ ID graphql.ID }) (*PlaneResolver, error) {
	plane, err := r.planeService.DeletePlane(ctx, &service.RequestDeletePlane{ID: string(args.ID)})
	if err != nil {
		return nil, err
	}
	return r.newPlane(plane), nil
}
