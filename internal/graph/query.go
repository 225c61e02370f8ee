// Package graph
package graph

import (
	"context"
	"github.com/graph-gophers/graphql-go"
	"github.com/half-nothing/flylog/internal/interfaces/service"
)

func (r *Resolver) GetUserByToken(ctx context.Context, args struct{ Token string }) (*UserResolver, error) {
	user, err := r.userService.GetUserByToken(ctx, &service.RequestUserByToken{Token: args.Token})
	if err != nil {
		return nil, err
	}
	return r.newUser(user), nil
}

func (r *Resolver) GetUserById(ctx context.Context, args struct{ ID graphql.ID }) (*UserResolver, error) {
	user, err := r.userService.GetUserById(ctx, &service.RequestUserById{ID: string(args.ID)})
	if err != nil {
		return nil, err
	}
	return r.newUser(user), nil
}

func (r *Resolver) GetAllUsers(ctx context.Context) ([]*UserResolver, error) {
	users, err := r.userService.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	return r.newUsers(users), nil
}

func (r *Resolver) GetFlyById(ctx context.Context, args struct{ ID graphql.ID }) (*FlyResolver, error) {
	fly, err := r.flyService.GetFlyById(ctx, &service.RequestFlyById{ID: string(args.ID)})
	if err != nil {
		return nil, err
	}
	return r.newFly(fly), nil
}

func (r *Resolver) GetAllFlys(ctx context.Context) ([]*FlyResolver, error) {
	flys, err := r.flyService.GetAllFlys(ctx)
	if err != nil {
		return nil, err
	}
	return r.newFlys(flys), nil
}

type dateArgs struct {
	Date DateTime
}

type rangeArgs struct {
	From DateTime
	To   DateTime
}

func (r *Resolver) GetDailyFlys(ctx context.Context, args dateArgs) ([]*FlyResolver, error) {
	flys, err := r.flyService.GetDailyFlys(ctx, args.Date.Time)
	if err != nil {
		return nil, err
	}
	return r.newFlys(flys), nil
}

func (r *Resolver) GetWeeklyFlys(ctx context.Context, args dateArgs) ([]*FlyResolver, error) {
	flys, err := r.flyService.GetWeeklyFlys(ctx, args.Date.Time)
	if err != nil {
		return nil, err
	}
	return r.newFlys(flys), nil
}

func (r *Resolver) GetFlysByDate(ctx context.Context, args rangeArgs) ([]*FlyResolver, error) {
	flys, err := r.flyService.GetFlysByDate(ctx, &service.RequestFlysByDate{From: args.From.Time, To: args.To.Time})
	if err != nil {
		return nil, err
	}
	return r.newFlys(flys), nil
}

// GetFlyByDay 旧名称, 等价于 GetDailyFlys
func (r *Resolver) GetFlyByDay(ctx context.Context, args dateArgs) ([]*FlyResolver, error) {
	return r.GetDailyFlys(ctx, args)
}

// GetFlyByDate 旧名称, 等价于 GetFlysByDate
func (r *Resolver) GetFlyByDate(ctx context.Context, args rangeArgs) ([]*FlyResolver, error) {
	return r.GetFlysByDate(ctx, args)
}

func (r *Resolver) GetComments(ctx context.Context) ([]*CommentResolver, error) {
	comments, err := r.commentService.GetComments(ctx)
	if err != nil {
		return nil, err
	}
	return r.newComments(comments), nil
}

func (r *Resolver) GetAllPlanes(ctx context.Context) ([]*PlaneResolver, error) {
	planes, err := r.planeService.GetAllPlanes(ctx)
	if err != nil {
		return nil, err
	}
	return r.newPlanes(planes), nil
}
