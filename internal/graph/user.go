// Package graph
package graph

import (
	"context"
	"github.com/graph-gophers/graphql-go"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
)

type UserResolver struct {
	root *Resolver
	user *operation.User
}

func (r *Resolver) newUser(user *operation.User) *UserResolver {
	if user == nil {
		return nil
	}
	return &UserResolver{root: r, user: user}
}

func (r *Resolver) newUsers(users []*operation.User) []*UserResolver {
	result := make([]*UserResolver, 0, len(users))
	for _, user := range users {
		result = append(result, r.newUser(user))
	}
	return result
}

func (u *UserResolver) ID() graphql.ID { return graphql.ID(u.user.ID) }

func (u *UserResolver) Email() string { return u.user.Email }

func (u *UserResolver) Name() string { return u.user.Name }

func (u *UserResolver) Token() string { return u.user.Token }

func (u *UserResolver) Role() string { return u.user.Role }

func (u *UserResolver) Flys(ctx context.Context) ([]*FlyResolver, error) {
	flys, err := u.root.loaders(ctx).FlysByAuthorId.Load(ctx, u.user.ID)()
	if err != nil {
		return nil, err
	}
	return u.root.newFlys(flys), nil
}
