// Package service
package service

import (
	"context"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
)

type UserServiceInterface interface {
	GetUserByToken(ctx context.Context, req *RequestUserByToken) (*operation.User, error)
	GetUserById(ctx context.Context, req *RequestUserById) (*operation.User, error)
	GetAllUsers(ctx context.Context) ([]*operation.User, error)
	UserLogin(ctx context.Context, req *RequestUserLogin) (*operation.User, error)
	AddUser(ctx context.Context, req *RequestAddUser) (*operation.User, error)
	UpdateUser(ctx context.Context, req *RequestUpdateUser) (*operation.User, error)
	DeleteUser(ctx context.Context, req *RequestUserById) (*operation.User, error)
}

type RequestUserByToken struct {
	Token string
}

type RequestUserById struct {
	ID string
}

type RequestUserLogin struct {
	Email    string
	Password string
}

type RequestAddUser struct {
	Name     string
	Email    string
	Password string
}

type RequestUpdateUser struct {
	ID       string
	Name     *string
	Email    *string
	Password *string
}
