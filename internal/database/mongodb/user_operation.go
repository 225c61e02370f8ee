// Package mongodb
package mongodb

import (
	"context"
	c "github.com/half-nothing/flylog/internal/interfaces/config"
	. "github.com/half-nothing/flylog/internal/interfaces/operation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"time"
)

var _ UserOperationInterface = (*UserOperation)(nil)

type UserOperation struct {
	config *c.GeneralConfig
	users  *collection[User]
}

func NewUserOperation(database *mongo.Database, queryTimeout time.Duration, config *c.GeneralConfig) *UserOperation {
	return &UserOperation{
		config: config,
		users:  newCollection[User](database, UserCollection, queryTimeout, ErrUserNotFound),
	}
}

func (userOperation *UserOperation) NewUser(name, email, password string) (user *User, err error) {
	encodePassword, err := userOperation.EncodePassword(password)
	if err != nil {
		return nil, err
	}
	user = &User{
		Name:     name,
		Email:    email,
		Password: encodePassword,
		Token:    "",
		Role:     userOperation.config.DefaultRole,
	}
	return
}

func (userOperation *UserOperation) AddUser(ctx context.Context, user *User) error {
	now := time.Now().UTC()
	if user.ID == "" {
		user.ID = newId()
	}
	user.CreatedAt, user.UpdatedAt = now, now
	return userOperation.users.insert(ctx, user)
}

func (userOperation *UserOperation) GetUserById(ctx context.Context, id string) (*User, error) {
	return userOperation.users.findOne(ctx, bson.M{"_id": id})
}

func (userOperation *UserOperation) GetUserByToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrUserNotFound
	}
	return userOperation.users.findOne(ctx, bson.M{"token": token})
}

func (userOperation *UserOperation) GetUsersByEmail(ctx context.Context, email string) ([]*User, error) {
	return userOperation.users.find(ctx, bson.M{"email": email}, sortByCreatedAt)
}

func (userOperation *UserOperation) GetUsers(ctx context.Context) ([]*User, error) {
	return userOperation.users.find(ctx, bson.M{}, sortByCreatedAt)
}

func (userOperation *UserOperation) GetUsersByIds(ctx context.Context, ids []string) ([]*User, error) {
	return userOperation.users.findIn(ctx, "_id", ids)
}

func (userOperation *UserOperation) UpdateUserInfo(ctx context.Context, id string, update *UserUpdate) (*User, error) {
	return userOperation.users.update(ctx, bson.M{"_id": id}, update.Fields())
}

func (userOperation *UserOperation) UpdateUserToken(ctx context.Context, user *User, token string) error {
	if _, err := userOperation.users.update(ctx, bson.M{"_id": user.ID}, map[string]interface{}{"token": token}); err != nil {
		return err
	}
	user.Token = token
	return nil
}

func (userOperation *UserOperation) EncodePassword(password string) (string, error) {
	return EncodePassword(password, userOperation.config.BcryptCost)
}

func (userOperation *UserOperation) VerifyUserPassword(user *User, password string) bool {
	return VerifyPassword(user.Password, password)
}

func (userOperation *UserOperation) DeleteUser(ctx context.Context, id string) (*User, error) {
	return userOperation.users.delete(ctx, bson.M{"_id": id})
}
