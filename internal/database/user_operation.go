// Package database
package database

import (
	"context"
	"fmt"
	c "github.com/half-nothing/flylog/internal/interfaces/config"
	. "github.com/half-nothing/flylog/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

var _ UserOperationInterface = (*UserOperation)(nil)

type UserOperation struct {
	config       *c.GeneralConfig
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewUserOperation(db *gorm.DB, queryTimeout time.Duration, config *c.GeneralConfig) *UserOperation {
	return &UserOperation{config: config, db: db, queryTimeout: queryTimeout}
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
	ctx, cancel := context.WithTimeout(ctx, userOperation.queryTimeout)
	defer cancel()
	return userOperation.db.WithContext(ctx).Create(user).Error
}

func (userOperation *UserOperation) GetUserById(ctx context.Context, id string) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(ctx, userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(user).Error
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return
}

func (userOperation *UserOperation) GetUserByToken(ctx context.Context, token string) (user *User, err error) {
	if token == "" {
		return nil, ErrUserNotFound
	}
	user = &User{}
	ctx, cancel := context.WithTimeout(ctx, userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("token = ?", token).
		First(user).Error
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return
}

func (userOperation *UserOperation) GetUsersByEmail(ctx context.Context, email string) (users []*User, err error) {
	users = make([]*User, 0)
	ctx, cancel := context.WithTimeout(ctx, userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at").
		Find(&users).Error
	return
}

func (userOperation *UserOperation) GetUsers(ctx context.Context) (users []*User, err error) {
	users = make([]*User, 0)
	ctx, cancel := context.WithTimeout(ctx, userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).Order("created_at").Find(&users).Error
	return
}

func (userOperation *UserOperation) GetUsersByIds(ctx context.Context, ids []string) (users []*User, err error) {
	users = make([]*User, 0, len(ids))
	if len(ids) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return
}

func (userOperation *UserOperation) UpdateUserInfo(ctx context.Context, id string, update *UserUpdate) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(ctx, userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(user).Error; err != nil {
			return notFound(err, ErrUserNotFound)
		}
		fields := update.Fields()
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(user).Updates(fields).Error; err != nil {
			return fmt.Errorf("fail to update user %s: %w", id, err)
		}
		update.ApplyTo(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return
}

func (userOperation *UserOperation) UpdateUserToken(ctx context.Context, user *User, token string) error {
	ctx, cancel := context.WithTimeout(ctx, userOperation.queryTimeout)
	defer cancel()
	result := userOperation.db.WithContext(ctx).Model(user).Update("token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
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

func (userOperation *UserOperation) DeleteUser(ctx context.Context, id string) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(ctx, userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(user).Error; err != nil {
			return notFound(err, ErrUserNotFound)
		}
		// 不级联删除飞行记录与评论
		if err := tx.Delete(user).Error; err != nil {
			return fmt.Errorf("fail to delete user %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return
}
