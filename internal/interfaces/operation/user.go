// Package operation
package operation

import (
	"context"
	"errors"
)

var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user does not exist")
	// ErrPasswordEncode 密码编码错误
	ErrPasswordEncode = errors.New("password encode error")
)

// UserUpdate 用户可选更新字段, nil 表示不修改; Password 为已编码的密码
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

func (update *UserUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, 3)
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Password != nil {
		fields["password"] = *update.Password
	}
	return fields
}

func (update *UserUpdate) ApplyTo(user *User) {
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		user.Password = *update.Password
	}
}

// UserOperationInterface 用户操作接口定义
type UserOperationInterface interface {
	// NewUser 创建一个新用户(只是创建, 没有写入数据库), 密码会被编码, 当err为nil时返回值user有效
	NewUser(name, email, password string) (user *User, err error)
	// AddUser 创建一个新用户(写入数据库), 当err为nil时表示创建成功
	AddUser(ctx context.Context, user *User) (err error)
	// GetUserById 通过ID获取用户, 当err为nil时返回值user有效
	GetUserById(ctx context.Context, id string) (user *User, err error)
	// GetUserByToken 通过登录令牌获取用户, 当err为nil时返回值user有效
	GetUserByToken(ctx context.Context, token string) (user *User, err error)
	// GetUsersByEmail 邮箱不唯一, 返回所有匹配的用户
	GetUsersByEmail(ctx context.Context, email string) (users []*User, err error)
	// GetUsers 按创建顺序获取所有用户
	GetUsers(ctx context.Context) (users []*User, err error)
	// GetUsersByIds 批量获取用户, 不存在的ID会被忽略
	GetUsersByIds(ctx context.Context, ids []string) (users []*User, err error)
	// UpdateUserInfo 更新用户信息, 当err为nil时返回更新后的用户
	UpdateUserInfo(ctx context.Context, id string, update *UserUpdate) (user *User, err error)
	// UpdateUserToken 覆盖用户登录令牌, 当err为nil时表示更新成功
	UpdateUserToken(ctx context.Context, user *User, token string) (err error)
	// EncodePassword 编码明文密码
	EncodePassword(password string) (encodePassword string, err error)
	// VerifyUserPassword 验证用户密码是否正确, pass为true表示验证通过
	VerifyUserPassword(user *User, password string) (pass bool)
	// DeleteUser 删除用户, 返回被删除的用户; 用户不存在时返回 ErrUserNotFound
	DeleteUser(ctx context.Context, id string) (user *User, err error)
}
