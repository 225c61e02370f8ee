// Package service
package service

import (
	"context"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
	. "github.com/half-nothing/flylog/internal/interfaces/service"
)

var _ UserServiceInterface = (*UserService)(nil)

type UserService struct {
	logger        log.LoggerInterface
	userOperation operation.UserOperationInterface
	tokenService  TokenServiceInterface
}

func NewUserService(
	logger log.LoggerInterface,
	userOperation operation.UserOperationInterface,
	tokenService TokenServiceInterface,
) *UserService {
	return &UserService{
		logger:        logger,
		userOperation: userOperation,
		tokenService:  tokenService,
	}
}

func (userService *UserService) GetUserByToken(ctx context.Context, req *RequestUserByToken) (*operation.User, error) {
	if req.Token == "" {
		return nil, nil
	}
	if _, err := userService.tokenService.VerifyToken(req.Token); err != nil {
		userService.logger.DebugF("Rejected token lookup: %v", err)
		return nil, nil
	}
	return CallDBFuncAndCheckError(userService.logger, operation.ErrUserNotFound, func() (*operation.User, error) {
		return userService.userOperation.GetUserByToken(ctx, req.Token)
	})
}

func (userService *UserService) GetUserById(ctx context.Context, req *RequestUserById) (*operation.User, error) {
	if req.ID == "" {
		return nil, nil
	}
	return CallDBFuncAndCheckError(userService.logger, operation.ErrUserNotFound, func() (*operation.User, error) {
		return userService.userOperation.GetUserById(ctx, req.ID)
	})
}

func (userService *UserService) GetAllUsers(ctx context.Context) ([]*operation.User, error) {
	return CallDBListFuncAndCheckError(userService.logger, func() ([]*operation.User, error) {
		return userService.userOperation.GetUsers(ctx)
	})
}

func (userService *UserService) UserLogin(ctx context.Context, req *RequestUserLogin) (*operation.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, nil
	}
	users, err := CallDBListFuncAndCheckError(userService.logger, func() ([]*operation.User, error) {
		return userService.userOperation.GetUsersByEmail(ctx, req.Email)
	})
	if err != nil {
		return nil, err
	}

	var user *operation.User
	for _, candidate := range users {
		if userService.userOperation.VerifyUserPassword(candidate, req.Password) {
			user = candidate
			break
		}
	}
	if user == nil {
		userService.logger.DebugF("Login failed for %s", req.Email)
		return nil, nil
	}

	token, err := userService.tokenService.IssueToken(user.ID)
	if err != nil {
		userService.logger.ErrorF("Fail to issue token for user %s: %v", user.ID, err)
		return nil, &ErrTokenIssue
	}
	return CallDBFuncAndCheckError(userService.logger, operation.ErrUserNotFound, func() (*operation.User, error) {
		return user, userService.userOperation.UpdateUserToken(ctx, user, token)
	})
}

func (userService *UserService) AddUser(ctx context.Context, req *RequestAddUser) (*operation.User, error) {
	if res := nameValidator.CheckString(req.Name); res != nil {
		return nil, res
	}
	if res := emailValidator.CheckString(req.Email); res != nil {
		return nil, res
	}
	if res := passwordValidator.CheckString(req.Password); res != nil {
		return nil, res
	}
	return CallDBFuncAndCheckError(userService.logger, nil, func() (*operation.User, error) {
		user, err := userService.userOperation.NewUser(req.Name, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
		return user, userService.userOperation.AddUser(ctx, user)
	})
}

func (userService *UserService) UpdateUser(ctx context.Context, req *RequestUpdateUser) (*operation.User, error) {
	if req.ID == "" {
		return nil, ErrIdMissing
	}
	if res := nameValidator.CheckOptional(req.Name); res != nil {
		return nil, res
	}
	if res := emailValidator.CheckOptional(req.Email); res != nil {
		return nil, res
	}
	if res := passwordValidator.CheckOptional(req.Password); res != nil {
		return nil, res
	}
	update := &operation.UserUpdate{Name: req.Name, Email: req.Email}
	if req.Password != nil {
		encodePassword, err := userService.userOperation.EncodePassword(*req.Password)
		if err != nil {
			userService.logger.ErrorF("Password encode failed: %v", err)
			return nil, &ErrPasswordEncode
		}
		update.Password = &encodePassword
	}
	return CallDBFuncAndCheckError(userService.logger, operation.ErrUserNotFound, func() (*operation.User, error) {
		return userService.userOperation.UpdateUserInfo(ctx, req.ID, update)
	})
}

func (userService *UserService) DeleteUser(ctx context.Context, req *RequestUserById) (*operation.User, error) {
	if req.ID == "" {
		return nil, nil
	}
	user, err := CallDBFuncAndCheckError(userService.logger, operation.ErrUserNotFound, func() (*operation.User, error) {
		return userService.userOperation.DeleteUser(ctx, req.ID)
	})
	if err == nil && user == nil {
		userService.logger.DebugF("Delete user %s: nothing deleted", req.ID)
	}
	return user, err
}
