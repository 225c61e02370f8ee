// Package service
package service

import (
	"context"
	"errors"
	"github.com/half-nothing/flylog/internal/base"
	c "github.com/half-nothing/flylog/internal/interfaces/config"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
	. "github.com/half-nothing/flylog/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
	"time"
)

func newTestLogger() *base.Logger {
	logger := base.NewLoggerWithWriter(io.Discard)
	logger.Init(false)
	return logger
}

func newTestJWTConfig() *c.JWTConfig {
	return &c.JWTConfig{
		Secret:          "test-secret",
		Issuer:          "FlyLogTest",
		ExpiresDuration: time.Hour,
	}
}

func TestTokenService(t *testing.T) {
	tokenService := NewTokenService(newTestJWTConfig())

	first, err := tokenService.IssueToken("user-1")
	require.NoError(t, err)
	second, err := tokenService.IssueToken("user-1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	claims, err := tokenService.VerifyToken(first)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Uid)
	assert.NotEmpty(t, claims.ID)

	_, err = tokenService.VerifyToken("garbage")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	other := newTestJWTConfig()
	other.Secret = "another-secret"
	_, err = NewTokenService(other).VerifyToken(first)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	expired := newTestJWTConfig()
	expired.ExpiresDuration = -time.Minute
	token, err := NewTokenService(expired).IssueToken("user-1")
	require.NoError(t, err)
	_, err = tokenService.VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDateWindows(t *testing.T) {
	from, to := DailyWindow(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), to)

	_, to = WeeklyWindow(time.Date(2024, time.February, 26, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC), to)

	_, to = DailyWindow(time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), to)
}

func TestFieldValidator(t *testing.T) {
	InitValidator(&c.HttpServerLimit{
		NameLengthMin:     2,
		NameLengthMax:     4,
		EmailLengthMin:    4,
		EmailLengthMax:    16,
		PasswordLengthMin: 6,
		PasswordLengthMax: 8,
		CommentLengthMax:  10,
	})
	assert.Same(t, nameValidator.ErrShort, nameValidator.CheckString("a"))
	assert.Same(t, nameValidator.ErrLong, nameValidator.CheckString("abcde"))
	assert.Nil(t, nameValidator.CheckString("飞行员"))
	assert.Nil(t, nameValidator.CheckOptional(nil))
	assert.Equal(t, "INVALID_ARGUMENT", passwordValidator.CheckString("123").StatusName)
	assert.NotNil(t, commentValidator.CheckString(""))
}

type failingFlyOperation struct {
	operation.FlyOperationInterface
}

func (failingFlyOperation) GetFlys(context.Context) ([]*operation.Fly, error) {
	return nil, errors.New("connection reset")
}

func (failingFlyOperation) DeleteFly(context.Context, string, string) (*operation.Fly, error) {
	return nil, errors.New("connection reset")
}

func (failingFlyOperation) GetFlyById(context.Context, string) (*operation.Fly, error) {
	return nil, operation.ErrFlyNotFound
}

func TestFlyServiceErrorMapping(t *testing.T) {
	ctx := context.Background()
	flyService := NewFlyService(newTestLogger(), failingFlyOperation{})

	_, err := flyService.GetAllFlys(ctx)
	var status *ApiStatus
	require.True(t, errors.As(err, &status))
	assert.Equal(t, "DATABASE_ERROR", status.StatusName)
	assert.Equal(t, "DATABASE_ERROR", status.Extensions()["code"])

	fly, err := flyService.DeleteFly(ctx, &RequestDeleteFly{FlyId: "x"})
	assert.Nil(t, fly)
	assert.ErrorIs(t, err, &ErrDatabaseFail)

	fly, err = flyService.GetFlyById(ctx, &RequestFlyById{ID: "x"})
	assert.Nil(t, fly)
	assert.NoError(t, err)

	_, err = flyService.AddFly(ctx, &RequestAddFly{AuthorId: "a", Duration: -5})
	assert.Equal(t, ErrNegativeDuration, err)
}
