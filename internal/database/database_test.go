// Package database
package database

import (
	"context"
	"github.com/half-nothing/flylog/internal/base"
	c "github.com/half-nothing/flylog/internal/interfaces/config"
	. "github.com/half-nothing/flylog/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"io"
	"path/filepath"
	"testing"
	"time"
)

func newTestOperations(t *testing.T) *DatabaseOperations {
	t.Helper()
	logger := base.NewLoggerWithWriter(io.Discard)
	logger.Init(false)

	config := c.DefaultConfig()
	config.Database.Database = filepath.Join(t.TempDir(), "flylog_test.db")
	config.Server.General.BcryptCost = bcrypt.MinCost
	require.False(t, config.CheckValid(logger).IsFail())

	db, err := OpenDatabase(logger, config.Database, false)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = NewDBCloseCallback(db, logger).Invoke(context.Background())
	})
	return NewOperations(db, config)
}

func TestUserOperation(t *testing.T) {
	ctx := context.Background()
	userOperation := newTestOperations(t).UserOperation()

	user, err := userOperation.NewUser("alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.Password)
	assert.Equal(t, "user", user.Role)
	assert.Empty(t, user.Token)
	require.NoError(t, userOperation.AddUser(ctx, user))
	assert.NotEmpty(t, user.ID)

	found, err := userOperation.GetUserById(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Name)
	assert.True(t, userOperation.VerifyUserPassword(found, "secret123"))
	assert.False(t, userOperation.VerifyUserPassword(found, "wrong"))

	_, err = userOperation.GetUserById(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = userOperation.GetUserByToken(ctx, "")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, userOperation.UpdateUserToken(ctx, found, "token-1"))
	assert.Equal(t, "token-1", found.Token)
	byToken, err := userOperation.GetUserByToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byToken.ID)

	name := "alice2"
	updated, err := userOperation.UpdateUserInfo(ctx, user.ID, &UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)

	_, err = userOperation.UpdateUserInfo(ctx, "missing", &UserUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)

	deleted, err := userOperation.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, deleted.ID)
	_, err = userOperation.DeleteUser(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUsersByEmailAndIds(t *testing.T) {
	ctx := context.Background()
	userOperation := newTestOperations(t).UserOperation()

	var ids []string
	for _, name := range []string{"a", "b", "c"} {
		user, err := userOperation.NewUser(name, "shared@example.com", "password")
		require.NoError(t, err)
		require.NoError(t, userOperation.AddUser(ctx, user))
		ids = append(ids, user.ID)
	}

	users, err := userOperation.GetUsersByEmail(ctx, "shared@example.com")
	require.NoError(t, err)
	assert.Len(t, users, 3)

	all, err := userOperation.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[0], all[0].ID)

	byIds, err := userOperation.GetUsersByIds(ctx, []string{ids[2], "missing", ids[0]})
	require.NoError(t, err)
	assert.Len(t, byIds, 2)

	empty, err := userOperation.GetUsersByIds(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFlyWindowIsInclusive(t *testing.T) {
	ctx := context.Background()
	flyOperation := newTestOperations(t).FlyOperation()

	day := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		day.Add(-time.Second),
		day,
		day.AddDate(0, 0, 1),
		day.AddDate(0, 0, 1).Add(time.Second),
	}
	for _, date := range dates {
		require.NoError(t, flyOperation.AddFly(ctx, flyOperation.NewFly("author", date, 30, "plane")))
	}

	flys, err := flyOperation.GetFlysBetween(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, flys, 2)
	assert.True(t, flys[0].Date.Equal(day))
	assert.True(t, flys[1].Date.Equal(day.AddDate(0, 0, 1)))
}

func TestFlyRoundTripAndUpdate(t *testing.T) {
	ctx := context.Background()
	flyOperation := newTestOperations(t).FlyOperation()

	date := time.Date(2023, time.December, 31, 22, 30, 0, 0, time.FixedZone("UTC+8", 8*3600))
	fly := flyOperation.NewFly("author-1", date, 90, "plane-1")
	require.NoError(t, flyOperation.AddFly(ctx, fly))

	found, err := flyOperation.GetFlyById(ctx, fly.ID)
	require.NoError(t, err)
	assert.True(t, found.Date.Equal(date))
	assert.Equal(t, 90, found.Duration)
	assert.Equal(t, "author-1", found.AuthorId)
	assert.Equal(t, "plane-1", found.PlaneId)

	duration := 120
	updated, err := flyOperation.UpdateFly(ctx, fly.ID, &FlyUpdate{Duration: &duration})
	require.NoError(t, err)
	assert.Equal(t, 120, updated.Duration)
	assert.Equal(t, "plane-1", updated.PlaneId)

	_, err = flyOperation.UpdateFly(ctx, "missing", &FlyUpdate{Duration: &duration})
	assert.ErrorIs(t, err, ErrFlyNotFound)

	byAuthor, err := flyOperation.GetFlysByAuthorIds(ctx, []string{"author-1", "author-2"})
	require.NoError(t, err)
	assert.Len(t, byAuthor, 1)

	byPlane, err := flyOperation.GetFlysByPlaneIds(ctx, []string{"plane-1"})
	require.NoError(t, err)
	assert.Len(t, byPlane, 1)
}

func TestDeleteFlyOutcomes(t *testing.T) {
	ctx := context.Background()
	operations := newTestOperations(t)
	flyOperation := operations.FlyOperation()
	commentOperation := operations.CommentOperation()

	fly := flyOperation.NewFly("author-1", time.Now(), 10, "")
	require.NoError(t, flyOperation.AddFly(ctx, fly))
	comment := commentOperation.NewComment("nice", fly.ID, "author-2")
	require.NoError(t, commentOperation.AddComment(ctx, comment))

	_, err := flyOperation.DeleteFly(ctx, fly.ID, "someone-else")
	assert.ErrorIs(t, err, ErrFlyNotFound)

	deleted, err := flyOperation.DeleteFly(ctx, fly.ID, "author-1")
	require.NoError(t, err)
	assert.Equal(t, fly.ID, deleted.ID)

	_, err = flyOperation.DeleteFly(ctx, fly.ID, "")
	assert.ErrorIs(t, err, ErrFlyNotFound)

	comments, err := commentOperation.GetComments(ctx)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, fly.ID, comments[0].FlyId)
}

func TestCommentAndPlaneOperation(t *testing.T) {
	ctx := context.Background()
	operations := newTestOperations(t)
	commentOperation := operations.CommentOperation()
	planeOperation := operations.PlaneOperation()

	plane := planeOperation.NewPlane("C172")
	require.NoError(t, planeOperation.AddPlane(ctx, plane))
	planes, err := planeOperation.GetPlanesByIds(ctx, []string{plane.ID, "missing"})
	require.NoError(t, err)
	require.Len(t, planes, 1)
	assert.Equal(t, "C172", planes[0].Name)

	first := commentOperation.NewComment("first", "fly-1", "author-1")
	second := commentOperation.NewComment("second", "fly-2", "author-1")
	require.NoError(t, commentOperation.AddComment(ctx, first))
	require.NoError(t, commentOperation.AddComment(ctx, second))

	byFly, err := commentOperation.GetCommentsByFlyIds(ctx, []string{"fly-1"})
	require.NoError(t, err)
	require.Len(t, byFly, 1)
	assert.Equal(t, "first", byFly[0].Comment)

	deleted, err := commentOperation.DeleteComment(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, deleted.ID)
	_, err = commentOperation.DeleteComment(ctx, first.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	_, err = planeOperation.DeletePlane(ctx, plane.ID)
	require.NoError(t, err)
	_, err = planeOperation.DeletePlane(ctx, plane.ID)
	assert.ErrorIs(t, err, ErrPlaneNotFound)
}
