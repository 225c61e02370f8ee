// Package graph
package graph

import (
	"context"
	"encoding/json"
	"github.com/half-nothing/flylog/internal/base"
	"github.com/half-nothing/flylog/internal/database"
	impl "github.com/half-nothing/flylog/internal/http_server/service"
	c "github.com/half-nothing/flylog/internal/interfaces/config"
	"github.com/half-nothing/flylog/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"io"
	"path/filepath"
	"sync"
	"testing"
)

type countingObserver struct {
	mu      sync.Mutex
	batches map[string][]int
}

func (o *countingObserver) ObserveBatch(loader string, size int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.batches[loader] = append(o.batches[loader], size)
}

func (o *countingObserver) get(loader string) []int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.batches[loader]
}

type testEnv struct {
	schema     *Schema
	operations *operation.DatabaseOperations
	observer   *countingObserver
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := base.NewLoggerWithWriter(io.Discard)
	logger.Init(false)

	config := c.DefaultConfig()
	config.Database.Database = filepath.Join(t.TempDir(), "graph_test.db")
	config.Server.General.BcryptCost = bcrypt.MinCost
	config.Server.HttpServer.GraphQL.LoaderWait = "20ms"
	require.False(t, config.CheckValid(logger).IsFail())

	db, err := database.OpenDatabase(logger, config.Database, false)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.NewDBCloseCallback(db, logger).Invoke(context.Background())
	})
	operations := database.NewOperations(db, config)

	httpConfig := config.Server.HttpServer
	impl.InitValidator(httpConfig.Limits)
	tokenService := impl.NewTokenService(httpConfig.JWT)
	observer := &countingObserver{batches: make(map[string][]int)}
	resolver := NewResolver(
		logger,
		impl.NewUserService(logger, operations.UserOperation(), tokenService),
		impl.NewFlyService(logger, operations.FlyOperation()),
		impl.NewCommentService(logger, operations.CommentOperation()),
		impl.NewPlaneService(logger, operations.PlaneOperation()),
		NewLoaderFactory(logger, operations, httpConfig.GraphQL, observer),
	)
	return &testEnv{
		schema:     NewSchema(logger, httpConfig.GraphQL, resolver),
		operations: operations,
		observer:   observer,
	}
}

type gqlError struct {
	Message    string                 `json:"message"`
	Extensions map[string]interface{} `json:"extensions"`
}

// exec 执行请求并将 data 解码到 out, 返回错误列表
func (env *testEnv) exec(t *testing.T, query string, variables map[string]interface{}, out interface{}) []gqlError {
	t.Helper()
	// 变量经过一次 JSON 编解码, 与 HTTP 请求中的数值类型保持一致
	encoded, err := json.Marshal(variables)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	response := env.schema.Exec(context.Background(), &Request{Query: query, Variables: decoded})
	raw, err := json.Marshal(response)
	require.NoError(t, err)
	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []gqlError      `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	if out != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
	return envelope.Errors
}

func (env *testEnv) mustExec(t *testing.T, query string, variables map[string]interface{}, out interface{}) {
	t.Helper()
	errs := env.exec(t, query, variables, out)
	require.Empty(t, errs)
}

type userData struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
	Role  string `json:"role"`
}

type flyData struct {
	ID       string     `json:"_id"`
	Date     string     `json:"date"`
	Duration int        `json:"duration"`
	AuthorID string     `json:"author_id"`
	PlaneID  string     `json:"plane_id"`
	Author   *userData  `json:"author"`
	Comments []struct{} `json:"comments"`
}

func (env *testEnv) addUser(t *testing.T, name, email, password string) userData {
	var data struct {
		AddUser userData `json:"addUser"`
	}
	env.mustExec(t, `mutation($n: String!, $e: String!, $p: String!) {
		addUser(name: $n, email: $e, password: $p) { _id email name token role }
	}`, map[string]interface{}{"n": name, "e": email, "p": password}, &data)
	return data.AddUser
}

func (env *testEnv) addFly(t *testing.T, authorId, date string, duration int, planeId string) flyData {
	var data struct {
		AddFly flyData `json:"addFly"`
	}
	env.mustExec(t, `mutation($a: ID!, $d: DateTime!, $t: Int!, $p: ID!) {
		addFly(author_id: $a, date: $d, duration: $t, plane_id: $p) { _id date duration author_id plane_id }
	}`, map[string]interface{}{"a": authorId, "d": date, "t": duration, "p": planeId}, &data)
	return data.AddFly
}

func TestAddUserDefaults(t *testing.T) {
	env := newTestEnv(t)
	user := env.addUser(t, "alice", "alice@example.com", "secret123")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "user", user.Role)
	assert.Empty(t, user.Token)
}

func TestAddUserValidation(t *testing.T) {
	env := newTestEnv(t)
	var data struct {
		AddUser *userData `json:"addUser"`
	}
	errs := env.exec(t, `mutation { addUser(name: "bob", email: "bob@example.com", password: "123") { _id } }`, nil, &data)
	require.Len(t, errs, 1)
	assert.Equal(t, "INVALID_ARGUMENT", errs[0].Extensions["code"])
	assert.Nil(t, data.AddUser)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	user := env.addUser(t, "alice", "alice@example.com", "secret123")

	login := func(password string) *userData {
		var data struct {
			Login *userData `json:"login"`
		}
		env.mustExec(t, `mutation($e: String!, $p: String!) { login(email: $e, password: $p) { _id token } }`,
			map[string]interface{}{"e": "alice@example.com", "p": password}, &data)
		return data.Login
	}

	first := login("secret123")
	require.NotNil(t, first)
	assert.Equal(t, user.ID, first.ID)
	assert.NotEmpty(t, first.Token)

	second := login("secret123")
	require.NotNil(t, second)
	assert.NotEqual(t, first.Token, second.Token)

	assert.Nil(t, login("wrong-password"))
	stored, err := env.operations.UserOperation().GetUserById(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, second.Token, stored.Token)

	var data struct {
		GetUserByToken *userData `json:"getUserByToken"`
	}
	query := `query($t: String!) { getUserByToken(token: $t) { _id } }`
	env.mustExec(t, query, map[string]interface{}{"t": second.Token}, &data)
	require.NotNil(t, data.GetUserByToken)
	assert.Equal(t, user.ID, data.GetUserByToken.ID)

	data.GetUserByToken = nil
	env.mustExec(t, query, map[string]interface{}{"t": first.Token}, &data)
	assert.Nil(t, data.GetUserByToken)

	env.mustExec(t, query, map[string]interface{}{"t": ""}, &data)
	assert.Nil(t, data.GetUserByToken)

	env.mustExec(t, query, map[string]interface{}{"t": "not-a-token"}, &data)
	assert.Nil(t, data.GetUserByToken)
}

func TestUpdateAndDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.addUser(t, "alice", "alice@example.com", "secret123")

	var updated struct {
		UpdateUser *userData `json:"updateUser"`
	}
	env.mustExec(t, `mutation($id: ID!) { updateUser(_id: $id, name: "alice2") { _id name email } }`,
		map[string]interface{}{"id": user.ID}, &updated)
	require.NotNil(t, updated.UpdateUser)
	assert.Equal(t, "alice2", updated.UpdateUser.Name)
	assert.Equal(t, "alice@example.com", updated.UpdateUser.Email)

	env.mustExec(t, `mutation { updateUser(_id: "missing", name: "x") { _id } }`, nil, &updated)
	assert.Nil(t, updated.UpdateUser)

	var deleted struct {
		DeleteUserById *userData `json:"deleteUserById"`
	}
	query := `mutation($id: ID!) { deleteUserById(_id: $id) { _id } }`
	env.mustExec(t, query, map[string]interface{}{"id": user.ID}, &deleted)
	require.NotNil(t, deleted.DeleteUserById)
	assert.Equal(t, user.ID, deleted.DeleteUserById.ID)

	env.mustExec(t, query, map[string]interface{}{"id": user.ID}, &deleted)
	assert.Nil(t, deleted.DeleteUserById)
}

func TestFlyRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	fly := env.addFly(t, "author-1", "2024-03-01T10:00:00Z", 45, "plane-1")

	var data struct {
		GetFlyById *flyData `json:"getFlyById"`
	}
	env.mustExec(t, `query($id: ID!) { getFlyById(_id: $id) { _id date duration author_id plane_id } }`,
		map[string]interface{}{"id": fly.ID}, &data)
	require.NotNil(t, data.GetFlyById)
	assert.Equal(t, fly.Date, data.GetFlyById.Date)
	assert.Equal(t, "2024-03-01T10:00:00Z", data.GetFlyById.Date)
	assert.Equal(t, 45, data.GetFlyById.Duration)
	assert.Equal(t, "author-1", data.GetFlyById.AuthorID)
	assert.Equal(t, "plane-1", data.GetFlyById.PlaneID)
}

func TestChangeFly(t *testing.T) {
	env := newTestEnv(t)
	fly := env.addFly(t, "author-1", "2024-03-01T10:00:00Z", 45, "plane-1")

	var data struct {
		ChangeFly *flyData `json:"changeFly"`
	}
	env.mustExec(t, `mutation($id: ID!) { changeFly(fly_id: $id, duration: 60) { duration plane_id date } }`,
		map[string]interface{}{"id": fly.ID}, &data)
	require.NotNil(t, data.ChangeFly)
	assert.Equal(t, 60, data.ChangeFly.Duration)
	assert.Equal(t, "plane-1", data.ChangeFly.PlaneID)
	assert.Equal(t, "2024-03-01T10:00:00Z", data.ChangeFly.Date)

	errs := env.exec(t, `mutation($id: ID!) { changeFly(fly_id: $id, duration: -1) { duration } }`,
		map[string]interface{}{"id": fly.ID}, &data)
	require.Len(t, errs, 1)
	assert.Equal(t, "INVALID_ARGUMENT", errs[0].Extensions["code"])

	env.mustExec(t, `mutation { changeFly(fly_id: "missing", duration: 1) { duration } }`, nil, &data)
	assert.Nil(t, data.ChangeFly)
}

func TestDateWindows(t *testing.T) {
	env := newTestEnv(t)
	env.addFly(t, "a", "2024-01-31T23:59:59Z", 1, "p")
	env.addFly(t, "a", "2024-02-01T00:00:00Z", 2, "p")
	env.addFly(t, "a", "2024-02-02T00:00:00Z", 3, "p")
	env.addFly(t, "a", "2024-02-02T00:00:01Z", 4, "p")
	env.addFly(t, "a", "2024-02-08T00:00:00Z", 5, "p")
	env.addFly(t, "a", "2024-02-08T00:00:01Z", 6, "p")

	durations := func(query string, variables map[string]interface{}, field string) []int {
		var data map[string][]flyData
		env.mustExec(t, query, variables, &data)
		result := make([]int, 0)
		for _, fly := range data[field] {
			result = append(result, fly.Duration)
		}
		return result
	}

	day := map[string]interface{}{"d": "2024-02-01T00:00:00Z"}
	assert.Equal(t, []int{2, 3}, durations(`query($d: DateTime!) { getDailyFlys(date: $d) { duration } }`, day, "getDailyFlys"))
	assert.Equal(t, []int{2, 3}, durations(`query($d: DateTime!) { getFlyByDay(date: $d) { duration } }`, day, "getFlyByDay"))
	assert.Equal(t, []int{2, 3, 4, 5}, durations(`query($d: DateTime!) { getWeeklyFlys(date: $d) { duration } }`, day, "getWeeklyFlys"))
	assert.Equal(t, []int{2, 3}, durations(`query { getDailyFlys(date: "2024-02-01") { duration } }`, nil, "getDailyFlys"))
	assert.Equal(t, []int{2, 3}, durations(`query { getDailyFlys(date: "1706745600000") { duration } }`, nil, "getDailyFlys"))
	millis := map[string]interface{}{"d": 1706745600000}
	assert.Equal(t, []int{2, 3}, durations(`query($d: DateTime!) { getDailyFlys(date: $d) { duration } }`, millis, "getDailyFlys"))

	between := map[string]interface{}{"f": "2024-01-31T23:59:59Z", "t": "2024-02-02T00:00:00Z"}
	assert.Equal(t, []int{1, 2, 3}, durations(`query($f: DateTime!, $t: DateTime!) { getFlysByDate(from: $f, to: $t) { duration } }`, between, "getFlysByDate"))
	assert.Equal(t, []int{1, 2, 3}, durations(`query($f: DateTime!, $t: DateTime!) { getFlyByDate(from: $f, to: $t) { duration } }`, between, "getFlyByDate"))

	reversed := map[string]interface{}{"f": "2024-02-02T00:00:00Z", "t": "2024-01-31T23:59:59Z"}
	assert.Empty(t, durations(`query($f: DateTime!, $t: DateTime!) { getFlysByDate(from: $f, to: $t) { duration } }`, reversed, "getFlysByDate"))
}

func TestDeleteFlyKeepsComments(t *testing.T) {
	env := newTestEnv(t)
	user := env.addUser(t, "alice", "alice@example.com", "secret123")
	fly := env.addFly(t, user.ID, "2024-03-01T10:00:00Z", 45, "plane-1")

	var added struct {
		AddComment struct {
			ID string `json:"_id"`
		} `json:"addComment"`
	}
	env.mustExec(t, `mutation($f: ID!, $a: ID!) { addComment(comment: "smooth landing", fly_id: $f, author_id: $a) { _id } }`,
		map[string]interface{}{"f": fly.ID, "a": user.ID}, &added)

	var withComments struct {
		GetFlyById *struct {
			Comments []struct {
				ID      string    `json:"_id"`
				Comment string    `json:"comment"`
				Author  *userData `json:"author"`
			} `json:"comments"`
		} `json:"getFlyById"`
	}
	env.mustExec(t, `query($id: ID!) { getFlyById(_id: $id) { comments { _id comment author { name } } } }`,
		map[string]interface{}{"id": fly.ID}, &withComments)
	require.NotNil(t, withComments.GetFlyById)
	require.Len(t, withComments.GetFlyById.Comments, 1)
	assert.Equal(t, added.AddComment.ID, withComments.GetFlyById.Comments[0].ID)
	require.NotNil(t, withComments.GetFlyById.Comments[0].Author)
	assert.Equal(t, "alice", withComments.GetFlyById.Comments[0].Author.Name)

	var deleted struct {
		DeleteFly *flyData `json:"deleteFly"`
	}
	deleteQuery := `mutation($id: ID!) { deleteFly(fly_id: $id) { _id } }`
	env.mustExec(t, deleteQuery, map[string]interface{}{"id": fly.ID}, &deleted)
	require.NotNil(t, deleted.DeleteFly)

	env.mustExec(t, deleteQuery, map[string]interface{}{"id": fly.ID}, &deleted)
	assert.Nil(t, deleted.DeleteFly)

	var lookup struct {
		GetFlyById *flyData `json:"getFlyById"`
	}
	env.mustExec(t, `query($id: ID!) { getFlyById(_id: $id) { _id } }`, map[string]interface{}{"id": fly.ID}, &lookup)
	assert.Nil(t, lookup.GetFlyById)

	var comments struct {
		GetComments []struct {
			ID  string   `json:"_id"`
			Fly *flyData `json:"fly"`
		} `json:"getComments"`
	}
	env.mustExec(t, `{ getComments { _id fly { _id } } }`, nil, &comments)
	require.Len(t, comments.GetComments, 1)
	assert.Equal(t, added.AddComment.ID, comments.GetComments[0].ID)
	assert.Nil(t, comments.GetComments[0].Fly)
}

func TestDeleteFlyByOtherAuthor(t *testing.T) {
	env := newTestEnv(t)
	fly := env.addFly(t, "author-1", "2024-03-01T10:00:00Z", 45, "plane-1")

	var deleted struct {
		DeleteFly *flyData `json:"deleteFly"`
	}
	env.mustExec(t, `mutation($id: ID!) { deleteFly(fly_id: $id, author_id: "author-2") { _id } }`,
		map[string]interface{}{"id": fly.ID}, &deleted)
	assert.Nil(t, deleted.DeleteFly)

	_, err := env.operations.FlyOperation().GetFlyById(context.Background(), fly.ID)
	assert.NoError(t, err)
}

func TestPlanes(t *testing.T) {
	env := newTestEnv(t)
	var added struct {
		AddPlane struct {
			ID   string `json:"_id"`
			Name string `json:"name"`
		} `json:"addPlane"`
	}
	env.mustExec(t, `mutation { addPlane(name: "DA40") { _id name } }`, nil, &added)
	assert.Equal(t, "DA40", added.AddPlane.Name)
	env.addFly(t, "author-1", "2024-03-01T10:00:00Z", 45, added.AddPlane.ID)

	var planes struct {
		GetAllPlanes []struct {
			Name string    `json:"name"`
			Flys []flyData `json:"flys"`
		} `json:"getAllPlanes"`
	}
	env.mustExec(t, `{ getAllPlanes { name flys { duration } } }`, nil, &planes)
	require.Len(t, planes.GetAllPlanes, 1)
	assert.Len(t, planes.GetAllPlanes[0].Flys, 1)

	var deleted struct {
		DeletePlane *struct {
			ID string `json:"_id"`
		} `json:"deletePlane"`
	}
	query := `mutation($id: ID!) { deletePlane(_id: $id) { _id } }`
	env.mustExec(t, query, map[string]interface{}{"id": added.AddPlane.ID}, &deleted)
	require.NotNil(t, deleted.DeletePlane)
	env.mustExec(t, query, map[string]interface{}{"id": added.AddPlane.ID}, &deleted)
	assert.Nil(t, deleted.DeletePlane)
}

func TestRelationshipsAreBatched(t *testing.T) {
	env := newTestEnv(t)
	alice := env.addUser(t, "alice", "alice@example.com", "secret123")
	bob := env.addUser(t, "bob", "bob@example.com", "secret123")
	env.addFly(t, alice.ID, "2024-03-01T10:00:00Z", 1, "")
	env.addFly(t, bob.ID, "2024-03-02T10:00:00Z", 2, "")
	env.addFly(t, alice.ID, "2024-03-03T10:00:00Z", 3, "")
	env.addFly(t, "missing-author", "2024-03-04T10:00:00Z", 4, "")

	var data struct {
		GetAllFlys []flyData `json:"getAllFlys"`
	}
	env.mustExec(t, `{ getAllFlys { duration author { name } comments { _id } } }`, nil, &data)
	require.Len(t, data.GetAllFlys, 4)
	assert.Equal(t, "alice", data.GetAllFlys[0].Author.Name)
	assert.Equal(t, "bob", data.GetAllFlys[1].Author.Name)
	assert.Nil(t, data.GetAllFlys[3].Author)
	for _, fly := range data.GetAllFlys {
		assert.NotNil(t, fly.Comments)
		assert.Empty(t, fly.Comments)
	}

	assert.Equal(t, []int{3}, env.observer.get("user_by_id"))
	assert.Equal(t, []int{4}, env.observer.get("comments_by_fly_id"))
}

func TestUserFlys(t *testing.T) {
	env := newTestEnv(t)
	alice := env.addUser(t, "alice", "alice@example.com", "secret123")
	env.addUser(t, "bob", "bob@example.com", "secret123")
	env.addFly(t, alice.ID, "2024-03-01T10:00:00Z", 1, "")
	env.addFly(t, alice.ID, "2024-03-02T10:00:00Z", 2, "")

	var data struct {
		GetAllUsers []struct {
			Name string    `json:"name"`
			Flys []flyData `json:"flys"`
		} `json:"getAllUsers"`
	}
	env.mustExec(t, `{ getAllUsers { name flys { duration } } }`, nil, &data)
	require.Len(t, data.GetAllUsers, 2)
	assert.Len(t, data.GetAllUsers[0].Flys, 2)
	assert.Empty(t, data.GetAllUsers[1].Flys)
	assert.Equal(t, []int{2}, env.observer.get("flys_by_author_id"))
}

func TestIsMutation(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		query         string
		operationName string
		expected      bool
	}{
		{`{ getAllUsers { _id } }`, "", false},
		{`query Q { getAllUsers { _id } }`, "", false},
		{`mutation { addPlane(name: "x") { _id } }`, "", true},
		{"# mutation\n{ getAllPlanes { _id } }", "", false},
		{`query A { getAllPlanes { _id } } mutation B { addPlane(name: "mutation") { _id } }`, "B", true},
		{`query A { getAllPlanes { _id } } mutation B { addPlane(name: "x") { _id } }`, "A", false},
		{`fragment F on Plane { _id } mutation M($n: String!) { addPlane(name: $n) { ...F } }`, "", true},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, env.schema.IsMutation(&Request{Query: test.query, OperationName: test.operationName}), test.query)
	}
}
