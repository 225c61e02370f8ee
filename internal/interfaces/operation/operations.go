// Package operation
package operation

import "context"

// PingFunc 检查数据库连接是否可用
type PingFunc func(ctx context.Context) error

type DatabaseOperations struct {
	ping             PingFunc
	userOperation    UserOperationInterface
	flyOperation     FlyOperationInterface
	commentOperation CommentOperationInterface
	planeOperation   PlaneOperationInterface
}

func NewDatabaseOperations(
	userOperation UserOperationInterface,
	flyOperation FlyOperationInterface,
	commentOperation CommentOperationInterface,
	planeOperation PlaneOperationInterface,
	ping PingFunc,
) *DatabaseOperations {
	return &DatabaseOperations{
		ping:             ping,
		userOperation:    userOperation,
		flyOperation:     flyOperation,
		commentOperation: commentOperation,
		planeOperation:   planeOperation,
	}
}

func (db *DatabaseOperations) UserOperation() UserOperationInterface {
	return db.userOperation
}

func (db *DatabaseOperations) FlyOperation() FlyOperationInterface {
	return db.flyOperation
}

func (db *DatabaseOperations) CommentOperation() CommentOperationInterface {
	return db.commentOperation
}

func (db *DatabaseOperations) PlaneOperation() PlaneOperationInterface {
	return db.planeOperation
}

func (db *DatabaseOperations) Ping(ctx context.Context) error {
	if db.ping == nil {
		return nil
	}
	return db.ping(ctx)
}
