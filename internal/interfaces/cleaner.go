// Package interfaces
package interfaces

import (
	"github.com/half-nothing/flylog/internal/interfaces/global"
)

type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	// Clean 逆序执行已注册的回调, 多次调用只执行一次
	Clean() error
}
