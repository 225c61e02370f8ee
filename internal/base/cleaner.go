package base

import (
	"context"
	"errors"
	"fmt"
	. "github.com/half-nothing/flylog/internal/interfaces/global"
	. "github.com/half-nothing/flylog/internal/interfaces/log"
	"github.com/half-nothing/flylog/internal/utils"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const (
	defaultCallbackTimeout = 10 * time.Second
	loggerShutdownTimeout  = 3 * time.Second
)

// Cleaner 关闭时按注册的逆序释放资源: 先停 http 服务, 再断开数据库, 最后关闭日志
type Cleaner struct {
	callbacks       []Callable
	mu              sync.Mutex
	once            sync.Once
	cleaning        bool
	err             error
	callbackTimeout time.Duration
	loggerShutdown  Callable
	logger          LoggerInterface
	exit            func(code int)
}

func NewCleaner(logger LoggerInterface) *Cleaner {
	return &Cleaner{
		callbacks:       make([]Callable, 0),
		callbackTimeout: defaultCallbackTimeout,
		loggerShutdown:  logger.ShutdownCallback(),
		logger:          logger,
		exit:            os.Exit,
	}
}

func (c *Cleaner) Add(callable Callable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleaning {
		c.logger.DebugF("Cleaner is shutting down, dropping %T", callable)
		return
	}
	c.callbacks = append(c.callbacks, callable)
	c.logger.DebugF("Registered shutdown callback #%d (%T)", len(c.callbacks), callable)
}

func (c *Cleaner) Clean() error {
	c.once.Do(func() { c.err = c.clean() })
	return c.err
}

func (c *Cleaner) clean() error {
	c.mu.Lock()
	c.cleaning = true
	callbacks := make([]Callable, len(c.callbacks))
	copy(callbacks, c.callbacks)
	c.mu.Unlock()

	c.logger.DebugF("Running %d shutdown callbacks", len(callbacks))

	var errs []error
	utils.ReverseForEach(callbacks, func(idx int, callback Callable) {
		ctx, cancel := context.WithTimeout(context.Background(), c.callbackTimeout)
		defer cancel()
		if err := callback.Invoke(ctx); err != nil {
			c.logger.ErrorF("Shutdown callback #%d (%T) failed: %v", idx+1, callback, err)
			errs = append(errs, fmt.Errorf("callback #%d (%T): %w", idx+1, callback, err))
		}
	})

	if len(errs) > 0 {
		c.logger.ErrorF("%d errors occurred during cleanup", len(errs))
	} else {
		c.logger.Debug("All shutdown callbacks finished")
	}
	c.logger.Info("Cleanup finished, server offline")

	ctx, cancel := context.WithTimeout(context.Background(), loggerShutdownTimeout)
	defer cancel()
	if err := c.loggerShutdown.Invoke(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "LOGGER SHUTDOWN ERROR: %v\n", err)
	}
	return errors.Join(errs...)
}

// Init 监听中断信号, 收到后清理并退出进程
func (c *Cleaner) Init() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
		c.logger.Info("Received interrupt signal, shutting down")
		if err := c.Clean(); err != nil {
			c.exit(1)
			return
		}
		c.exit(0)
	}()
}
