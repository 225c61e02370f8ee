// Package database
package database

import (
	"context"
	"errors"
	"fmt"
	"github.com/half-nothing/flylog/internal/database/mongodb"
	c "github.com/half-nothing/flylog/internal/interfaces/config"
	"github.com/half-nothing/flylog/internal/interfaces/global"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	. "github.com/half-nothing/flylog/internal/interfaces/operation"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"time"
)

type DBCloseCallback struct {
	db     *gorm.DB
	logger log.LoggerInterface
}

func NewDBCloseCallback(db *gorm.DB, logger log.LoggerInterface) *DBCloseCallback {
	return &DBCloseCallback{db: db, logger: logger}
}

func (dc *DBCloseCallback) Invoke(_ context.Context) error {
	dc.logger.Info("Closing database connection")
	db, err := dc.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

// ConnectDatabase 根据配置连接数据库, 返回关闭回调与数据库操作集合
func ConnectDatabase(logger log.LoggerInterface, config *c.Config, debug bool) (global.Callable, *DatabaseOperations, error) {
	if config.Database.DBType == c.MongoDB {
		return mongodb.ConnectDatabase(logger, config, debug)
	}

	db, err := OpenDatabase(logger, config.Database, debug)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Database initialized and connection established")
	return NewDBCloseCallback(db, logger), NewOperations(db, config), nil
}

// OpenDatabase 打开gorm连接, 完成表迁移与连接池设置
func OpenDatabase(logger log.LoggerInterface, databaseConfig *c.DatabaseConfig, debug bool) (*gorm.DB, error) {
	connection := databaseConfig.GetConnection(logger)
	if connection == nil {
		return nil, fmt.Errorf("unsupported database type %s", databaseConfig.DBType)
	}

	connectionConfig := gorm.Config{}
	connectionConfig.DefaultTransactionTimeout = 5 * time.Second
	connectionConfig.PrepareStmt = true

	if debug {
		connectionConfig.Logger = gormLogger.Default.LogMode(gormLogger.Info)
	} else {
		connectionConfig.Logger = gormLogger.Default.LogMode(gormLogger.Silent)
	}

	db, err := gorm.Open(connection, &connectionConfig)
	if err != nil {
		return nil, fmt.Errorf("error occured while connecting to database: %w", err)
	}

	if err = db.Migrator().AutoMigrate(&User{}, &Fly{}, &Comment{}, &Plane{}); err != nil {
		return nil, fmt.Errorf("error occured while migrating database: %w", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error occured while creating database pool: %w", err)
	}

	maxOpenConnections := databaseConfig.ServerMaxConnections * 4 / 5 // 不超过数据库最大连接的80%
	maxIdleConnections := maxOpenConnections / 5                      // 空闲连接约为最大连接的20%

	// sqlite 只允许单写
	if databaseConfig.DBType == c.SQLite {
		maxOpenConnections = 1
		maxIdleConnections = 1
	}

	dbPool.SetMaxIdleConns(max(maxIdleConnections, 1))
	dbPool.SetMaxOpenConns(max(maxOpenConnections, 1))
	dbPool.SetConnMaxLifetime(databaseConfig.ConnectIdleDuration)

	if err = dbPool.Ping(); err != nil {
		return nil, fmt.Errorf("error occured while pinging database: %w", err)
	}
	return db, nil
}

func NewOperations(db *gorm.DB, config *c.Config) *DatabaseOperations {
	queryTimeout := config.Database.QueryDuration
	return NewDatabaseOperations(
		NewUserOperation(db, queryTimeout, config.Server.General),
		NewFlyOperation(db, queryTimeout),
		NewCommentOperation(db, queryTimeout),
		NewPlaneOperation(db, queryTimeout),
		func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	)
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
