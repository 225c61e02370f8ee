// Package mongodb 文档数据库实现, 每个实体一个集合
package mongodb

import (
	"context"
	"fmt"
	c "github.com/half-nothing/flylog/internal/interfaces/config"
	"github.com/half-nothing/flylog/internal/interfaces/global"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	. "github.com/half-nothing/flylog/internal/interfaces/operation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"time"
)

type ClientCloseCallback struct {
	client *mongo.Client
	logger log.LoggerInterface
}

func NewClientCloseCallback(client *mongo.Client, logger log.LoggerInterface) *ClientCloseCallback {
	return &ClientCloseCallback{client: client, logger: logger}
}

func (cc *ClientCloseCallback) Invoke(ctx context.Context) error {
	cc.logger.Info("Closing mongodb connection")
	return cc.client.Disconnect(ctx)
}

func ConnectDatabase(logger log.LoggerInterface, config *c.Config, debug bool) (global.Callable, *DatabaseOperations, error) {
	databaseConfig := config.Database

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(databaseConfig.MongoURI()).
		SetAppName(global.AppName).
		SetMaxPoolSize(uint64(databaseConfig.ServerMaxConnections)).
		SetMaxConnIdleTime(databaseConfig.ConnectIdleDuration)

	if debug {
		logger.DebugF("MongoDB Connection Host %s:%d, database %s", databaseConfig.Host, databaseConfig.Port, databaseConfig.Database)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while connecting to mongodb: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("error occured while pinging mongodb: %w", err)
	}

	database := client.Database(databaseConfig.Database)
	if err = ensureIndexes(ctx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("error occured while creating mongodb indexes: %w", err)
	}

	logger.Info("Database initialized and connection established")
	return NewClientCloseCallback(client, logger), NewOperations(database, config), nil
}

func NewOperations(database *mongo.Database, config *c.Config) *DatabaseOperations {
	queryTimeout := config.Database.QueryDuration
	return NewDatabaseOperations(
		NewUserOperation(database, queryTimeout, config.Server.General),
		NewFlyOperation(database, queryTimeout),
		NewCommentOperation(database, queryTimeout),
		NewPlaneOperation(database, queryTimeout),
		func(ctx context.Context) error {
			return database.Client().Ping(ctx, readpref.Primary())
		},
	)
}

// ensureIndexes 为反向引用字段建立索引
func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]string{
		UserCollection:    {"token", "email"},
		FlyCollection:     {"date", "author_id", "plane_id"},
		CommentCollection: {"fly_id", "author_id"},
	}
	for collection, keys := range indexes {
		models := make([]mongo.IndexModel, 0, len(keys))
		for _, key := range keys {
			models = append(models, mongo.IndexModel{Keys: bson.D{{Key: key, Value: 1}}})
		}
		if _, err := database.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("collection %s: %w", collection, err)
		}
	}
	return nil
}
