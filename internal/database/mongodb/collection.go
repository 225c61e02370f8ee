// Package mongodb
package mongodb

import (
	"context"
	"errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"time"
)

var sortByCreatedAt = bson.D{{Key: "created_at", Value: 1}}

// collection 对单个集合的通用查找/写入/更新/删除
type collection[T any] struct {
	coll         *mongo.Collection
	queryTimeout time.Duration
	notFound     error
}

func newCollection[T any](database *mongo.Database, name string, queryTimeout time.Duration, notFound error) *collection[T] {
	return &collection[T]{
		coll:         database.Collection(name),
		queryTimeout: queryTimeout,
		notFound:     notFound,
	}
}

func newId() string {
	return primitive.NewObjectID().Hex()
}

func (c *collection[T]) mapError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return c.notFound
	}
	return err
}

func (c *collection[T]) insert(ctx context.Context, document *T) error {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()
	_, err := c.coll.InsertOne(ctx, document)
	return err
}

func (c *collection[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()
	document := new(T)
	if err := c.coll.FindOne(ctx, filter).Decode(document); err != nil {
		return nil, c.mapError(err)
	}
	return document, nil
}

func (c *collection[T]) find(ctx context.Context, filter bson.M, sort bson.D) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()
	cursor, err := c.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	documents := make([]*T, 0)
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

func (c *collection[T]) findIn(ctx context.Context, field string, values []string) ([]*T, error) {
	if len(values) == 0 {
		return make([]*T, 0), nil
	}
	return c.find(ctx, bson.M{field: bson.M{"$in": values}}, sortByCreatedAt)
}

func (c *collection[T]) update(ctx context.Context, filter bson.M, fields map[string]interface{}) (*T, error) {
	if len(fields) == 0 {
		return c.findOne(ctx, filter)
	}
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()
	set := bson.M{"updated_at": time.Now().UTC()}
	for key, value := range fields {
		set[key] = value
	}
	document := new(T)
	err := c.coll.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(document)
	if err != nil {
		return nil, c.mapError(err)
	}
	return document, nil
}

func (c *collection[T]) delete(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()
	document := new(T)
	if err := c.coll.FindOneAndDelete(ctx, filter).Decode(document); err != nil {
		return nil, c.mapError(err)
	}
	return document, nil
}
