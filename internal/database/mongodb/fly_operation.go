// Package mongodb
package mongodb

import (
	"context"
	. "github.com/half-nothing/flylog/internal/interfaces/operation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"time"
)

var _ FlyOperationInterface = (*FlyOperation)(nil)

type FlyOperation struct {
	flys *collection[Fly]
}

func NewFlyOperation(database *mongo.Database, queryTimeout time.Duration) *FlyOperation {
	return &FlyOperation{flys: newCollection[Fly](database, FlyCollection, queryTimeout, ErrFlyNotFound)}
}

func (flyOperation *FlyOperation) NewFly(authorId string, date time.Time, duration int, planeId string) *Fly {
	return &Fly{
		Date:     date.UTC(),
		Duration: duration,
		AuthorId: authorId,
		PlaneId:  planeId,
	}
}

func (flyOperation *FlyOperation) AddFly(ctx context.Context, fly *Fly) error {
	now := time.Now().UTC()
	if fly.ID == "" {
		fly.ID = newId()
	}
	fly.CreatedAt, fly.UpdatedAt = now, now
	return flyOperation.flys.insert(ctx, fly)
}

func (flyOperation *FlyOperation) GetFlyById(ctx context.Context, id string) (*Fly, error) {
	return flyOperation.flys.findOne(ctx, bson.M{"_id": id})
}

func (flyOperation *FlyOperation) GetFlys(ctx context.Context) ([]*Fly, error) {
	return flyOperation.flys.find(ctx, bson.M{}, sortByCreatedAt)
}

func (flyOperation *FlyOperation) GetFlysByIds(ctx context.Context, ids []string) ([]*Fly, error) {
	return flyOperation.flys.findIn(ctx, "_id", ids)
}

func (flyOperation *FlyOperation) GetFlysBetween(ctx context.Context, from, to time.Time) ([]*Fly, error) {
	return flyOperation.flys.find(
		ctx,
		bson.M{"date": bson.M{"$gte": from.UTC(), "$lte": to.UTC()}},
		bson.D{{Key: "date", Value: 1}},
	)
}

func (flyOperation *FlyOperation) GetFlysByAuthorIds(ctx context.Context, authorIds []string) ([]*Fly, error) {
	return flyOperation.flys.findIn(ctx, "author_id", authorIds)
}

func (flyOperation *FlyOperation) GetFlysByPlaneIds(ctx context.Context, planeIds []string) ([]*Fly, error) {
	return flyOperation.flys.findIn(ctx, "plane_id", planeIds)
}

func (flyOperation *FlyOperation) UpdateFly(ctx context.Context, id string, update *FlyUpdate) (*Fly, error) {
	return flyOperation.flys.update(ctx, bson.M{"_id": id}, update.Fields())
}

func (flyOperation *FlyOperation) DeleteFly(ctx context.Context, id string, authorId string) (*Fly, error) {
	filter := bson.M{"_id": id}
	if authorId != "" {
		filter["author_id"] = authorId
	}
	return flyOperation.flys.delete(ctx, filter)
}
