// Package mongodb
package mongodb

import (
	"context"
	. "github.com/half-nothing/flylog/internal/interfaces/operation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"time"
)

var _ PlaneOperationInterface = (*PlaneOperation)(nil)

type PlaneOperation struct {
	planes *collection[Plane]
}

func NewPlaneOperation(database *mongo.Database, queryTimeout time.Duration) *PlaneOperation {
	return &PlaneOperation{planes: newCollection[Plane](database, PlaneCollection, queryTimeout, ErrPlaneNotFound)}
}

func (planeOperation *PlaneOperation) NewPlane(name string) *Plane {
	return &Plane{Name: name}
}

func (planeOperation *PlaneOperation) AddPlane(ctx context.Context, plane *Plane) error {
	if plane.ID == "" {
		plane.ID = newId()
	}
	plane.CreatedAt = time.Now().UTC()
	return planeOperation.planes.insert(ctx, plane)
}

func (planeOperation *PlaneOperation) GetPlanes(ctx context.Context) ([]*Plane, error) {
	return planeOperation.planes.find(ctx, bson.M{}, sortByCreatedAt)
}

func (planeOperation *PlaneOperation) GetPlanesByIds(ctx context.Context, ids []string) ([]*Plane, error) {
	return planeOperation.planes.findIn(ctx, "_id", ids)
}

func (planeOperation *PlaneOperation) DeletePlane(ctx context.Context, id string) (*Plane, error) {
	return planeOperation.planes.delete(ctx, bson.M{"_id": id})
}
