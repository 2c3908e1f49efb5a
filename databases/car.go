package databases

// go generate: mockery --name CarDatabase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/openmotors/car-registry-api/models"
)

const carCollectionName = "cars"

// CarDatabase contains the methods to use with the car database
type CarDatabase interface {
	EnsureCollection(ctx context.Context) error
	Create(ctx context.Context, car models.Car) (string, error)
	FindByID(ctx context.Context, id string) (*models.Car, error)
	FindAll(ctx context.Context) ([]models.Car, error)
	Replace(ctx context.Context, id string, car models.Car) (bson.M, error)
	Delete(ctx context.Context, id string) (bson.M, error)
}

type carDatabase struct {
	db DatabaseHelper
}

// NewCarDatabase initializes a new instance of car database with the provided db connection
func NewCarDatabase(db DatabaseHelper) CarDatabase {
	return &carDatabase{
		db: db,
	}
}

// EnsureCollection creates the cars collection if it does not exist yet. It is
// called once at startup and a failure here aborts the process.
func (c *carDatabase) EnsureCollection(ctx context.Context) error {
	names, err := c.db.ListCollectionNames(ctx, bson.M{"name": carCollectionName})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	if len(names) == 0 {
		zap.S().Infow("creating collection", "collection", carCollectionName)
		if err := c.db.CreateCollection(ctx, carCollectionName); err != nil {
			return fmt.Errorf("failed to create collection %q: %w", carCollectionName, err)
		}
	}
	return nil
}

func (c *carDatabase) Create(ctx context.Context, car models.Car) (string, error) {
	doc, err := car.ToDocument()
	if err != nil {
		return "", err
	}
	res, err := c.db.Collection(carCollectionName).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.Decode().(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.Decode()), nil
}

func (c *carDatabase) FindByID(ctx context.Context, id string) (*models.Car, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc bson.M
	err = c.db.Collection(carCollectionName).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	car, err := models.CarFromDocument(doc)
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// FindAll returns every well-formed car in the collection. A document that
// fails to map is logged and skipped rather than aborting the whole listing.
func (c *carDatabase) FindAll(ctx context.Context) ([]models.Car, error) {
	cursor, err := c.db.Collection(carCollectionName).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cars []models.Car
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			zap.S().Warnw("skipping undecodable car document", "error", err)
			continue
		}
		car, err := models.CarFromDocument(doc)
		if err != nil {
			zap.S().Warnw("skipping malformed car document", "_id", doc["_id"], "error", err)
			continue
		}
		cars = append(cars, car)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return cars, nil
}

// Replace swaps the full record for the given id and returns the document as
// it existed before the replacement, or (nil, nil) when nothing matched.
func (c *carDatabase) Replace(ctx context.Context, id string, car models.Car) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	doc, err := car.ToDocument()
	if err != nil {
		return nil, err
	}
	var previous bson.M
	err = c.db.Collection(carCollectionName).FindOneAndReplace(ctx, bson.M{"_id": oid}, doc).Decode(&previous)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return previous, nil
}

// Delete removes the record for the given id and returns the removed
// document, or (nil, nil) when nothing matched.
func (c *carDatabase) Delete(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var removed bson.M
	err = c.db.Collection(carCollectionName).FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&removed)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return removed, nil
}
