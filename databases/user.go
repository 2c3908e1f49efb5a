package databases

// go generate: mockery --name UserDatabase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openmotors/car-registry-api/models"
)

const userCollectionName = "users"

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	EnsureUsernameIndex(ctx context.Context) error
	InsertOne(ctx context.Context, user models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

// EnsureUsernameIndex creates the unique index on username. The index is what
// makes concurrent registrations of the same username safe: the existence
// check in the handler is racy on its own, the index closes the window.
func (u *userDatabase) EnsureUsernameIndex(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := u.db.Collection(userCollectionName).CreateIndex(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to create unique username index: %w", err)
	}
	return nil
}

// InsertOne appends a user document keyed by the caller-generated id. A
// duplicate-key failure from the unique username index is reported as
// ErrDuplicateUsername.
func (u *userDatabase) InsertOne(ctx context.Context, user models.User) error {
	_, err := u.db.Collection(userCollectionName).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUsername
	}
	return err
}

// FindByUsername returns the user whose username matches exactly, or
// (nil, nil) when no such user exists.
func (u *userDatabase) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := u.db.Collection(userCollectionName).FindOne(ctx, bson.M{"username": username}).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
