package databases_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openmotors/car-registry-api/config"
	"github.com/openmotors/car-registry-api/databases"
	"github.com/openmotors/car-registry-api/databases/mocks"
	"github.com/openmotors/car-registry-api/models"
)

func TestNewUserDatabase(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	userDB := databases.NewUserDatabase(db)

	assert.NotEmpty(t, userDB)
}

func TestUserDatabase_EnsureUsernameIndex(t *testing.T) {
	collection := &mocks.CollectionHelper{}
	collection.On("CreateIndex", mock.Anything, mock.Anything).Return("username_1", nil)

	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("Collection", "users").Return(collection)

	userDB := databases.NewUserDatabase(dbHelper)
	err := userDB.EnsureUsernameIndex(context.Background())

	assert.NoError(t, err)
}

func TestUserDatabase_EnsureUsernameIndexPropagatesFailure(t *testing.T) {
	collection := &mocks.CollectionHelper{}
	collection.On("CreateIndex", mock.Anything, mock.Anything).
		Return("", errors.New("mocked-error"))

	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("Collection", "users").Return(collection)

	userDB := databases.NewUserDatabase(dbHelper)
	err := userDB.EnsureUsernameIndex(context.Background())

	assert.Error(t, err)
}

func TestUserDatabase_InsertOne(t *testing.T) {
	insertResult := &mocks.InsertOneResultHelper{}

	collection := &mocks.CollectionHelper{}
	collection.On("InsertOne", mock.Anything, mock.Anything).Return(insertResult, nil)

	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("Collection", "users").Return(collection)

	userDB := databases.NewUserDatabase(dbHelper)
	err := userDB.InsertOne(context.Background(), models.User{
		ID:           "some-uuid",
		Username:     "mockeduser",
		PasswordHash: "$2a$10$mockedhash",
	})

	assert.NoError(t, err)
}

func TestUserDatabase_InsertOneDuplicateKey(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	collection := &mocks.CollectionHelper{}
	collection.On("InsertOne", mock.Anything, mock.Anything).Return(nil, dupErr)

	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("Collection", "users").Return(collection)

	userDB := databases.NewUserDatabase(dbHelper)
	err := userDB.InsertOne(context.Background(), models.User{
		ID:           "some-uuid",
		Username:     "mockeduser",
		PasswordHash: "$2a$10$mockedhash",
	})

	assert.ErrorIs(t, err, databases.ErrDuplicateUsername)
}

func TestUserDatabase_FindByUsernameFound(t *testing.T) {
	singleResult := &mocks.SingleResultHelper{}
	singleResult.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.User)
		arg.ID = "mocked-user"
		arg.Username = "mockeduser"
	})

	collection := &mocks.CollectionHelper{}
	collection.On("FindOne", mock.Anything, bson.M{"username": "mockeduser"}).Return(singleResult)

	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("Collection", "users").Return(collection)

	userDB := databases.NewUserDatabase(dbHelper)
	user, err := userDB.FindByUsername(context.Background(), "mockeduser")

	assert.NoError(t, err)
	assert.Equal(t, "mocked-user", user.ID)
}

func TestUserDatabase_FindByUsernameAbsent(t *testing.T) {
	singleResult := &mocks.SingleResultHelper{}
	singleResult.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)

	collection := &mocks.CollectionHelper{}
	collection.On("FindOne", mock.Anything, bson.M{"username": "ghost"}).Return(singleResult)

	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("Collection", "users").Return(collection)

	userDB := databases.NewUserDatabase(dbHelper)
	user, err := userDB.FindByUsername(context.Background(), "ghost")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserDatabase_FindByUsernameStoreError(t *testing.T) {
	singleResult := &mocks.SingleResultHelper{}
	singleResult.On("Decode", mock.Anything).Return(errors.New("mocked-error"))

	collection := &mocks.CollectionHelper{}
	collection.On("FindOne", mock.Anything, mock.Anything).Return(singleResult)

	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("Collection", "users").Return(collection)

	userDB := databases.NewUserDatabase(dbHelper)
	user, err := userDB.FindByUsername(context.Background(), "mockeduser")

	assert.Nil(t, user)
	assert.Error(t, err)
}
