package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/openmotors/car-registry-api/api/handlers"
	"github.com/openmotors/car-registry-api/databases"
	"github.com/openmotors/car-registry-api/databases/mocks"
	"github.com/openmotors/car-registry-api/models"
)

func TestUser_UserCreateHandlerValidationFailure(t *testing.T) {
	body := `{"username": "ab", "password": "Password1"}`
	req, err := http.NewRequest("POST", "/api/v1/users", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	userDB := &mocks.UserDatabase{}
	u := handlers.User{DB: userDB}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.UserCreateHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp models.ValidationErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "username")

	// invalid input never reaches the database
	userDB.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	userDB.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestUser_UserCreateHandlerDuplicateUsername(t *testing.T) {
	body := `{"username": "validUser1", "password": "GoodPass1"}`
	req, err := http.NewRequest("POST", "/api/v1/users", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	userDB := &mocks.UserDatabase{}
	userDB.On("FindByUsername", mock.Anything, "validUser1").
		Return(&models.User{ID: "existing-id", Username: "validUser1"}, nil)

	u := handlers.User{DB: userDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	userDB.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

// The existence check and the insert are two separate store calls, so two
// concurrent registrations of the same username can both pass the check.
// The unique username index turns the losing insert into a duplicate-key
// failure, which must surface as a conflict rather than a second account.
func TestUser_UserCreateHandlerInsertTimeConflict(t *testing.T) {
	body := `{"username": "validUser1", "password": "GoodPass1"}`
	req, err := http.NewRequest("POST", "/api/v1/users", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	userDB := &mocks.UserDatabase{}
	userDB.On("FindByUsername", mock.Anything, "validUser1").Return(nil, nil)
	userDB.On("InsertOne", mock.Anything, mock.Anything).
		Return(databases.ErrDuplicateUsername)

	u := handlers.User{DB: userDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestUser_UserCreateHandlerSuccess(t *testing.T) {
	body := `{"username": "validUser1", "password": "GoodPass1"}`
	req, err := http.NewRequest("POST", "/api/v1/users", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	userDB := &mocks.UserDatabase{}
	userDB.On("FindByUsername", mock.Anything, "validUser1").Return(nil, nil)
	userDB.On("InsertOne", mock.Anything, mock.MatchedBy(func(user models.User) bool {
		if user.Username != "validUser1" || user.ID == "" {
			return false
		}
		// stored credential must be a hash of the password, never the raw value
		return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("GoodPass1")) == nil
	})).Return(nil)

	u := handlers.User{DB: userDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp models.RegisterResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	userDB.AssertExpectations(t)
}

func TestUser_UserCreateHandlerBadBody(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/users", strings.NewReader("{not-json"))
	if err != nil {
		t.Fatal(err)
	}

	u := handlers.User{DB: &mocks.UserDatabase{}}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUser_UserByUsernameHandlerFound(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/users/mockeduser", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"username": "mockeduser"})

	userDB := &mocks.UserDatabase{}
	userDB.On("FindByUsername", mock.Anything, "mockeduser").
		Return(&models.User{ID: "mocked-id", Username: "mockeduser", PasswordHash: "$2a$10$secret"}, nil)

	u := handlers.User{DB: userDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserByUsernameHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "mockeduser")
	// the hash never leaves the service
	assert.NotContains(t, rr.Body.String(), "secret")
}

func TestUser_UserByUsernameHandlerNotFound(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/users/ghost", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"username": "ghost"})

	userDB := &mocks.UserDatabase{}
	userDB.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

	u := handlers.User{DB: userDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserByUsernameHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUser_UserByUsernameHandlerMissingParam(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/users/", nil)
	if err != nil {
		t.Fatal(err)
	}

	u := handlers.User{DB: &mocks.UserDatabase{}}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserByUsernameHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
