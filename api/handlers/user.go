package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/openmotors/car-registry-api/config"
	"github.com/openmotors/car-registry-api/databases"
	"github.com/openmotors/car-registry-api/models"
	"github.com/openmotors/car-registry-api/validation"
)

// User exported for testing purposes
type User struct {
	DB databases.UserDatabase
}

// UserCreateHandler registers a user
func (u User) UserCreateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req models.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	// run all registration rules; every violation is reported in one response
	if violations := validation.ValidateRegistration(req.Username, req.Password); len(violations) > 0 {
		b, _ := json.Marshal(models.ValidationErrorResponse{Errors: violations})
		w.WriteHeader(http.StatusBadRequest)
		w.Write(b)
		return
	}

	// check if the user already exists
	existingUser, err := u.DB.FindByUsername(r.Context(), req.Username)
	if err != nil {
		config.ErrorStatus("failed to check for existing user", http.StatusInternalServerError, w, err)
		return
	}
	if existingUser != nil {
		config.ErrorStatus("username already exists", http.StatusConflict, w, fmt.Errorf("duplicate username"))
		return
	}

	// hash the password, the raw credential is never persisted
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
	}

	// the unique username index backstops the existence check above, so a
	// concurrent registration of the same username lands here as a conflict
	err = u.DB.InsertOne(r.Context(), user)
	if errors.Is(err, databases.ErrDuplicateUsername) {
		config.ErrorStatus("username already exists", http.StatusConflict, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to insert user", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.RegisterResponse{ID: user.ID})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UserByUsernameHandler returns a user given a username
func (u User) UserByUsernameHandler(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	zap.S().Debugf("username: %v", username)

	if username == "" {
		config.ErrorStatus("username is required", http.StatusBadRequest, w, fmt.Errorf("empty username"))
		return
	}

	user, err := u.DB.FindByUsername(r.Context(), username)
	if err != nil {
		config.ErrorStatus("failed to get user by username", http.StatusInternalServerError, w, err)
		return
	}
	if user == nil {
		config.ErrorStatus("no user found with username", http.StatusNotFound, w, fmt.Errorf("user %v does not exist", username))
		return
	}

	b, err := json.Marshal(user)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
