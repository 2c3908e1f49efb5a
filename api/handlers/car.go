package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/openmotors/car-registry-api/config"
	"github.com/openmotors/car-registry-api/databases"
	"github.com/openmotors/car-registry-api/models"
)

// Car exported for testing purposes
type Car struct {
	DB databases.CarDatabase
}

// CreateCarHandler inserts a new car and returns the store-assigned id
func (c Car) CreateCarHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var car models.Car
	err := json.NewDecoder(r.Body).Decode(&car)
	if err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if car.BrandName == "" || car.Model == "" || car.Number == "" || car.Year == 0 {
		config.ErrorStatus("missing required car fields", http.StatusBadRequest, w, fmt.Errorf("brandName, model, number and year are required"))
		return
	}

	id, err := c.DB.Create(r.Context(), car)
	if err != nil {
		config.ErrorStatus("failed to insert car", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]string{"id": id})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// CarByIDHandler returns a car by ID
func (c Car) CarByIDHandler(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["car_id"]

	zap.S().Debugf("car_id: %v", carID)

	_, err := primitive.ObjectIDFromHex(carID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := c.DB.FindByID(r.Context(), carID)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus("failed to get car by ID", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get car by ID", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CarHandler returns all cars
func (c Car) CarHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := c.DB.FindAll(r.Context())
	if err != nil {
		config.ErrorStatus("failed to get cars", http.StatusInternalServerError, w, err)
		return
	}
	// Because the frontend requires that the data elements inside models.Car exist, if
	// len == 0 then we will just return an empty data object
	if len(dbResp) == 0 {
		dbResp = []models.Car{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateCarHandler replaces a car's fields by ID and returns the previous document
func (c Car) UpdateCarHandler(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["car_id"]

	var car models.Car
	err := json.NewDecoder(r.Body).Decode(&car)
	if err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if car.BrandName == "" || car.Model == "" || car.Number == "" || car.Year == 0 {
		config.ErrorStatus("missing required car fields", http.StatusBadRequest, w, fmt.Errorf("brandName, model, number and year are required"))
		return
	}

	previous, err := c.DB.Replace(r.Context(), carID, car)
	if err != nil {
		config.ErrorStatus("failed to update car", http.StatusInternalServerError, w, err)
		return
	}
	if previous == nil {
		config.ErrorStatus("no car found with id", http.StatusNotFound, w, fmt.Errorf("car %v does not exist", carID))
		return
	}

	b, err := json.Marshal(previous)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteCarHandler removes a car by ID and returns the removed document
func (c Car) DeleteCarHandler(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["car_id"]

	removed, err := c.DB.Delete(r.Context(), carID)
	if err != nil {
		config.ErrorStatus("failed to delete car", http.StatusInternalServerError, w, err)
		return
	}
	if removed == nil {
		config.ErrorStatus("no car found with id", http.StatusNotFound, w, fmt.Errorf("car %v does not exist", carID))
		return
	}

	b, err := json.Marshal(removed)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
