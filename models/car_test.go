package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openmotors/car-registry-api/models"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestCarRoundTripAllFields(t *testing.T) {
	car := models.Car{
		BrandName:    "Toyota",
		Model:        "Corolla",
		Number:       "KA-01-HH-1234",
		Year:         2020,
		Color:        strPtr("blue"),
		FuelType:     strPtr("petrol"),
		Transmission: strPtr("manual"),
		Mileage:      intPtr(42000),
		Price:        floatPtr(15999.99),
	}

	doc, err := car.ToDocument()
	assert.NoError(t, err)

	got, err := models.CarFromDocument(doc)
	assert.NoError(t, err)
	assert.Equal(t, car, got)
}

func TestCarRoundTripOptionalFieldsAbsent(t *testing.T) {
	car := models.Car{
		BrandName: "Honda",
		Model:     "Civic",
		Number:    "MH-12-AB-9999",
		Year:      2018,
	}

	doc, err := car.ToDocument()
	assert.NoError(t, err)

	// unset optional fields must not appear in the stored document
	for _, field := range []string{"color", "fuelType", "transmission", "mileage", "price"} {
		_, ok := doc[field]
		assert.False(t, ok, "field %q should be omitted", field)
	}

	got, err := models.CarFromDocument(doc)
	assert.NoError(t, err)
	assert.Equal(t, car, got)
}

func TestCarFromDocumentIgnoresUnknownFields(t *testing.T) {
	doc := bson.M{
		"_id":         primitive.NewObjectID(),
		"brandName":   "Ford",
		"model":       "Focus",
		"number":      "DL-03-CD-0001",
		"year":        int32(2015),
		"futureField": "something newer writers persisted",
	}

	got, err := models.CarFromDocument(doc)
	assert.NoError(t, err)
	assert.Equal(t, "Ford", got.BrandName)
	assert.Equal(t, 2015, got.Year)
}

func TestCarFromDocumentMissingRequiredField(t *testing.T) {
	doc := bson.M{
		"model":  "Focus",
		"number": "DL-03-CD-0001",
		"year":   int32(2015),
	}

	_, err := models.CarFromDocument(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "brandName")
}
