package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Car holds the structure for the car collection in mongo. The document id is
// assigned by mongo on insert and travels outside this struct as a hex string.
type Car struct {
	BrandName    string   `json:"brandName" bson:"brandName"`
	Model        string   `json:"model" bson:"model"`
	Number       string   `json:"number" bson:"number"`
	Year         int      `json:"year" bson:"year"`
	Color        *string  `json:"color,omitempty" bson:"color,omitempty"`
	FuelType     *string  `json:"fuelType,omitempty" bson:"fuelType,omitempty"`
	Transmission *string  `json:"transmission,omitempty" bson:"transmission,omitempty"`
	Mileage      *int     `json:"mileage,omitempty" bson:"mileage,omitempty"`
	Price        *float64 `json:"price,omitempty" bson:"price,omitempty"`
}

// carRequiredFields must be present in every stored car document
var carRequiredFields = []string{"brandName", "model", "number", "year"}

// ToDocument serializes the car into the generic document form stored in mongo.
// Optional fields that are unset are omitted from the document.
func (c Car) ToDocument() (bson.M, error) {
	b, err := bson.Marshal(c)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// CarFromDocument decodes a stored document into a Car. Unknown fields in the
// document (including the mongo _id) are ignored; a missing required field is
// an error.
func CarFromDocument(doc bson.M) (Car, error) {
	for _, field := range carRequiredFields {
		if _, ok := doc[field]; !ok {
			return Car{}, fmt.Errorf("car document missing required field %q", field)
		}
	}
	b, err := bson.Marshal(doc)
	if err != nil {
		return Car{}, err
	}
	var car Car
	if err := bson.Unmarshal(b, &car); err != nil {
		return Car{}, err
	}
	return car, nil
}
