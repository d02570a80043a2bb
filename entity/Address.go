package entity

import (
	"gorm.io/gorm"
)

// Address rows are content-addressed: values are canonicalized before
// compare/store and a row is only created when no identical one exists.
type Address struct {
	gorm.Model
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	Bus         string `gorm:"default:/" json:"bus"`
}
