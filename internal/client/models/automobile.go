// Package models defines client-side data models used by the inoauto CLI.
package models

// Automobile is the record shape returned by GET /automobiles.
type Automobile struct {
	ID              string   `json:"id"`
	Brand           string   `json:"brand"`
	Model           string   `json:"model"`
	Variant         string   `json:"variant"`
	ManufactureYear string   `json:"manufactureYear"`
	ModelYear       string   `json:"modelYear"`
	Chassis         string   `json:"chassis"`
	Color           string   `json:"color"`
	Fuel            string   `json:"fuel"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Plate           string   `json:"plate"`
	Mileage         string   `json:"mileage,omitempty"`
	Price           string   `json:"price,omitempty"`
	Photos          []string `json:"photos,omitempty"`
}

// RegistrationForm is the payload submitted to POST /automobiles.
//
// Scalar fields hold normalized values only: every write goes through the
// matching normalize function, whether the value came from the keyboard or
// from a plate-lookup auto-fill. Photos and Documents hold the canonical
// storage URLs collected by the upload pipeline just before submission.
type RegistrationForm struct {
	Plate           string   `json:"plate"`
	Brand           string   `json:"brand"`
	Model           string   `json:"model"`
	Variant         string   `json:"variant"`
	ManufactureYear string   `json:"manufactureYear"`
	ModelYear       string   `json:"modelYear"`
	Chassis         string   `json:"chassis"`
	Color           string   `json:"color"`
	Fuel            string   `json:"fuel"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Mileage         string   `json:"mileage"`
	Price           string   `json:"price"`
	Photos          []string `json:"photos"`
	Documents       []string `json:"documents"`
}
