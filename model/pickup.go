package model

import "time"

// ScrapItem is one line of a pickup submission.
type ScrapItem struct {
	Name   string  `json:"name" validate:"required"`
	Price  string  `json:"price" validate:"required"`
	Weight float64 `json:"weight" validate:"required"`
}

// PickupRequest is a stored scrap pickup request. The bearer token presented
// at creation is kept on the row; list-by-owner matches on it exactly.
type PickupRequest struct {
	ID         uint64      `db:"id" json:"-"`
	RequestID  string      `db:"request_id" json:"requestId"`
	AuthToken  string      `db:"auth_token" json:"-"`
	OwnerID    uint64      `db:"owner_id" json:"-"`
	Items      []ScrapItem `db:"-" json:"scrapItems"`
	Name       string      `db:"name" json:"name"`
	Image      string      `db:"image" json:"image,omitempty"`
	PickUpDate string      `db:"pick_up_date" json:"pickUpDate"`
	PickUpTime string      `db:"pick_up_time" json:"pickUpTime"`
	Location   string      `db:"location" json:"location"`
	Latitude   *float64    `db:"latitude" json:"latitude,omitempty"`
	Longitude  *float64    `db:"longitude" json:"longitude,omitempty"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
}

// CreatePickupRequest is the parsed multipart submission.
type CreatePickupRequest struct {
	Items      []ScrapItem `validate:"required,dive"`
	Name       string      `validate:"required"`
	ImagePath  string
	PickUpDate string `validate:"required"`
	PickUpTime string `validate:"required"`
	Location   string `validate:"required"`
	Latitude   *float64
	Longitude  *float64
}

type CreatePickupResponse struct {
	RequestID string `json:"requestId"`
}
