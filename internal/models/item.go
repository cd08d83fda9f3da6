package models

import (
	"time"
)

type Item struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description,omitempty"`
	Price            float64 `json:"price"`
	ManufacturedDate string  `json:"manufactured_date"`
	CategoryID       int     `json:"category_id"`
	CategoryName     string  `json:"category_name,omitempty"`
	CategorySlug     string  `json:"category_slug,omitempty"`
	ContactEmail     string  `json:"contact_email"`
	ImageURL         string  `json:"image_url"`
	OwnerID          int     `json:"owner_id"`
	Owner            struct {
		Username string `json:"username"`
		FullName string `json:"full_name"`
	} `json:"owner"`
	AverageRating float64    `json:"average_rating"`
	TotalRatings  int        `json:"total_ratings"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type CreateItemRequest struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	ManufacturedDate string  `json:"manufactured_date"`
	CategoryID       int     `json:"category_id"`
	ContactEmail     string  `json:"contact_email"`
	ImageURL         string  `json:"image_url"`
}

// ItemUpdateRequest enumerates the updatable item fields. Pointers
// distinguish "leave unchanged" from "set"; the owner reference is not
// part of the surface at all.
type ItemUpdateRequest struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	ManufacturedDate *string  `json:"manufactured_date,omitempty"`
	CategoryID       *int     `json:"category_id,omitempty"`
	ContactEmail     *string  `json:"contact_email,omitempty"`
	ImageURL         *string  `json:"image_url,omitempty"`
}
