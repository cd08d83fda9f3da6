package models

import (
	"time"
)

type Rating struct {
	ID           int        `json:"id"`
	ItemID       int        `json:"item_id"`
	UserID       int        `json:"user_id"`
	Rating       int        `json:"rating"`
	Comment      string     `json:"comment,omitempty"`
	UserName     string     `json:"user_name,omitempty"`
	UserFullName string     `json:"user_full_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// RatingSummary is the canonical aggregate for one item: the mean of
// its rating values rounded to one decimal, and how many there are.
type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`
}

type SubmitRatingRequest struct {
	ItemID  int    `json:"item_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ItemRatingsResponse struct {
	Ratings       []Rating `json:"ratings"`
	AverageRating float64  `json:"average_rating"`
	TotalRatings  int      `json:"total_ratings"`
}
