package services

import (
	"context"

	"github.com/dave9314/online-market/internal/models"
)

type RatingStore interface {
	UpsertRating(ctx context.Context, rating models.Rating) (models.Rating, error)
	GetRatingsByItemID(ctx context.Context, itemID int) ([]models.Rating, error)
}

type RatingItemStore interface {
	GetItemByID(ctx context.Context, id int) (models.Item, error)
}

type RatingService struct {
	RatingRepo RatingStore
	ItemRepo   RatingItemStore
}

// Submit stores the caller's rating for an item, overwriting any rating
// they submitted before. Item existence is checked up front so a missing
// item surfaces as not-found rather than a constraint violation.
func (s *RatingService) Submit(ctx context.Context, caller *models.Caller, req models.SubmitRatingRequest) (models.Rating, error) {
	if !IsAuthenticated(caller) {
		return models.Rating{}, models.ErrUnauthorized
	}
	if req.Rating < 1 || req.Rating > 5 {
		return models.Rating{}, models.NewValidationError("rating", "rating must be between 1 and 5")
	}
	if _, err := s.ItemRepo.GetItemByID(ctx, req.ItemID); err != nil {
		return models.Rating{}, err
	}

	rating := models.Rating{
		ItemID:  req.ItemID,
		UserID:  caller.ID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	return s.RatingRepo.UpsertRating(ctx, rating)
}

func (s *RatingService) ListForItem(ctx context.Context, itemID int) (models.ItemRatingsResponse, error) {
	if _, err := s.ItemRepo.GetItemByID(ctx, itemID); err != nil {
		return models.ItemRatingsResponse{}, err
	}
	ratings, err := s.RatingRepo.GetRatingsByItemID(ctx, itemID)
	if err != nil {
		return models.ItemRatingsResponse{}, err
	}
	summary := Aggregate(ratings)
	return models.ItemRatingsResponse{
		Ratings:       ratings,
		AverageRating: summary.AverageRating,
		TotalRatings:  summary.TotalRatings,
	}, nil
}
