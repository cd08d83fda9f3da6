package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/dave9314/online-market/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const itemListLimit = 50

type ItemStore interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItemByID(ctx context.Context, id int) (models.Item, error)
	GetItems(ctx context.Context, categoryID int, limit int) ([]models.Item, error)
	GetItemsByOwner(ctx context.Context, ownerID int) ([]models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, id int) error
}

type CategoryStore interface {
	CategoryExists(ctx context.Context, id int) (bool, error)
}

type ItemRatingStore interface {
	GetRatingsByItemID(ctx context.Context, itemID int) ([]models.Rating, error)
	GetRatingsByItemIDs(ctx context.Context, itemIDs []int) ([]models.Rating, error)
}

type ItemService struct {
	ItemRepo     ItemStore
	CategoryRepo CategoryStore
	RatingRepo   ItemRatingStore
}

func (s *ItemService) validateItemFields(ctx context.Context, item models.Item) error {
	switch {
	case len(strings.TrimSpace(item.Name)) < 3:
		return models.NewValidationError("name", "item name must be at least 3 characters")
	case item.Price <= 0:
		return models.NewValidationError("price", "price must be positive")
	case strings.TrimSpace(item.ManufacturedDate) == "":
		return models.NewValidationError("manufactured_date", "manufactured date is required")
	case !emailPattern.MatchString(item.ContactEmail):
		return models.NewValidationError("contact_email", "valid email is required")
	case strings.TrimSpace(item.ImageURL) == "":
		return models.NewValidationError("image_url", "image is required")
	}

	exists, err := s.CategoryRepo.CategoryExists(ctx, item.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewValidationError("category_id", "category does not exist")
	}
	return nil
}

func (s *ItemService) CreateItem(ctx context.Context, caller *models.Caller, req models.CreateItemRequest) (models.Item, error) {
	if !IsAuthenticated(caller) {
		return models.Item{}, models.ErrUnauthorized
	}

	item := models.Item{
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		ManufacturedDate: req.ManufacturedDate,
		CategoryID:       req.CategoryID,
		ContactEmail:     req.ContactEmail,
		ImageURL:         req.ImageURL,
		OwnerID:          caller.ID,
	}
	if err := s.validateItemFields(ctx, item); err != nil {
		return models.Item{}, err
	}
	return s.ItemRepo.CreateItem(ctx, item)
}

func (s *ItemService) GetItem(ctx context.Context, id int) (models.Item, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	ratings, err := s.RatingRepo.GetRatingsByItemID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	summary := Aggregate(ratings)
	item.AverageRating = summary.AverageRating
	item.TotalRatings = summary.TotalRatings
	return item, nil
}

// annotateRatings attaches the canonical aggregate to every item using
// one batched rating query.
func (s *ItemService) annotateRatings(ctx context.Context, items []models.Item) ([]models.Item, error) {
	itemIDs := make([]int, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}
	ratings, err := s.RatingRepo.GetRatingsByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	summaries := AggregateBatch(itemIDs, ratings)
	for i := range items {
		summary := summaries[items[i].ID]
		items[i].AverageRating = summary.AverageRating
		items[i].TotalRatings = summary.TotalRatings
	}
	return items, nil
}

func (s *ItemService) ListItems(ctx context.Context, categoryID int) ([]models.Item, error) {
	items, err := s.ItemRepo.GetItems(ctx, categoryID, itemListLimit)
	if err != nil {
		return nil, err
	}
	return s.annotateRatings(ctx, items)
}

func (s *ItemService) ListItemsByOwner(ctx context.Context, caller *models.Caller) ([]models.Item, error) {
	if !IsAuthenticated(caller) {
		return nil, models.ErrUnauthorized
	}
	items, err := s.ItemRepo.GetItemsByOwner(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return s.annotateRatings(ctx, items)
}

// TopRated returns every rated item ordered best-first. The repository
// delivers items newest-first, which the stable sort keeps as the final
// tie-break.
func (s *ItemService) TopRated(ctx context.Context) ([]models.Item, error) {
	items, err := s.ItemRepo.GetItems(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	items, err = s.annotateRatings(ctx, items)
	if err != nil {
		return nil, err
	}
	return RankTopRated(items), nil
}

func (s *ItemService) UpdateItem(ctx context.Context, caller *models.Caller, id int, req models.ItemUpdateRequest) (models.Item, error) {
	if !IsAuthenticated(caller) {
		return models.Item{}, models.ErrUnauthorized
	}
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if !CanMutateItem(caller, item) {
		return models.Item{}, models.ErrForbidden
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.ManufacturedDate != nil {
		item.ManufacturedDate = *req.ManufacturedDate
	}
	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
	}
	if req.ContactEmail != nil {
		item.ContactEmail = *req.ContactEmail
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}

	if err := s.validateItemFields(ctx, item); err != nil {
		return models.Item{}, err
	}
	updated, err := s.ItemRepo.UpdateItem(ctx, item)
	if err != nil {
		return models.Item{}, err
	}
	return s.GetItem(ctx, updated.ID)
}

func (s *ItemService) DeleteItem(ctx context.Context, caller *models.Caller, id int) error {
	if !IsAuthenticated(caller) {
		return models.ErrUnauthorized
	}
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutateItem(caller, item) {
		return models.ErrForbidden
	}
	return s.ItemRepo.DeleteItem(ctx, item.ID)
}
