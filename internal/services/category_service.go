package services

import (
	"context"

	"github.com/dave9314/online-market/internal/models"
	"github.com/dave9314/online-market/internal/repositories"
)

type CategoryService struct {
	CategoryRepo *repositories.CategoryRepository
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.CategoryRepo.GetAllCategories(ctx)
}

func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	return s.CategoryRepo.GetCategoryBySlug(ctx, slug)
}

// SeedDefaults inserts the fixed catalog and is safe to run on every
// start; existing slugs are left untouched.
func (s *CategoryService) SeedDefaults(ctx context.Context) error {
	defaults := []struct {
		name string
		slug string
	}{
		{"Used Vehicles", "used-vehicles"},
		{"Used Electronics", "used-electronics"},
		{"Used Furniture", "used-furniture"},
		{"Other Used Items", "other-used-items"},
	}
	for _, c := range defaults {
		if err := s.CategoryRepo.SeedCategory(ctx, c.name, c.slug); err != nil {
			return err
		}
	}
	return nil
}
