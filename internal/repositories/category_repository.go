package repositories

import (
	"context"
	"database/sql"

	"github.com/dave9314/online-market/internal/models"
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.created_at,
		       (SELECT COUNT(*) FROM items i WHERE i.category_id = c.id) AS items_count
		FROM categories c
		ORDER BY c.name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.CreatedAt, &category.ItemsCount); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id int) (models.Category, error) {
	var category models.Category
	query := `SELECT id, name, slug, created_at FROM categories WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name, &category.Slug, &category.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Category{}, models.ErrCategoryNotFound
	}
	if err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (r *CategoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	var category models.Category
	query := `SELECT id, name, slug, created_at FROM categories WHERE slug = ?`
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(&category.ID, &category.Name, &category.Slug, &category.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Category{}, models.ErrCategoryNotFound
	}
	if err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (r *CategoryRepository) CategoryExists(ctx context.Context, id int) (bool, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE id = ?`, id).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// SeedCategory inserts a category if its slug is not present yet. The
// catalog is immutable after seed, so this is the only write path.
func (r *CategoryRepository) SeedCategory(ctx context.Context, name, slug string) error {
	query := `
		INSERT INTO categories (name, slug, created_at)
		VALUES (?, ?, NOW())
		ON DUPLICATE KEY UPDATE name = name
	`
	_, err := r.DB.ExecContext(ctx, query, name, slug)
	return err
}
