package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dave9314/online-market/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

const itemSelectColumns = `
	i.id, i.name, i.description, i.price, i.manufactured_date,
	i.category_id, c.name, c.slug, i.contact_email, i.image_url,
	i.owner_id, u.username, u.full_name, i.created_at, i.updated_at
`

func scanItem(row interface{ Scan(...any) error }) (models.Item, error) {
	var item models.Item
	var description sql.NullString
	err := row.Scan(
		&item.ID, &item.Name, &description, &item.Price, &item.ManufacturedDate,
		&item.CategoryID, &item.CategoryName, &item.CategorySlug, &item.ContactEmail, &item.ImageURL,
		&item.OwnerID, &item.Owner.Username, &item.Owner.FullName, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return models.Item{}, err
	}
	if description.Valid {
		item.Description = description.String
	}
	return item, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
        INSERT INTO items (name, description, price, manufactured_date, category_id, contact_email, image_url, owner_id, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
    `
	result, err := r.DB.ExecContext(ctx, query,
		item.Name, item.Description, item.Price, item.ManufacturedDate,
		item.CategoryID, item.ContactEmail, item.ImageURL, item.OwnerID,
	)
	if err != nil {
		return models.Item{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Item{}, err
	}
	return r.GetItemByID(ctx, int(id))
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	query := `
		SELECT ` + itemSelectColumns + `
		FROM items i
		JOIN categories c ON i.category_id = c.id
		JOIN users u ON i.owner_id = u.id
		WHERE i.id = ?
	`
	item, err := scanItem(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Item{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]models.Item, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItems returns the newest items first, optionally filtered by
// category. limit <= 0 means no limit.
func (r *ItemRepository) GetItems(ctx context.Context, categoryID int, limit int) ([]models.Item, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + itemSelectColumns + `
		FROM items i
		JOIN categories c ON i.category_id = c.id
		JOIN users u ON i.owner_id = u.id
	`)
	args := []any{}
	if categoryID > 0 {
		sb.WriteString(" WHERE i.category_id = ?")
		args = append(args, categoryID)
	}
	sb.WriteString(" ORDER BY i.created_at DESC")
	if limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	return r.queryItems(ctx, sb.String(), args...)
}

func (r *ItemRepository) GetItemsByOwner(ctx context.Context, ownerID int) ([]models.Item, error) {
	query := `
		SELECT ` + itemSelectColumns + `
		FROM items i
		JOIN categories c ON i.category_id = c.id
		JOIN users u ON i.owner_id = u.id
		WHERE i.owner_id = ?
		ORDER BY i.created_at DESC
	`
	return r.queryItems(ctx, query, ownerID)
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
        UPDATE items
        SET name = ?, description = ?, price = ?, manufactured_date = ?,
            category_id = ?, contact_email = ?, image_url = ?, updated_at = NOW()
        WHERE id = ?
    `
	result, err := r.DB.ExecContext(ctx, query,
		item.Name, item.Description, item.Price, item.ManufacturedDate,
		item.CategoryID, item.ContactEmail, item.ImageURL, item.ID,
	)
	if err != nil {
		return models.Item{}, err
	}
	if _, err := result.RowsAffected(); err != nil {
		return models.Item{}, err
	}
	return r.GetItemByID(ctx, item.ID)
}

// DeleteItem removes the item and its ratings in one transaction so no
// orphaned ratings remain queryable.
func (r *ItemRepository) DeleteItem(ctx context.Context, id int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM ratings WHERE item_id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		tx.Rollback()
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if rowsAffected == 0 {
		tx.Rollback()
		return models.ErrItemNotFound
	}

	return tx.Commit()
}
