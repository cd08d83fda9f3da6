package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dave9314/online-market/internal/models"
)

type RatingRepository struct {
	DB *sql.DB
}

// UpsertRating inserts the caller's rating for an item or overwrites the
// existing one. The write is a single atomic statement keyed on the
// (item_id, user_id) unique constraint, so a concurrent double submit
// from the same user can never produce two rows.
func (r *RatingRepository) UpsertRating(ctx context.Context, rating models.Rating) (models.Rating, error) {
	query := `
		INSERT INTO ratings (item_id, user_id, rating, comment, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
		ON DUPLICATE KEY UPDATE rating = VALUES(rating), comment = VALUES(comment), updated_at = NOW()
	`
	if _, err := r.DB.ExecContext(ctx, query, rating.ItemID, rating.UserID, rating.Rating, rating.Comment); err != nil {
		return models.Rating{}, err
	}
	return r.GetRatingByItemAndUser(ctx, rating.ItemID, rating.UserID)
}

func (r *RatingRepository) GetRatingByItemAndUser(ctx context.Context, itemID, userID int) (models.Rating, error) {
	var rating models.Rating
	var comment sql.NullString
	query := `
		SELECT id, item_id, user_id, rating, comment, created_at, updated_at
		FROM ratings
		WHERE item_id = ? AND user_id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, itemID, userID).Scan(
		&rating.ID, &rating.ItemID, &rating.UserID, &rating.Rating, &comment,
		&rating.CreatedAt, &rating.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Rating{}, models.ErrRatingNotFound
	}
	if err != nil {
		return models.Rating{}, err
	}
	if comment.Valid {
		rating.Comment = comment.String
	}
	return rating, nil
}

func (r *RatingRepository) GetRatingsByItemID(ctx context.Context, itemID int) ([]models.Rating, error) {
	query := `
		SELECT r.id, r.item_id, r.user_id, r.rating, r.comment,
		       u.username, u.full_name,
		       r.created_at, r.updated_at
		FROM ratings r
		JOIN users u ON r.user_id = u.id
		WHERE r.item_id = ?
		ORDER BY r.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []models.Rating{}
	for rows.Next() {
		var rating models.Rating
		var comment sql.NullString
		err := rows.Scan(&rating.ID, &rating.ItemID, &rating.UserID, &rating.Rating, &comment,
			&rating.UserName, &rating.UserFullName,
			&rating.CreatedAt, &rating.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if comment.Valid {
			rating.Comment = comment.String
		}
		ratings = append(ratings, rating)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetRatingsByItemIDs fetches the raw rating rows for a set of items in
// one query; aggregation happens in the service layer.
func (r *RatingRepository) GetRatingsByItemIDs(ctx context.Context, itemIDs []int) ([]models.Rating, error) {
	if len(itemIDs) == 0 {
		return []models.Rating{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(itemIDs)), ",")
	query := `
		SELECT id, item_id, user_id, rating, comment, created_at, updated_at
		FROM ratings
		WHERE item_id IN (` + placeholders + `)`

	args := make([]any, len(itemIDs))
	for i, id := range itemIDs {
		args[i] = id
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []models.Rating{}
	for rows.Next() {
		var rating models.Rating
		var comment sql.NullString
		err := rows.Scan(&rating.ID, &rating.ItemID, &rating.UserID, &rating.Rating, &comment,
			&rating.CreatedAt, &rating.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if comment.Valid {
			rating.Comment = comment.String
		}
		ratings = append(ratings, rating)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}
