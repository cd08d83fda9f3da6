package repositories

import (
	"context"
	"database/sql"

	"github.com/dave9314/online-market/internal/models"
)

type StatsRepository struct {
	DB *sql.DB
}

type DashboardStats struct {
	TotalUsers      int           `json:"total_users"`
	TotalItems      int           `json:"total_items"`
	TotalCategories int           `json:"total_categories"`
	UsersWithItems  int           `json:"users_with_items"`
	RecentUsers     []models.User `json:"recent_users"`
}

func (r *StatsRepository) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats

	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM items),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(DISTINCT owner_id) FROM items)
	`
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&stats.TotalUsers, &stats.TotalItems, &stats.TotalCategories, &stats.UsersWithItems,
	)
	if err != nil {
		return DashboardStats{}, err
	}

	recentQuery := `
		SELECT u.id, u.username, u.full_name, u.created_at,
		       (SELECT COUNT(*) FROM items i WHERE i.owner_id = u.id) AS items_count
		FROM users u
		ORDER BY u.created_at DESC
		LIMIT 5
	`
	rows, err := r.DB.QueryContext(ctx, recentQuery)
	if err != nil {
		return DashboardStats{}, err
	}
	defer rows.Close()

	stats.RecentUsers = []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.FullName, &user.CreatedAt, &user.ItemsCount); err != nil {
			return DashboardStats{}, err
		}
		stats.RecentUsers = append(stats.RecentUsers, user)
	}
	if err = rows.Err(); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}
