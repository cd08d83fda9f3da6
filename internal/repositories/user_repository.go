package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/dave9314/online-market/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

// isDuplicateEntryError reports a MySQL/MariaDB unique-constraint
// violation (error 1062).
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        INSERT INTO users (username, password, full_name, address, phone, email, role, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
    `
	result, err := r.DB.ExecContext(ctx, query,
		user.Username, user.Password, user.FullName, user.Address, user.Phone, user.Email, user.Role,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return models.User{}, models.ErrDuplicateUsername
		}
		return models.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	user.CreatedAt = time.Now()
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	query := `
        SELECT id, username, password, full_name, address, phone, email, role, created_at, updated_at
        FROM users
        WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Password, &user.FullName, &user.Address,
		&user.Phone, &user.Email, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	query := `
        SELECT id, username, password, full_name, address, phone, email, role, created_at, updated_at
        FROM users
        WHERE username = ?
    `
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.FullName, &user.Address,
		&user.Phone, &user.Email, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	query := `
        UPDATE users
        SET full_name = ?, address = ?, phone = ?, email = ?, updated_at = NOW()
        WHERE id = ?
    `
	result, err := r.DB.ExecContext(ctx, query,
		user.FullName, user.Address, user.Phone, user.Email, user.ID,
	)
	if err != nil {
		return models.User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	return r.GetUserByID(ctx, user.ID)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, hashedPassword string) error {
	query := `UPDATE users SET password = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, hashedPassword, userID)
	return err
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID int, role string) (models.User, error) {
	query := `UPDATE users SET role = ?, updated_at = NOW() WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, role, userID)
	if err != nil {
		return models.User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	return r.GetUserByID(ctx, userID)
}

// DeleteUser removes the user together with their items, the ratings on
// those items, and the ratings the user left elsewhere. One transaction,
// so no orphaned rows survive a partial failure.
func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM ratings WHERE item_id IN (SELECT id FROM items WHERE owner_id = ?)`, id); err != nil {
		tx.Rollback()
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM ratings WHERE user_id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM items WHERE owner_id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
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
		return models.ErrUserNotFound
	}

	return tx.Commit()
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	query := `
        SELECT u.id, u.username, u.full_name, u.address, u.phone, u.email, u.role, u.created_at,
               (SELECT COUNT(*) FROM items i WHERE i.owner_id = u.id) AS items_count
        FROM users u
        ORDER BY u.created_at DESC
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID, &user.Username, &user.FullName, &user.Address,
			&user.Phone, &user.Email, &user.Role, &user.CreatedAt, &user.ItemsCount,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) SetSession(ctx context.Context, userID int, session models.Session) error {
	query := `
		UPDATE users
		SET refresh_token = ?, expires_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query, session.RefreshToken, session.ExpiresAt, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `
		SELECT id, role, refresh_token, expires_at
		FROM users
		WHERE refresh_token = ?
	`
	var session models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return models.Session{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) ClearSession(ctx context.Context, userID int) error {
	query := `UPDATE users SET refresh_token = '', expires_at = NULL WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}
