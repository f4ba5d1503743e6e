package user

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/repository"
)

// Create inserts a new user.
func Create(exec repository.DBTX, user *domain.User) error {
	query := `
		INSERT INTO users (user_id, username, is_active)
		VALUES ($1, $2, $3)
	`
	_, err := exec.Exec(query, user.UserID, user.Username, user.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Get retrieves a user by ID. Returns sql.ErrNoRows if the user does not exist.
func Get(exec repository.DBTX, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, is_active
		FROM users
		WHERE user_id = $1
	`
	var u domain.User
	err := exec.QueryRow(query, userID).Scan(&u.UserID, &u.Username, &u.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// SetIsActive updates the is_active status and returns the updated user.
func SetIsActive(exec repository.DBTX, userID string, isActive bool) (*domain.User, error) {
	query := `
		UPDATE users
		SET is_active = $1
		WHERE user_id = $2
		RETURNING user_id, username, is_active
	`
	var u domain.User
	err := exec.QueryRow(query, isActive, userID).Scan(&u.UserID, &u.Username, &u.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	return &u, nil
}

// GetActive returns all active users ordered by ID.
func GetActive(exec repository.DBTX) ([]domain.User, error) {
	query := `
		SELECT user_id, username, is_active
		FROM users
		WHERE is_active = true
		ORDER BY user_id
	`
	rows, err := exec.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.UserID, &u.Username, &u.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}
