package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/repository"
	"github.com/mishasvintus/product_review_service/internal/repository/document"
	"github.com/mishasvintus/product_review_service/internal/repository/user"
)

// UserService handles user business logic.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new user service.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser registers a new user.
func (s *UserService) CreateUser(u domain.User) (*domain.User, error) {
	if err := user.Create(s.db, &u); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return s.GetUser(u.UserID)
}

// GetUser returns a user by ID.
func (s *UserService) GetUser(userID string) (*domain.User, error) {
	u, err := user.Get(s.db, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// SetIsActive updates the is_active status of a user.
// Existing assignments are kept; inactive users cannot receive new ones.
func (s *UserService) SetIsActive(userID string, isActive bool) (*domain.User, error) {
	u, err := user.SetIsActive(s.db, userID, isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	return u, nil
}

// GetUserReviews returns documents under review whose next decision belongs to the user.
func (s *UserService) GetUserReviews(userID string) ([]domain.Document, error) {
	if _, err := s.GetUser(userID); err != nil {
		return nil, err
	}

	docs, err := document.ListByReviewer(s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user reviews: %w", err)
	}

	awaiting := make([]domain.Document, 0)
	for _, d := range docs {
		if d.Lifecycle != domain.LifecycleReviewing {
			continue
		}
		if AwaitsReviewer(d.Review, userID) {
			awaiting = append(awaiting, d)
		}
	}

	return awaiting, nil
}

// AwaitsReviewer reports whether the next decision on s belongs to userID.
func AwaitsReviewer(s domain.ReviewState, userID string) bool {
	level, ok := domain.ActiveLevel(s)
	if !ok {
		return false
	}
	reviewer, _ := s.Level(level).Reviewer()
	return reviewer == userID
}
