package handler

import (
	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// DocumentServiceInterface defines the interface for document and review operations.
type DocumentServiceInterface interface {
	CreateDocument(kind domain.DocumentKind, title, authorID string) (*domain.Document, error)
	GetDocument(documentID string) (*domain.Document, error)
	ListDocuments(filter domain.DocumentFilter) ([]domain.Document, error)
	AssignReviewer(documentID string, level domain.Level, userID string) (*domain.Document, error)
	AutoAssignReviewers(documentID string) (*domain.Document, error)
	SubmitForReview(documentID string) (*domain.Document, error)
	Approve(documentID string, level domain.Level) (*domain.Document, error)
	Reject(documentID string, level domain.Level) (*domain.Document, error)
	BatchApprove(documentIDs []string, level domain.Level) (*service.BatchApproveResult, error)
}

// UserServiceInterface defines the interface for user operations.
type UserServiceInterface interface {
	CreateUser(u domain.User) (*domain.User, error)
	GetUser(userID string) (*domain.User, error)
	SetIsActive(userID string, isActive bool) (*domain.User, error)
	GetUserReviews(userID string) ([]domain.Document, error)
}

// VersionServiceInterface defines the interface for release version operations.
type VersionServiceInterface interface {
	PreviewSchedule(releaseDate string) (domain.ReleaseSchedule, error)
	CreateVersion(name, releaseDate string) (*domain.Version, error)
	GetVersion(versionID string) (*domain.Version, error)
	ListVersions() ([]domain.Version, error)
	UpdateReleaseDate(versionID, releaseDate string) (*domain.Version, error)
}

// StatsServiceInterface defines the interface for statistics.
type StatsServiceInterface interface {
	GetStatistics() (*service.Statistics, error)
}
