package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/repository/version"
)

// VersionService handles release versions and their schedules.
type VersionService struct {
	db  *sql.DB
	log *slog.Logger
}

// NewVersionService creates a new version service.
func NewVersionService(db *sql.DB, log *slog.Logger) *VersionService {
	return &VersionService{db: db, log: log}
}

// PreviewSchedule computes the schedule for a YYYY-MM-DD release date without storing anything.
func (s *VersionService) PreviewSchedule(releaseDate string) (domain.ReleaseSchedule, error) {
	d, err := domain.ParseDate(releaseDate)
	if err != nil {
		return domain.ReleaseSchedule{}, err
	}
	return domain.ComputeSchedule(d), nil
}

// CreateVersion creates a version and computes its schedule.
func (s *VersionService) CreateVersion(name, releaseDate string) (*domain.Version, error) {
	d, err := domain.ParseDate(releaseDate)
	if err != nil {
		return nil, err
	}

	v := domain.NewVersion(uuid.NewString(), name, d)
	if err := version.Create(s.db, v); err != nil {
		return nil, fmt.Errorf("failed to create version: %w", err)
	}

	s.log.Info("version created",
		slog.String("version_id", v.VersionID),
		slog.String("release_date", releaseDate),
	)

	return s.GetVersion(v.VersionID)
}

// GetVersion returns a version by ID.
func (s *VersionService) GetVersion(versionID string) (*domain.Version, error) {
	if !isUUID(versionID) {
		return nil, ErrVersionNotFound
	}

	v, err := version.Get(s.db, versionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	return v, nil
}

// ListVersions returns all versions ordered by release date.
func (s *VersionService) ListVersions() ([]domain.Version, error) {
	versions, err := version.List(s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	return versions, nil
}

// UpdateReleaseDate moves a version's release date and recomputes its schedule.
func (s *VersionService) UpdateReleaseDate(versionID, releaseDate string) (*domain.Version, error) {
	d, err := domain.ParseDate(releaseDate)
	if err != nil {
		return nil, err
	}
	if !isUUID(versionID) {
		return nil, ErrVersionNotFound
	}

	if err := version.UpdateSchedule(s.db, versionID, domain.ComputeSchedule(d)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to update release date: %w", err)
	}

	return s.GetVersion(versionID)
}
