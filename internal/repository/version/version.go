// Package version stores release versions and their derived schedules.
package version

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/repository"
)

const selectColumns = `
	SELECT version_id, name, release_date,
	       drafting_start, drafting_end, prototyping_start, prototyping_end,
	       development_start, development_end, testing_start, testing_end,
	       created_at
	FROM versions`

func scan(row repository.Scanner) (*domain.Version, error) {
	var (
		v         domain.Version
		s         = &v.Schedule
		createdAt sql.NullTime
	)
	dates := []*time.Time{
		&s.ReleaseDate,
		&s.Drafting.Start, &s.Drafting.End,
		&s.Prototyping.Start, &s.Prototyping.End,
		&s.Development.Start, &s.Development.End,
		&s.Testing.Start, &s.Testing.End,
	}

	dest := []any{&v.VersionID, &v.Name}
	for _, d := range dates {
		dest = append(dest, d)
	}
	dest = append(dest, &createdAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	// DATE columns come back in the driver's zone; keep calendar dates in UTC.
	for _, d := range dates {
		*d = domain.DateOf(*d)
	}
	if createdAt.Valid {
		v.CreatedAt = &createdAt.Time
	}
	return &v, nil
}

func scheduleArgs(s domain.ReleaseSchedule) []any {
	return []any{
		s.ReleaseDate,
		s.Drafting.Start, s.Drafting.End,
		s.Prototyping.Start, s.Prototyping.End,
		s.Development.Start, s.Development.End,
		s.Testing.Start, s.Testing.End,
	}
}

// Create inserts a new version with its schedule.
func Create(exec repository.DBTX, v *domain.Version) error {
	query := `
		INSERT INTO versions (version_id, name, release_date,
		                      drafting_start, drafting_end, prototyping_start, prototyping_end,
		                      development_start, development_end, testing_start, testing_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	args := append([]any{v.VersionID, v.Name}, scheduleArgs(v.Schedule)...)
	if _, err := exec.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to create version: %w", err)
	}
	return nil
}

// Get retrieves a version by ID. Returns sql.ErrNoRows if it does not exist.
func Get(exec repository.DBTX, versionID string) (*domain.Version, error) {
	v, err := scan(exec.QueryRow(selectColumns+` WHERE version_id = $1`, versionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	return v, nil
}

// List returns all versions ordered by release date.
func List(exec repository.DBTX) ([]domain.Version, error) {
	rows, err := exec.Query(selectColumns + ` ORDER BY release_date, version_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	versions := make([]domain.Version, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		versions = append(versions, *v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return versions, nil
}

// UpdateSchedule replaces the release date and schedule of a version.
// Returns sql.ErrNoRows if the version does not exist.
func UpdateSchedule(exec repository.DBTX, versionID string, s domain.ReleaseSchedule) error {
	query := `
		UPDATE versions
		SET release_date = $1,
		    drafting_start = $2, drafting_end = $3,
		    prototyping_start = $4, prototyping_end = $5,
		    development_start = $6, development_end = $7,
		    testing_start = $8, testing_end = $9
		WHERE version_id = $10
	`
	args := append(scheduleArgs(s), versionID)
	result, err := exec.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update version schedule: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
