// Package document stores requirements and PRD documents together with their review state.
package document

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/repository"
)

const selectColumns = `
	SELECT document_id, kind, title, author_id, lifecycle,
	       reviewer1_id, reviewer1_decision, reviewer2_id, reviewer2_decision,
	       created_at, updated_at, published_at
	FROM documents`

func scan(row repository.Scanner) (*domain.Document, error) {
	var (
		d                  domain.Document
		r1, d1, r2, d2     sql.NullString
		createdAt, updated sql.NullTime
		publishedAt        sql.NullTime
	)
	if err := row.Scan(
		&d.DocumentID, &d.Kind, &d.Title, &d.AuthorID, &d.Lifecycle,
		&r1, &d1, &r2, &d2,
		&createdAt, &updated, &publishedAt,
	); err != nil {
		return nil, err
	}

	first, err := restoreLevel(r1, d1)
	if err != nil {
		return nil, fmt.Errorf("document %s level 1: %w", d.DocumentID, err)
	}
	second, err := restoreLevel(r2, d2)
	if err != nil {
		return nil, fmt.Errorf("document %s level 2: %w", d.DocumentID, err)
	}
	d.Review = domain.ReviewState{First: first, Second: second}

	if createdAt.Valid {
		d.CreatedAt = &createdAt.Time
	}
	if updated.Valid {
		d.UpdatedAt = &updated.Time
	}
	if publishedAt.Valid {
		d.PublishedAt = &publishedAt.Time
	}
	return &d, nil
}

func restoreLevel(reviewer, decision sql.NullString) (domain.ReviewLevel, error) {
	var d *domain.Decision
	if decision.Valid {
		dec, err := domain.NewDecision(decision.String)
		if err != nil {
			return domain.ReviewLevel{}, err
		}
		d = &dec
	}
	return domain.RestoreLevel(repository.StringPtr(reviewer), d)
}

func levelArgs(l domain.ReviewLevel) (sql.NullString, sql.NullString) {
	reviewer, decision := l.Columns()
	if decision == nil {
		return repository.NullString(reviewer), sql.NullString{}
	}
	return repository.NullString(reviewer), sql.NullString{String: string(*decision), Valid: true}
}

// Create inserts a new document.
func Create(exec repository.DBTX, d *domain.Document) error {
	query := `
		INSERT INTO documents (document_id, kind, title, author_id, lifecycle,
		                       reviewer1_id, reviewer1_decision, reviewer2_id, reviewer2_decision)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	r1, d1 := levelArgs(d.Review.First)
	r2, d2 := levelArgs(d.Review.Second)
	_, err := exec.Exec(query, d.DocumentID, d.Kind, d.Title, d.AuthorID, d.Lifecycle, r1, d1, r2, d2)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// Get retrieves a document by ID. Returns sql.ErrNoRows if it does not exist.
func Get(exec repository.DBTX, documentID string) (*domain.Document, error) {
	d, err := scan(exec.QueryRow(selectColumns+` WHERE document_id = $1`, documentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return d, nil
}

// GetForUpdate retrieves a document and locks its row until the transaction ends.
func GetForUpdate(exec repository.DBTX, documentID string) (*domain.Document, error) {
	d, err := scan(exec.QueryRow(selectColumns+` WHERE document_id = $1 FOR UPDATE`, documentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get document for update: %w", err)
	}
	return d, nil
}

// GetManyForUpdate locks and returns the documents with the given IDs, ordered by ID.
// Unknown IDs are ignored; every ID must be a valid UUID.
func GetManyForUpdate(exec repository.DBTX, documentIDs []string) ([]domain.Document, error) {
	query := selectColumns + ` WHERE document_id = ANY($1::uuid[]) ORDER BY document_id FOR UPDATE`
	return list(exec, query, pq.Array(documentIDs))
}

// List returns documents matching the kind and lifecycle of filter, newest first.
// Review status filtering is left to the caller.
func List(exec repository.DBTX, filter domain.DocumentFilter) ([]domain.Document, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Kind != "" {
		args = append(args, filter.Kind)
		conds = append(conds, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filter.Lifecycle != "" {
		args = append(args, filter.Lifecycle)
		conds = append(conds, fmt.Sprintf("lifecycle = $%d", len(args)))
	}

	query := selectColumns
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, document_id"

	return list(exec, query, args...)
}

// ListByReviewer returns documents where the user holds either review level.
func ListByReviewer(exec repository.DBTX, userID string) ([]domain.Document, error) {
	query := selectColumns + `
		WHERE reviewer1_id = $1 OR reviewer2_id = $1
		ORDER BY created_at DESC, document_id`
	return list(exec, query, userID)
}

func list(exec repository.DBTX, query string, args ...any) ([]domain.Document, error) {
	rows, err := exec.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		d, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}

// Update writes the lifecycle, review state and publication time of a document.
// Returns sql.ErrNoRows if the document does not exist.
func Update(exec repository.DBTX, d *domain.Document) error {
	query := `
		UPDATE documents
		SET lifecycle = $1,
		    reviewer1_id = $2, reviewer1_decision = $3,
		    reviewer2_id = $4, reviewer2_decision = $5,
		    published_at = $6,
		    updated_at = NOW()
		WHERE document_id = $7
	`
	r1, d1 := levelArgs(d.Review.First)
	r2, d2 := levelArgs(d.Review.Second)

	var publishedAt sql.NullTime
	if d.PublishedAt != nil {
		publishedAt = sql.NullTime{Time: *d.PublishedAt, Valid: true}
	}

	result, err := exec.Exec(query, d.Lifecycle, r1, d1, r2, d2, publishedAt, d.DocumentID)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
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
