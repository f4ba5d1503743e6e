package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// LifecycleStatus is the publication state of a document.
type LifecycleStatus string

// Lifecycle status constants.
const (
	LifecycleDraft     LifecycleStatus = "draft"
	LifecycleReviewing LifecycleStatus = "reviewing"
	LifecyclePublished LifecycleStatus = "published"
)

// NewLifecycleStatus creates a new LifecycleStatus with validation.
func NewLifecycleStatus(s string) (LifecycleStatus, error) {
	status := LifecycleStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid lifecycle status: %s (must be one of: %s, %s, %s)",
			s, LifecycleDraft, LifecycleReviewing, LifecyclePublished)
	}
	return status, nil
}

// IsValid checks if the status is valid.
func (s LifecycleStatus) IsValid() bool {
	return s == LifecycleDraft || s == LifecycleReviewing || s == LifecyclePublished
}

// Scan implements sql.Scanner interface for automatic validation when reading from database.
func (s *LifecycleStatus) Scan(value any) error {
	str, err := scanString(value, "LifecycleStatus")
	if err != nil {
		return err
	}

	status, err := NewLifecycleStatus(str)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Value implements driver.Valuer interface for writing to database.
func (s LifecycleStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid LifecycleStatus value: %s", s)
	}
	return string(s), nil
}

// DocumentKind distinguishes requirements from PRD documents.
// Both kinds go through the same review workflow.
type DocumentKind string

// Document kind constants.
const (
	KindRequirement DocumentKind = "requirement"
	KindPRD         DocumentKind = "prd"
)

// NewDocumentKind creates a new DocumentKind with validation.
func NewDocumentKind(s string) (DocumentKind, error) {
	kind := DocumentKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid document kind: %s (must be one of: %s, %s)", s, KindRequirement, KindPRD)
	}
	return kind, nil
}

// IsValid checks if the kind is valid.
func (k DocumentKind) IsValid() bool {
	return k == KindRequirement || k == KindPRD
}

// Scan implements sql.Scanner interface.
func (k *DocumentKind) Scan(value any) error {
	str, err := scanString(value, "DocumentKind")
	if err != nil {
		return err
	}

	kind, err := NewDocumentKind(str)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Value implements driver.Valuer interface.
func (k DocumentKind) Value() (driver.Value, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("invalid DocumentKind value: %s", k)
	}
	return string(k), nil
}

// Document is a requirement or PRD that goes through two-level review.
type Document struct {
	DocumentID  string
	Kind        DocumentKind
	Title       string
	AuthorID    string
	Lifecycle   LifecycleStatus
	Review      ReviewState
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
	PublishedAt *time.Time
}

// ReviewStatus returns the aggregated review status of the document.
func (d *Document) ReviewStatus() ReviewStatus {
	return Aggregate(d.Review)
}

// DocumentFilter narrows document listings. Empty fields match everything.
type DocumentFilter struct {
	Kind         DocumentKind
	Lifecycle    LifecycleStatus
	ReviewStatus ReviewStatus
}
