package service

import (
	"errors"

	"github.com/mishasvintus/product_review_service/internal/domain"
)

var (
	ErrInvalidDate         = domain.ErrInvalidDate
	ErrInvalidLevel        = domain.ErrInvalidLevel
	ErrReviewerNotAssigned = domain.ErrReviewerNotAssigned

	ErrMissingReviewer1 = errors.New("first-level reviewer is required before submitting for review")
	ErrNotUnderReview   = errors.New("document is not under review")
	ErrDocumentNotFound = errors.New("document not found")
	ErrVersionNotFound  = errors.New("version not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrInactiveReviewer = errors.New("reviewer is not active")
	ErrNoCandidate      = errors.New("no candidates available for assignment")
)
