package domain

import "fmt"

// ReviewStatus is the overall review state derived from a ReviewState.
type ReviewStatus string

// Review status constants.
const (
	StatusNoReviewRequired       ReviewStatus = "no_review_required"
	StatusFirstReviewInProgress  ReviewStatus = "first_review_in_progress"
	StatusSecondReviewInProgress ReviewStatus = "second_review_in_progress"
	StatusApproved               ReviewStatus = "approved"
	StatusRejected               ReviewStatus = "rejected"
)

// NewReviewStatus creates a new ReviewStatus with validation.
func NewReviewStatus(s string) (ReviewStatus, error) {
	status := ReviewStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid review status: %s", s)
	}
	return status, nil
}

// IsValid checks if the status is valid.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case StatusNoReviewRequired, StatusFirstReviewInProgress, StatusSecondReviewInProgress,
		StatusApproved, StatusRejected:
		return true
	}
	return false
}

// InProgress reports whether a reviewer still has to act.
func (s ReviewStatus) InProgress() bool {
	return s == StatusFirstReviewInProgress || s == StatusSecondReviewInProgress
}

// Aggregate classifies a review state. An unassigned level is skipped, never
// treated as pending. Rejection at an assigned level wins over everything else,
// and level 1 is checked first.
func Aggregate(s ReviewState) ReviewStatus {
	first, second := s.First, s.Second

	if !first.IsAssigned() && !second.IsAssigned() {
		return StatusNoReviewRequired
	}
	if first.Is(DecisionRejected) {
		return StatusRejected
	}
	if second.Is(DecisionRejected) {
		return StatusRejected
	}

	if !second.IsAssigned() {
		if first.Is(DecisionApproved) {
			return StatusApproved
		}
		return StatusFirstReviewInProgress
	}

	// Only level 2 assigned: level 1 is skipped.
	if !first.IsAssigned() {
		if second.Is(DecisionApproved) {
			return StatusApproved
		}
		return StatusSecondReviewInProgress
	}

	if first.Is(DecisionApproved) {
		if second.Is(DecisionApproved) {
			return StatusApproved
		}
		return StatusSecondReviewInProgress
	}
	return StatusFirstReviewInProgress
}

// ActiveLevel returns the level whose reviewer is expected to act next,
// or false when no reviewer has to act.
func ActiveLevel(s ReviewState) (Level, bool) {
	switch Aggregate(s) {
	case StatusFirstReviewInProgress:
		return Level1, true
	case StatusSecondReviewInProgress:
		return Level2, true
	}
	return 0, false
}
