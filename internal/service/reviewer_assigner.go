package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/mishasvintus/product_review_service/internal/domain"
)

// ReviewerAssigner handles reviewer selection logic.
type ReviewerAssigner struct{}

// NewReviewerAssigner creates a new reviewer assigner.
func NewReviewerAssigner() *ReviewerAssigner {
	return &ReviewerAssigner{}
}

// Candidates returns the active users that are not listed in exclude.
func (a *ReviewerAssigner) Candidates(users []domain.User, exclude ...string) []domain.User {
	excludeIDs := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		excludeIDs[id] = struct{}{}
	}

	candidates := make([]domain.User, 0, len(users))
	for _, u := range users {
		if _, excluded := excludeIDs[u.UserID]; excluded || !u.IsActive {
			continue
		}
		candidates = append(candidates, u)
	}
	return candidates
}

// SelectReviewers picks up to count distinct reviewers from candidates.
// Uses cryptographically secure random selection.
func (a *ReviewerAssigner) SelectReviewers(candidates []domain.User, count int) ([]string, error) {
	if count <= 0 || len(candidates) == 0 {
		return []string{}, nil
	}

	if len(candidates) <= count {
		reviewers := make([]string, len(candidates))
		for i, user := range candidates {
			reviewers[i] = user.UserID
		}
		return reviewers, nil
	}

	selected := make(map[int]bool)
	reviewers := make([]string, 0, count)

	for len(reviewers) < count {
		idx, err := secureRandInt(len(candidates))
		if err != nil {
			return nil, fmt.Errorf("failed to generate random index: %w", err)
		}

		if !selected[idx] {
			selected[idx] = true
			reviewers = append(reviewers, candidates[idx].UserID)
		}
	}

	return reviewers, nil
}

// secureRandInt returns a cryptographically secure random integer in [0, max).
func secureRandInt(max int) (int, error) {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(nBig.Int64()), nil
}
