package domain

import "fmt"

// Eligibility decides whether a state takes part in a batch decision.
type Eligibility func(ReviewState) bool

// EligibleForApproval returns the batch approval predicate for a level.
// Level 1: reviewer assigned and not yet approved.
// Level 2: reviewer assigned, level 1 approved, level 2 not yet approved.
func EligibleForApproval(l Level) Eligibility {
	switch l {
	case Level1:
		return func(s ReviewState) bool {
			return s.First.IsAssigned() && !s.First.Is(DecisionApproved)
		}
	case Level2:
		return func(s ReviewState) bool {
			return s.Second.IsAssigned() &&
				s.First.Is(DecisionApproved) &&
				!s.Second.Is(DecisionApproved)
		}
	default:
		return func(ReviewState) bool { return false }
	}
}

// BatchResult reports the outcome of a batch decision.
type BatchResult struct {
	// States has one entry per input, in input order. Skipped entries are unchanged.
	States []ReviewState
	// Updated holds the input indexes that received the decision.
	Updated []int
	Skipped int
}

// Empty reports whether no state was eligible.
func (r BatchResult) Empty() bool {
	return len(r.Updated) == 0
}

// BatchRecordDecision records d at level l on every eligible state. A nil
// predicate makes every state eligible. Input states are not modified.
func BatchRecordDecision(states []ReviewState, l Level, d Decision, eligible Eligibility) (BatchResult, error) {
	if !l.IsValid() {
		return BatchResult{}, fmt.Errorf("%w: %d", ErrInvalidLevel, l)
	}

	result := BatchResult{
		States:  make([]ReviewState, len(states)),
		Updated: make([]int, 0, len(states)),
	}

	for i, s := range states {
		if eligible != nil && !eligible(s) {
			result.States[i] = s
			result.Skipped++
			continue
		}

		next, err := s.RecordDecision(l, d)
		if err != nil {
			return BatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		result.States[i] = next
		result.Updated = append(result.Updated, i)
	}

	return result, nil
}
