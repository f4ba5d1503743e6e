package domain

import (
	"database/sql/driver"
	"fmt"
)

// Decision is the outcome recorded by a reviewer at one level.
type Decision string

// Decision constants.
const (
	DecisionPending  Decision = "pending"
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// NewDecision creates a new Decision with validation.
func NewDecision(s string) (Decision, error) {
	d := Decision(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid decision: %s (must be one of: %s, %s, %s)",
			s, DecisionPending, DecisionApproved, DecisionRejected)
	}
	return d, nil
}

// IsValid checks if the decision is valid.
func (d Decision) IsValid() bool {
	return d == DecisionPending || d == DecisionApproved || d == DecisionRejected
}

// Scan implements sql.Scanner interface.
func (d *Decision) Scan(value any) error {
	str, err := scanString(value, "Decision")
	if err != nil {
		return err
	}

	decision, err := NewDecision(str)
	if err != nil {
		return err
	}
	*d = decision
	return nil
}

// Value implements driver.Valuer interface.
func (d Decision) Value() (driver.Value, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid Decision value: %s", d)
	}
	return string(d), nil
}

// Level identifies the first or second review tier.
type Level int

// Review levels.
const (
	Level1 Level = 1
	Level2 Level = 2
)

// NewLevel validates a numeric review level.
func NewLevel(n int) (Level, error) {
	l := Level(n)
	if !l.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, n)
	}
	return l, nil
}

// IsValid checks if the level is 1 or 2.
func (l Level) IsValid() bool {
	return l == Level1 || l == Level2
}

// ReviewLevel is one tier of a review: either unassigned, or assigned to a
// reviewer together with that reviewer's decision. The zero value is unassigned.
// Fields are unexported so a decision can never exist without a reviewer.
type ReviewLevel struct {
	reviewer string
	decision Decision
}

// Unassigned returns an empty review level.
func Unassigned() ReviewLevel {
	return ReviewLevel{}
}

// Assigned returns a level held by reviewer with a pending decision.
// An empty reviewer yields an unassigned level.
func Assigned(reviewer string) ReviewLevel {
	if reviewer == "" {
		return ReviewLevel{}
	}
	return ReviewLevel{reviewer: reviewer, decision: DecisionPending}
}

// RestoreLevel rebuilds a level from stored columns, where nil means absent.
// Reviewer and decision must be both present or both absent.
func RestoreLevel(reviewer *string, decision *Decision) (ReviewLevel, error) {
	switch {
	case reviewer == nil && decision == nil:
		return ReviewLevel{}, nil
	case reviewer == nil || decision == nil || *reviewer == "":
		return ReviewLevel{}, fmt.Errorf("review level must have both reviewer and decision or neither")
	case !decision.IsValid():
		return ReviewLevel{}, fmt.Errorf("invalid decision: %s", *decision)
	}
	return ReviewLevel{reviewer: *reviewer, decision: *decision}, nil
}

// IsAssigned reports whether a reviewer holds this level.
func (l ReviewLevel) IsAssigned() bool {
	return l.reviewer != ""
}

// Reviewer returns the reviewer id, or false if unassigned.
func (l ReviewLevel) Reviewer() (string, bool) {
	return l.reviewer, l.IsAssigned()
}

// Decision returns the recorded decision, or false if unassigned.
func (l ReviewLevel) Decision() (Decision, bool) {
	if !l.IsAssigned() {
		return "", false
	}
	return l.decision, true
}

// Is reports whether the level is assigned and holds decision d.
func (l ReviewLevel) Is(d Decision) bool {
	return l.IsAssigned() && l.decision == d
}

// Columns returns nullable values for persistence.
func (l ReviewLevel) Columns() (*string, *Decision) {
	if !l.IsAssigned() {
		return nil, nil
	}
	reviewer, decision := l.reviewer, l.decision
	return &reviewer, &decision
}

// ReviewState is the two-level reviewer assignment attached to a document.
// It is a value: every mutation returns a new state.
type ReviewState struct {
	First  ReviewLevel
	Second ReviewLevel
}

// Level returns the review level l. Invalid levels read as unassigned.
func (s ReviewState) Level(l Level) ReviewLevel {
	switch l {
	case Level1:
		return s.First
	case Level2:
		return s.Second
	default:
		return ReviewLevel{}
	}
}

func (s ReviewState) with(l Level, rl ReviewLevel) (ReviewState, error) {
	switch l {
	case Level1:
		s.First = rl
	case Level2:
		s.Second = rl
	default:
		return ReviewState{}, fmt.Errorf("%w: %d", ErrInvalidLevel, l)
	}
	return s, nil
}

// AssignReviewer sets the reviewer of a level and resets its decision to pending.
// An empty reviewer clears both the reviewer and the decision.
func (s ReviewState) AssignReviewer(l Level, reviewer string) (ReviewState, error) {
	return s.with(l, Assigned(reviewer))
}

// RecordDecision overwrites the decision of an assigned level.
// It does not touch the other level.
func (s ReviewState) RecordDecision(l Level, d Decision) (ReviewState, error) {
	if !d.IsValid() {
		return ReviewState{}, fmt.Errorf("invalid decision: %s", d)
	}

	rl := s.Level(l)
	if !l.IsValid() {
		return ReviewState{}, fmt.Errorf("%w: %d", ErrInvalidLevel, l)
	}
	if !rl.IsAssigned() {
		return ReviewState{}, fmt.Errorf("%w: level %d", ErrReviewerNotAssigned, l)
	}

	rl.decision = d
	return s.with(l, rl)
}

// ResetDecisions sets every assigned level back to pending.
func (s ReviewState) ResetDecisions() ReviewState {
	if s.First.IsAssigned() {
		s.First.decision = DecisionPending
	}
	if s.Second.IsAssigned() {
		s.Second.decision = DecisionPending
	}
	return s
}

// HasReviewers reports whether any level is assigned.
func (s ReviewState) HasReviewers() bool {
	return s.First.IsAssigned() || s.Second.IsAssigned()
}
