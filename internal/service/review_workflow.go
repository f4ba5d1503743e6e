package service

import (
	"fmt"

	"github.com/mishasvintus/product_review_service/internal/domain"
)

// Notification tells a reviewer that a document awaits their decision.
type Notification struct {
	DocumentID string
	ReviewerID string
	Level      domain.Level
}

// Outcome is the result of a workflow step on a single document.
type Outcome struct {
	Document domain.Document
	Status   domain.ReviewStatus
	// Notify lists reviewers who became responsible for the next decision.
	Notify []Notification
}

// BatchOutcome is the result of a batch approval.
type BatchOutcome struct {
	// Documents holds only the documents that received the decision.
	Documents []domain.Document
	Affected  int
	Skipped   int
	Notify    []Notification
}

// Empty reports whether no document was eligible.
func (o BatchOutcome) Empty() bool {
	return o.Affected == 0
}

// ReviewWorkflowEngine applies review operations to documents and maps the
// aggregated review status onto the document lifecycle. It performs no I/O:
// persisting results and delivering notifications is the caller's job.
type ReviewWorkflowEngine struct {
	lifecycle *lifecycleMachine
}

// NewReviewWorkflowEngine creates a new workflow engine.
func NewReviewWorkflowEngine() *ReviewWorkflowEngine {
	return &ReviewWorkflowEngine{lifecycle: newLifecycleMachine()}
}

// AssignReviewer sets or clears the reviewer of a level. A published document
// whose approval no longer holds goes back into review. While the document is
// under review, a reviewer assigned to the level that must act next is notified.
func (e *ReviewWorkflowEngine) AssignReviewer(doc domain.Document, level domain.Level, reviewerID string) (Outcome, error) {
	review, err := doc.Review.AssignReviewer(level, reviewerID)
	if err != nil {
		return Outcome{}, err
	}
	doc.Review = review

	doc, err = e.lifecycle.reviewed(doc)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Document: doc, Status: domain.Aggregate(review)}
	if active, ok := domain.ActiveLevel(review); ok && active == level && reviewerID != "" &&
		doc.Lifecycle == domain.LifecycleReviewing {
		out.Notify = []Notification{{DocumentID: doc.DocumentID, ReviewerID: reviewerID, Level: level}}
	}
	return out, nil
}

// SubmitForReview moves a document into review. Every assigned level starts pending.
func (e *ReviewWorkflowEngine) SubmitForReview(doc domain.Document) (Outcome, error) {
	if !doc.Review.First.IsAssigned() {
		return Outcome{}, ErrMissingReviewer1
	}

	doc.Review = doc.Review.ResetDecisions()
	doc, err := e.lifecycle.submit(doc)
	if err != nil {
		return Outcome{}, err
	}

	reviewer, _ := doc.Review.First.Reviewer()
	return Outcome{
		Document: doc,
		Status:   domain.Aggregate(doc.Review),
		Notify: []Notification{{
			DocumentID: doc.DocumentID,
			ReviewerID: reviewer,
			Level:      domain.Level1,
		}},
	}, nil
}

// Approve records an approval at level. Reaching Approved publishes the document;
// reaching SecondReviewInProgress notifies the second-level reviewer.
func (e *ReviewWorkflowEngine) Approve(doc domain.Document, level domain.Level) (Outcome, error) {
	return e.decide(doc, level, domain.DecisionApproved)
}

// Reject records a rejection at level and returns the document to draft.
func (e *ReviewWorkflowEngine) Reject(doc domain.Document, level domain.Level) (Outcome, error) {
	return e.decide(doc, level, domain.DecisionRejected)
}

func (e *ReviewWorkflowEngine) decide(doc domain.Document, level domain.Level, d domain.Decision) (Outcome, error) {
	if doc.Lifecycle != domain.LifecycleReviewing {
		return Outcome{}, fmt.Errorf("%w: document is %s", ErrNotUnderReview, doc.Lifecycle)
	}

	before := domain.Aggregate(doc.Review)

	review, err := doc.Review.RecordDecision(level, d)
	if err != nil {
		return Outcome{}, err
	}
	doc.Review = review

	return e.settle(doc, before)
}

// BatchApprove approves level on every eligible document under review. Other
// documents are skipped, which is not an error.
func (e *ReviewWorkflowEngine) BatchApprove(docs []domain.Document, level domain.Level) (BatchOutcome, error) {
	reviewing := make([]int, 0, len(docs))
	states := make([]domain.ReviewState, 0, len(docs))
	for i := range docs {
		if docs[i].Lifecycle == domain.LifecycleReviewing {
			reviewing = append(reviewing, i)
			states = append(states, docs[i].Review)
		}
	}

	result, err := domain.BatchRecordDecision(states, level, domain.DecisionApproved, domain.EligibleForApproval(level))
	if err != nil {
		return BatchOutcome{}, fmt.Errorf("batch approve: %w", err)
	}

	out := BatchOutcome{
		Documents: make([]domain.Document, 0, len(result.Updated)),
		Affected:  len(result.Updated),
		Skipped:   result.Skipped + len(docs) - len(states),
	}
	for _, j := range result.Updated {
		doc := docs[reviewing[j]]
		before := domain.Aggregate(doc.Review)
		doc.Review = result.States[j]

		o, err := e.settle(doc, before)
		if err != nil {
			return BatchOutcome{}, fmt.Errorf("batch approve %s: %w", doc.DocumentID, err)
		}
		out.Documents = append(out.Documents, o.Document)
		out.Notify = append(out.Notify, o.Notify...)
	}

	return out, nil
}

// settle lets the lifecycle follow the new review status and notifies the
// second-level reviewer when their turn begins.
func (e *ReviewWorkflowEngine) settle(doc domain.Document, before domain.ReviewStatus) (Outcome, error) {
	doc, err := e.lifecycle.reviewed(doc)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Document: doc, Status: domain.Aggregate(doc.Review)}
	if out.Status == domain.StatusSecondReviewInProgress && before != domain.StatusSecondReviewInProgress {
		reviewer, _ := doc.Review.Second.Reviewer()
		out.Notify = []Notification{{
			DocumentID: doc.DocumentID,
			ReviewerID: reviewer,
			Level:      domain.Level2,
		}}
	}
	return out, nil
}
