package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/service"
)

func newDoc(id string, review domain.ReviewState, lifecycle domain.LifecycleStatus) domain.Document {
	return domain.Document{
		DocumentID: id,
		Kind:       domain.KindPRD,
		Title:      "Doc " + id,
		AuthorID:   "author",
		Lifecycle:  lifecycle,
		Review:     review,
	}
}

func approvedLevel(t *testing.T, reviewer string) domain.ReviewLevel {
	t.Helper()
	d := domain.DecisionApproved
	l, err := domain.RestoreLevel(&reviewer, &d)
	require.NoError(t, err)
	return l
}

func TestReviewWorkflowEngine_SubmitForReview(t *testing.T) {
	engine := service.NewReviewWorkflowEngine()

	t.Run("missing first reviewer", func(t *testing.T) {
		doc := newDoc("d1", domain.ReviewState{Second: domain.Assigned("bob")}, domain.LifecycleDraft)

		_, err := engine.SubmitForReview(doc)
		assert.ErrorIs(t, err, service.ErrMissingReviewer1)
		assert.Equal(t, domain.LifecycleDraft, doc.Lifecycle)
	})

	t.Run("resets decisions and moves to reviewing", func(t *testing.T) {
		rejected := domain.DecisionRejected
		alice := "alice"
		first, err := domain.RestoreLevel(&alice, &rejected)
		require.NoError(t, err)
		doc := newDoc("d1", domain.ReviewState{First: first, Second: domain.Assigned("bob")}, domain.LifecycleDraft)

		out, err := engine.SubmitForReview(doc)
		require.NoError(t, err)
		assert.Equal(t, domain.LifecycleReviewing, out.Document.Lifecycle)
		assert.True(t, out.Document.Review.First.Is(domain.DecisionPending))
		assert.True(t, out.Document.Review.Second.Is(domain.DecisionPending))
		assert.Equal(t, domain.StatusFirstReviewInProgress, out.Status)
		assert.Equal(t, []service.Notification{{DocumentID: "d1", ReviewerID: "alice", Level: domain.Level1}}, out.Notify)
	})

	t.Run("published document goes back into review", func(t *testing.T) {
		doc := newDoc("d1", domain.ReviewState{First: approvedLevel(t, "alice"), Second: approvedLevel(t, "bob")}, domain.LifecyclePublished)

		out, err := engine.SubmitForReview(doc)
		require.NoError(t, err)
		assert.Equal(t, domain.LifecycleReviewing, out.Document.Lifecycle)
		assert.Equal(t, domain.StatusFirstReviewInProgress, out.Status)
	})

	t.Run("single level keeps second absent", func(t *testing.T) {
		doc := newDoc("d1", domain.ReviewState{First: domain.Assigned("alice")}, domain.LifecycleDraft)

		out, err := engine.SubmitForReview(doc)
		require.NoError(t, err)
		_, ok := out.Document.Review.Second.Decision()
		assert.False(t, ok)
	})
}

func TestReviewWorkflowEngine_Approve(t *testing.T) {
	engine := service.NewReviewWorkflowEngine()

	t.Run("single level approval publishes", func(t *testing.T) {
		doc := newDoc("d1", domain.ReviewState{First: domain.Assigned("alice")}, domain.LifecycleReviewing)

		out, err := engine.Approve(doc, domain.Level1)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, out.Status)
		assert.Equal(t, domain.LifecyclePublished, out.Document.Lifecycle)
		assert.Empty(t, out.Notify)
	})

	t.Run("first of two levels notifies second reviewer", func(t *testing.T) {
		doc := newDoc("d1", domain.ReviewState{First: domain.Assigned("alice"), Second: domain.Assigned("bob")}, domain.LifecycleReviewing)

		out, err := engine.Approve(doc, domain.Level1)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSecondReviewInProgress, out.Status)
		assert.Equal(t, domain.LifecycleReviewing, out.Document.Lifecycle)
		assert.Equal(t, []service.Notification{{DocumentID: "d1", ReviewerID: "bob", Level: domain.Level2}}, out.Notify)

		out, err = engine.Approve(out.Document, domain.Level2)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, out.Status)
		assert.Equal(t, domain.LifecyclePublished, out.Document.Lifecycle)
	})

	t.Run("unassigned level", func(t *testing.T) {
		doc := newDoc("d1", domain.ReviewState{First: domain.Assigned("alice")}, domain.LifecycleReviewing)

		_, err := engine.Approve(doc, domain.Level2)
		assert.ErrorIs(t, err, service.ErrReviewerNotAssigned)
	})

	t.Run("early second-level approval is held", func(t *testing.T) {
		doc := newDoc("d1", domain.ReviewState{First: domain.Assigned("alice"), Second: domain.Assigned("bob")}, domain.LifecycleReviewing)

		out, err := engine.Approve(doc, domain.Level2)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusFirstReviewInProgress, out.Status)
		assert.Equal(t, domain.LifecycleReviewing, out.Document.Lifecycle)

		out, err = engine.Approve(out.Document, domain.Level1)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, out.Status)
		assert.Equal(t, domain.LifecyclePublished, out.Document.Lifecycle)
	})

	t.Run("document not under review", func(t *testing.T) {
		tests := []struct {
			name      string
			review    domain.ReviewState
			lifecycle domain.LifecycleStatus
		}{
			{"never submitted draft", domain.ReviewState{First: domain.Assigned("alice")}, domain.LifecycleDraft},
			{"published", domain.ReviewState{First: approvedLevel(t, "alice"), Second: domain.Assigned("bob")}, domain.LifecyclePublished},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				doc := newDoc("d1", tt.review, tt.lifecycle)

				_, err := engine.Approve(doc, domain.Level1)
				assert.ErrorIs(t, err, service.ErrNotUnderReview)
				assert.Equal(t, tt.lifecycle, doc.Lifecycle)
			})
		}
	})
}

func TestReviewWorkflowEngine_Reject(t *testing.T) {
	engine := service.NewReviewWorkflowEngine()

	for _, level := range []domain.Level{domain.Level1, domain.Level2} {
		doc := newDoc("d1", domain.ReviewState{First: approvedLevel(t, "alice"), Second: domain.Assigned("bob")}, domain.LifecycleReviewing)

		out, err := engine.Reject(doc, level)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, out.Status)
		assert.Equal(t, domain.LifecycleDraft, out.Document.Lifecycle)
		assert.Empty(t, out.Notify)
	}

	published := newDoc("d1", domain.ReviewState{First: approvedLevel(t, "alice")}, domain.LifecyclePublished)
	_, err := engine.Reject(published, domain.Level1)
	assert.ErrorIs(t, err, service.ErrNotUnderReview)

	draft := newDoc("d1", domain.ReviewState{First: domain.Assigned("alice")}, domain.LifecycleDraft)
	_, err = engine.Reject(draft, domain.Level1)
	assert.ErrorIs(t, err, service.ErrNotUnderReview)
}

func TestReviewWorkflowEngine_BatchApprove(t *testing.T) {
	engine := service.NewReviewWorkflowEngine()

	docs := []domain.Document{
		newDoc("d1", domain.ReviewState{First: approvedLevel(t, "a"), Second: domain.Assigned("b")}, domain.LifecycleReviewing),
		newDoc("d2", domain.ReviewState{First: domain.Assigned("a"), Second: domain.Assigned("b")}, domain.LifecycleReviewing),
		newDoc("d3", domain.ReviewState{First: approvedLevel(t, "a")}, domain.LifecyclePublished),
		newDoc("d4", domain.ReviewState{First: approvedLevel(t, "a"), Second: domain.Assigned("c")}, domain.LifecycleReviewing),
		newDoc("d5", domain.ReviewState{}, domain.LifecycleDraft),
	}

	t.Run("second level", func(t *testing.T) {
		out, err := engine.BatchApprove(docs, domain.Level2)
		require.NoError(t, err)
		assert.Equal(t, 2, out.Affected)
		assert.Equal(t, 3, out.Skipped)
		require.Len(t, out.Documents, 2)
		assert.Equal(t, "d1", out.Documents[0].DocumentID)
		assert.Equal(t, "d4", out.Documents[1].DocumentID)
		for _, d := range out.Documents {
			assert.Equal(t, domain.LifecyclePublished, d.Lifecycle)
		}
		assert.Equal(t, domain.LifecycleReviewing, docs[0].Lifecycle)
	})

	t.Run("first level notifies second reviewers", func(t *testing.T) {
		out, err := engine.BatchApprove(docs, domain.Level1)
		require.NoError(t, err)
		assert.Equal(t, 1, out.Affected)
		assert.Equal(t, 4, out.Skipped)
		require.Len(t, out.Documents, 1)
		assert.Equal(t, "d2", out.Documents[0].DocumentID)
		assert.Equal(t, domain.LifecycleReviewing, out.Documents[0].Lifecycle)
		assert.Equal(t, []service.Notification{{DocumentID: "d2", ReviewerID: "b", Level: domain.Level2}}, out.Notify)
	})

	t.Run("nothing eligible", func(t *testing.T) {
		out, err := engine.BatchApprove(docs[4:], domain.Level1)
		require.NoError(t, err)
		assert.True(t, out.Empty())
		assert.Equal(t, 1, out.Skipped)
		assert.Empty(t, out.Documents)
	})

	t.Run("rejected draft is skipped", func(t *testing.T) {
		rejected := domain.DecisionRejected
		alice := "alice"
		first, err := domain.RestoreLevel(&alice, &rejected)
		require.NoError(t, err)
		draft := newDoc("d6", domain.ReviewState{First: first}, domain.LifecycleDraft)

		out, err := engine.BatchApprove([]domain.Document{draft}, domain.Level1)
		require.NoError(t, err)
		assert.True(t, out.Empty())
		assert.Equal(t, 1, out.Skipped)
		assert.Empty(t, out.Documents)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := engine.BatchApprove(docs, domain.Level(7))
		assert.ErrorIs(t, err, service.ErrInvalidLevel)
	})
}

func TestReviewWorkflowEngine_AssignReviewer(t *testing.T) {
	engine := service.NewReviewWorkflowEngine()
	doc := newDoc("d1", domain.ReviewState{}, domain.LifecycleDraft)

	out, err := engine.AssignReviewer(doc, domain.Level1, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFirstReviewInProgress, out.Status)

	assert.Empty(t, out.Notify)

	out, err = engine.AssignReviewer(out.Document, domain.Level1, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoReviewRequired, out.Status)

	reviewing := newDoc("d2", domain.ReviewState{First: approvedLevel(t, "alice")}, domain.LifecycleReviewing)
	out, err = engine.AssignReviewer(reviewing, domain.Level2, "bob")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSecondReviewInProgress, out.Status)
	assert.Equal(t, []service.Notification{{DocumentID: "d2", ReviewerID: "bob", Level: domain.Level2}}, out.Notify)
}

func TestReviewWorkflowEngine_AssignReviewer_Lifecycle(t *testing.T) {
	engine := service.NewReviewWorkflowEngine()

	t.Run("replacing an approver reopens a published document", func(t *testing.T) {
		doc := newDoc("d1", domain.ReviewState{First: approvedLevel(t, "alice"), Second: approvedLevel(t, "bob")}, domain.LifecyclePublished)

		out, err := engine.AssignReviewer(doc, domain.Level2, "carol")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSecondReviewInProgress, out.Status)
		assert.Equal(t, domain.LifecycleReviewing, out.Document.Lifecycle)
		assert.Equal(t, []service.Notification{{DocumentID: "d1", ReviewerID: "carol", Level: domain.Level2}}, out.Notify)
	})

	t.Run("adding a second level reopens a published document", func(t *testing.T) {
		doc := newDoc("d1", domain.ReviewState{First: approvedLevel(t, "alice")}, domain.LifecyclePublished)

		out, err := engine.AssignReviewer(doc, domain.Level2, "bob")
		require.NoError(t, err)
		assert.Equal(t, domain.LifecycleReviewing, out.Document.Lifecycle)
		assert.Equal(t, []service.Notification{{DocumentID: "d1", ReviewerID: "bob", Level: domain.Level2}}, out.Notify)
	})

	t.Run("clearing the pending level publishes", func(t *testing.T) {
		doc := newDoc("d1", domain.ReviewState{First: approvedLevel(t, "alice"), Second: domain.Assigned("bob")}, domain.LifecycleReviewing)

		out, err := engine.AssignReviewer(doc, domain.Level2, "")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, out.Status)
		assert.Equal(t, domain.LifecyclePublished, out.Document.Lifecycle)
		assert.Empty(t, out.Notify)
	})

	t.Run("draft stays draft", func(t *testing.T) {
		doc := newDoc("d1", domain.ReviewState{First: approvedLevel(t, "alice")}, domain.LifecycleDraft)

		out, err := engine.AssignReviewer(doc, domain.Level2, "bob")
		require.NoError(t, err)
		assert.Equal(t, domain.LifecycleDraft, out.Document.Lifecycle)
		assert.Empty(t, out.Notify)
	})
}
