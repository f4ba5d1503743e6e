package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/repository"
	"github.com/mishasvintus/product_review_service/internal/repository/document"
	"github.com/mishasvintus/product_review_service/internal/repository/user"
)

// BatchApproveResult reports a batch approval back to the caller.
type BatchApproveResult struct {
	Documents []domain.Document
	Affected  int
	// Skipped counts ineligible documents and unknown IDs.
	Skipped  int
	NotFound []string
}

// DocumentService handles requirement and PRD documents and their review workflow.
type DocumentService struct {
	db       *sql.DB
	engine   *ReviewWorkflowEngine
	assigner *ReviewerAssigner
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	db *sql.DB,
	engine *ReviewWorkflowEngine,
	assigner *ReviewerAssigner,
	notifier Notifier,
	log *slog.Logger,
) *DocumentService {
	return &DocumentService{
		db:       db,
		engine:   engine,
		assigner: assigner,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// CreateDocument creates a draft document with no reviewers.
func (s *DocumentService) CreateDocument(kind domain.DocumentKind, title, authorID string) (*domain.Document, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid document kind: %s", kind)
	}

	doc := &domain.Document{
		DocumentID: uuid.NewString(),
		Kind:       kind,
		Title:      title,
		AuthorID:   authorID,
		Lifecycle:  domain.LifecycleDraft,
	}

	if err := document.Create(s.db, doc); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	s.log.Info("document created",
		slog.String("document_id", doc.DocumentID),
		slog.String("kind", string(kind)),
		slog.String("author_id", authorID),
	)

	return s.GetDocument(doc.DocumentID)
}

// GetDocument returns a document by ID.
func (s *DocumentService) GetDocument(documentID string) (*domain.Document, error) {
	if !isUUID(documentID) {
		return nil, ErrDocumentNotFound
	}

	doc, err := document.Get(s.db, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns documents matching filter. The review status filter is
// evaluated with the aggregator, never with stored labels.
func (s *DocumentService) ListDocuments(filter domain.DocumentFilter) ([]domain.Document, error) {
	docs, err := document.List(s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	if filter.ReviewStatus == "" {
		return docs, nil
	}

	matched := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		if domain.Aggregate(d.Review) == filter.ReviewStatus {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

// AssignReviewer sets the reviewer of a level. An empty userID clears the level.
func (s *DocumentService) AssignReviewer(documentID string, level domain.Level, userID string) (*domain.Document, error) {
	return s.mutate(documentID, func(tx *sql.Tx, doc domain.Document) (Outcome, error) {
		if userID != "" {
			if err := checkReviewer(tx, userID); err != nil {
				return Outcome{}, err
			}
		}
		return s.engine.AssignReviewer(doc, level, userID)
	})
}

// AutoAssignReviewers fills every unassigned level with a random active user
// other than the author and the current reviewers. Level 1 is filled first.
func (s *DocumentService) AutoAssignReviewers(documentID string) (*domain.Document, error) {
	return s.mutate(documentID, func(tx *sql.Tx, doc domain.Document) (Outcome, error) {
		var open []domain.Level
		exclude := []string{doc.AuthorID}
		for _, l := range []domain.Level{domain.Level1, domain.Level2} {
			if reviewer, ok := doc.Review.Level(l).Reviewer(); ok {
				exclude = append(exclude, reviewer)
			} else {
				open = append(open, l)
			}
		}

		out := Outcome{Document: doc, Status: domain.Aggregate(doc.Review)}
		if len(open) == 0 {
			return out, nil
		}

		active, err := user.GetActive(tx)
		if err != nil {
			return Outcome{}, fmt.Errorf("failed to get active users: %w", err)
		}

		candidates := s.assigner.Candidates(active, exclude...)
		if len(candidates) == 0 {
			return Outcome{}, ErrNoCandidate
		}

		reviewers, err := s.assigner.SelectReviewers(candidates, len(open))
		if err != nil {
			return Outcome{}, fmt.Errorf("failed to select reviewers: %w", err)
		}

		for i, reviewer := range reviewers {
			step, err := s.engine.AssignReviewer(out.Document, open[i], reviewer)
			if err != nil {
				return Outcome{}, err
			}
			step.Notify = append(out.Notify, step.Notify...)
			out = step
		}
		return out, nil
	})
}

// SubmitForReview moves a document into review.
func (s *DocumentService) SubmitForReview(documentID string) (*domain.Document, error) {
	return s.mutate(documentID, func(_ *sql.Tx, doc domain.Document) (Outcome, error) {
		return s.engine.SubmitForReview(doc)
	})
}

// Approve records an approval at level.
func (s *DocumentService) Approve(documentID string, level domain.Level) (*domain.Document, error) {
	return s.mutate(documentID, func(_ *sql.Tx, doc domain.Document) (Outcome, error) {
		return s.engine.Approve(doc, level)
	})
}

// Reject records a rejection at level.
func (s *DocumentService) Reject(documentID string, level domain.Level) (*domain.Document, error) {
	return s.mutate(documentID, func(_ *sql.Tx, doc domain.Document) (Outcome, error) {
		return s.engine.Reject(doc, level)
	})
}

// BatchApprove approves level on every eligible document among documentIDs.
// Nothing eligible is reported as a zero count, not as an error.
func (s *DocumentService) BatchApprove(documentIDs []string, level domain.Level) (*BatchApproveResult, error) {
	if !level.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	ids := uniqueIDs(documentIDs)
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if isUUID(id) {
			valid = append(valid, id)
		}
	}

	var outcome BatchOutcome
	result := &BatchApproveResult{}

	err := repository.WithTx(s.db, func(tx *sql.Tx) error {
		docs, err := document.GetManyForUpdate(tx, valid)
		if err != nil {
			return fmt.Errorf("failed to get documents: %w", err)
		}

		found := make(map[string]domain.LifecycleStatus, len(docs))
		for _, d := range docs {
			found[d.DocumentID] = d.Lifecycle
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				result.NotFound = append(result.NotFound, id)
			}
		}

		outcome, err = s.engine.BatchApprove(docs, level)
		if err != nil {
			return err
		}

		for i := range outcome.Documents {
			d := &outcome.Documents[i]
			s.stampPublication(found[d.DocumentID], d)
			if err := document.Update(tx, d); err != nil {
				return fmt.Errorf("failed to update document %s: %w", d.DocumentID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Documents = outcome.Documents
	result.Affected = outcome.Affected
	result.Skipped = outcome.Skipped + len(result.NotFound)

	s.log.Info("batch approval",
		slog.Int("level", int(level)),
		slog.Int("affected", result.Affected),
		slog.Int("skipped", result.Skipped),
	)
	s.dispatch(outcome.Notify)

	return result, nil
}

// mutate runs a workflow step on a locked document and persists the result.
func (s *DocumentService) mutate(documentID string, step func(tx *sql.Tx, doc domain.Document) (Outcome, error)) (*domain.Document, error) {
	if !isUUID(documentID) {
		return nil, ErrDocumentNotFound
	}

	var out Outcome
	err := repository.WithTx(s.db, func(tx *sql.Tx) error {
		doc, err := document.GetForUpdate(tx, documentID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrDocumentNotFound
			}
			return fmt.Errorf("failed to get document: %w", err)
		}

		out, err = step(tx, *doc)
		if err != nil {
			return err
		}

		s.stampPublication(doc.Lifecycle, &out.Document)
		if err := document.Update(tx, &out.Document); err != nil {
			return fmt.Errorf("failed to update document: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("document review updated",
		slog.String("document_id", documentID),
		slog.String("review_status", string(out.Status)),
		slog.String("lifecycle", string(out.Document.Lifecycle)),
	)
	s.dispatch(out.Notify)

	return s.GetDocument(documentID)
}

// stampPublication keeps PublishedAt in line with the lifecycle.
func (s *DocumentService) stampPublication(prev domain.LifecycleStatus, doc *domain.Document) {
	switch {
	case doc.Lifecycle != domain.LifecyclePublished:
		doc.PublishedAt = nil
	case prev != domain.LifecyclePublished || doc.PublishedAt == nil:
		now := s.now()
		doc.PublishedAt = &now
	}
}

// dispatch delivers notifications. Delivery failures are logged, not returned:
// the review change is already committed.
func (s *DocumentService) dispatch(notifications []Notification) {
	for _, n := range notifications {
		if err := s.notifier.NotifyReviewer(n); err != nil {
			s.log.Warn("failed to notify reviewer",
				slog.String("document_id", n.DocumentID),
				slog.String("reviewer_id", n.ReviewerID),
				slog.Any("error", err),
			)
		}
	}
}

func checkReviewer(exec repository.DBTX, userID string) error {
	u, err := user.Get(exec, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get reviewer: %w", err)
	}
	if !u.IsActive {
		return ErrInactiveReviewer
	}
	return nil
}

// isUUID accepts only the canonical 36-character textual form.
func isUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// uniqueIDs drops duplicates, comparing UUIDs case-insensitively.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(id)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
