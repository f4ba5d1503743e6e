package service

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/repository/document"
	"github.com/mishasvintus/product_review_service/internal/repository/stats"
)

// ReviewerLoad is the number of documents awaiting one reviewer.
type ReviewerLoad struct {
	UserID string
	Count  int64
}

// Statistics summarises documents and review progress.
type Statistics struct {
	Overall      stats.OverallStats
	Lifecycle    map[domain.LifecycleStatus]int64
	ReviewStatus map[domain.ReviewStatus]int64
	Awaiting     []ReviewerLoad
}

// StatsService computes statistics.
type StatsService struct {
	db *sql.DB
}

// NewStatsService creates a new stats service.
func NewStatsService(db *sql.DB) *StatsService {
	return &StatsService{db: db}
}

// GetStatistics returns record totals, lifecycle and review status breakdowns,
// and how many reviewing documents wait on each reviewer.
func (s *StatsService) GetStatistics() (*Statistics, error) {
	overall, err := stats.GetOverallStats(s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to get overall stats: %w", err)
	}

	lifecycle, err := stats.GetLifecycleStats(s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to get lifecycle stats: %w", err)
	}

	docs, err := document.List(s.db, domain.DocumentFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	result := SummarizeReviews(docs)
	result.Overall = *overall
	for _, l := range lifecycle {
		result.Lifecycle[domain.LifecycleStatus(l.Lifecycle)] = l.Count
	}

	return result, nil
}

// SummarizeReviews counts review statuses and per-reviewer backlog over docs.
// Backlog only counts documents in the reviewing lifecycle.
func SummarizeReviews(docs []domain.Document) *Statistics {
	result := &Statistics{
		Lifecycle:    make(map[domain.LifecycleStatus]int64),
		ReviewStatus: make(map[domain.ReviewStatus]int64),
		Awaiting:     make([]ReviewerLoad, 0),
	}

	awaiting := make(map[string]int64)
	for _, d := range docs {
		result.ReviewStatus[domain.Aggregate(d.Review)]++

		if d.Lifecycle != domain.LifecycleReviewing {
			continue
		}
		if level, ok := domain.ActiveLevel(d.Review); ok {
			reviewer, _ := d.Review.Level(level).Reviewer()
			awaiting[reviewer]++
		}
	}

	for userID, count := range awaiting {
		result.Awaiting = append(result.Awaiting, ReviewerLoad{UserID: userID, Count: count})
	}
	sort.Slice(result.Awaiting, func(i, j int) bool {
		if result.Awaiting[i].Count != result.Awaiting[j].Count {
			return result.Awaiting[i].Count > result.Awaiting[j].Count
		}
		return result.Awaiting[i].UserID < result.Awaiting[j].UserID
	})

	return result
}
