package stats

import (
	"fmt"

	"github.com/mishasvintus/product_review_service/internal/repository"
)

// OverallStats represents overall record counts.
type OverallStats struct {
	TotalDocuments int64
	TotalUsers     int64
	TotalVersions  int64
}

// LifecycleStat is the number of documents in one lifecycle status.
type LifecycleStat struct {
	Lifecycle string
	Count     int64
}

// GetOverallStats returns overall statistics.
func GetOverallStats(exec repository.DBTX) (*OverallStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM documents) as total_documents,
			(SELECT COUNT(*) FROM users) as total_users,
			(SELECT COUNT(*) FROM versions) as total_versions
	`
	var stats OverallStats
	err := exec.QueryRow(query).Scan(
		&stats.TotalDocuments,
		&stats.TotalUsers,
		&stats.TotalVersions,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get overall stats: %w", err)
	}

	return &stats, nil
}

// GetLifecycleStats returns document counts per lifecycle status.
func GetLifecycleStats(exec repository.DBTX) ([]LifecycleStat, error) {
	query := `
		SELECT lifecycle, COUNT(*)
		FROM documents
		GROUP BY lifecycle
		ORDER BY lifecycle
	`
	rows, err := exec.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get lifecycle stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stats []LifecycleStat
	for rows.Next() {
		var stat LifecycleStat
		if err := rows.Scan(&stat.Lifecycle, &stat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan lifecycle stat: %w", err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return stats, nil
}
