package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/fremyrosso/site/internal/nav"
)

type SectionCount struct {
	Section string `json:"section"`
	Count   int64  `json:"count"`
}

// Stats are aggregates only; no per-visitor rows leave the store.
type Stats struct {
	TotalVisits    int64          `json:"total_visits"`
	UniqueVisitors int64          `json:"unique_visitors"`
	VisitsToday    int64          `json:"visits_today"`
	VisitsThisWeek int64          `json:"visits_this_week"`
	Navigations    []SectionCount `json:"navigations"`
}

// Stats computes the current aggregates.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits`).Scan(&stats.TotalVisits)
	if err != nil {
		return nil, fmt.Errorf("counting visits: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`).Scan(&stats.UniqueVisitors)
	if err != nil {
		return nil, fmt.Errorf("counting unique visitors: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits WHERE at >= ?`, startOfDay.Unix()).Scan(&stats.VisitsToday)
	if err != nil {
		return nil, fmt.Errorf("counting visits today: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits WHERE at >= ?`, weekAgo.Unix()).Scan(&stats.VisitsThisWeek)
	if err != nil {
		return nil, fmt.Errorf("counting visits this week: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT section, COUNT(*) FROM navigations GROUP BY section`)
	if err != nil {
		return nil, fmt.Errorf("counting navigations: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var section string
		var n int64
		if err := rows.Scan(&section, &n); err != nil {
			return nil, fmt.Errorf("scanning navigation count: %w", err)
		}
		counts[section] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("counting navigations: %w", err)
	}

	for _, sec := range nav.Sections() {
		stats.Navigations = append(stats.Navigations, SectionCount{Section: sec.ID(), Count: counts[sec.ID()]})
	}
	return stats, nil
}
