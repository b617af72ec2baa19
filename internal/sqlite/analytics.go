// Aggregation queries backing the analytics reports. All queries compute on
// demand against the current table contents; nothing is cached.
package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

// StageAggregate is one row of the per-stage pipeline rollup.
type StageAggregate struct {
	Stage    types.DealStage
	Total    float64
	Weighted float64
	Count    int
}

// PipelineByStage groups deals by stage, summing value and value×probability.
// The weighted sum uses each deal's stored probability as-is.
func (s *Store) PipelineByStage() ([]StageAggregate, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT stage, SUM(value), SUM(value * probability), COUNT(*)
		 FROM deals GROUP BY stage`,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregating pipeline: %w", err)
	}
	defer rows.Close()

	var aggs []StageAggregate
	for rows.Next() {
		var a StageAggregate
		var stage string
		if err := rows.Scan(&stage, &a.Total, &a.Weighted, &a.Count); err != nil {
			return nil, fmt.Errorf("scanning pipeline row: %w", err)
		}
		a.Stage = types.DealStage(stage)
		aggs = append(aggs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pipeline rows: %w", err)
	}
	return aggs, nil
}

// ContactStatusCounts counts contacts grouped by status.
func (s *Store) ContactStatusCounts() (map[types.ContactStatus]int, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT status, COUNT(*) FROM contacts GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("counting contact statuses: %w", err)
	}
	defer rows.Close()

	counts := make(map[types.ContactStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}
		counts[types.ContactStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status counts: %w", err)
	}
	return counts, nil
}

// ClosedDealCounts counts deals in the closed_won and closed_lost stages.
func (s *Store) ClosedDealCounts() (won, lost int, err error) {
	db, err := s.conn()
	if err != nil {
		return 0, 0, err
	}

	err = db.QueryRow(
		"SELECT COUNT(*) FROM deals WHERE stage = ?", string(types.StageClosedWon),
	).Scan(&won)
	if err != nil {
		return 0, 0, fmt.Errorf("counting won deals: %w", err)
	}
	err = db.QueryRow(
		"SELECT COUNT(*) FROM deals WHERE stage = ?", string(types.StageClosedLost),
	).Scan(&lost)
	if err != nil {
		return 0, 0, fmt.Errorf("counting lost deals: %w", err)
	}
	return won, lost, nil
}

// ActivityTypeCounts counts activities grouped by type.
func (s *Store) ActivityTypeCounts() (map[types.ActivityType]int, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT type, COUNT(*) FROM activities GROUP BY type")
	if err != nil {
		return nil, fmt.Errorf("counting activity types: %w", err)
	}
	defer rows.Close()

	counts := make(map[types.ActivityType]int)
	for rows.Next() {
		var typ string
		var n int
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("scanning activity count: %w", err)
		}
		counts[types.ActivityType(typ)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity counts: %w", err)
	}
	return counts, nil
}
