// Deal row operations: insert, lookup, filtered listing, full-row update.
// Deals have no delete; closed_lost is the terminal form of a dead deal.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

const dealColumns = "id, contact_id, title, value, stage, probability, close_date, notes, created_at, updated_at"

// DealFilter narrows ListDeals. Zero values match everything.
type DealFilter struct {
	ContactID string
	Stage     types.DealStage
}

// InsertDeal persists a new deal row.
func (s *Store) InsertDeal(d *types.Deal) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"INSERT INTO deals ("+dealColumns+") VALUES (?,?,?,?,?,?,?,?,?,?)",
		d.ID, d.ContactID, d.Title, d.Value, string(d.Stage), d.Probability,
		nullableTime(d.CloseDate), d.Notes,
		formatTime(d.CreatedAt), formatTime(d.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting deal: %w", err)
	}
	return nil
}

// GetDeal retrieves a deal by ID. A missing deal yields (nil, nil).
func (s *Store) GetDeal(id string) (*types.Deal, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+dealColumns+" FROM deals WHERE id = ?", id)
	d, err := hydrateDeal(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting deal %s: %w", id, err)
	}
	return d, nil
}

// ListDeals returns deals matching the filter. Row order is not guaranteed.
func (s *Store) ListDeals(filter DealFilter) ([]*types.Deal, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + dealColumns + " FROM deals"
	var conditions []string
	var args []any
	if filter.ContactID != "" {
		conditions = append(conditions, "contact_id = ?")
		args = append(args, filter.ContactID)
	}
	if filter.Stage != "" {
		conditions = append(conditions, "stage = ?")
		args = append(args, string(filter.Stage))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing deals: %w", err)
	}
	defer rows.Close()

	deals := []*types.Deal{}
	for rows.Next() {
		d, err := hydrateDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating deal: %w", err)
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deals: %w", err)
	}
	return deals, nil
}

// UpdateDealRow rewrites the mutable columns of an existing deal.
// The id, contact_id, and created_at columns are never touched.
func (s *Store) UpdateDealRow(d *types.Deal) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`UPDATE deals SET title = ?, value = ?, stage = ?, probability = ?,
		 close_date = ?, notes = ?, updated_at = ? WHERE id = ?`,
		d.Title, d.Value, string(d.Stage), d.Probability,
		nullableTime(d.CloseDate), d.Notes, formatTime(d.UpdatedAt), d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating deal %s: %w", d.ID, err)
	}
	return nil
}

// hydrateDeal converts a deals row into a *types.Deal.
func hydrateDeal(row rowScanner) (*types.Deal, error) {
	var d types.Deal
	var stage, createdAt, updatedAt string
	var closeDate sql.NullString
	err := row.Scan(
		&d.ID, &d.ContactID, &d.Title, &d.Value, &stage, &d.Probability,
		&closeDate, &d.Notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.Stage = types.DealStage(stage)
	if d.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if d.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	if closeDate.Valid {
		t, err := parseTime(closeDate.String)
		if err != nil {
			return nil, err
		}
		d.CloseDate = &t
	}
	return &d, nil
}
