// Activity row operations. Logging an activity is the one dual write in the
// system: the activity insert and the parent contact's last_contact update
// commit in a single transaction, or not at all.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

const activityColumns = "id, contact_id, type, summary, outcome, next_action, recorded_at"

// InsertActivity persists an activity and stamps the parent contact's
// last_contact with the activity's recorded_at, atomically. Returns
// ErrNotFound if the contact does not exist; in that case neither table is
// touched.
func (s *Store) InsertActivity(a *types.Activity) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Existence check inside the transaction so the dual write cannot race
	// a concurrent contact delete.
	var one int
	err = tx.QueryRow("SELECT 1 FROM contacts WHERE id = ?", a.ContactID).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("contact %s: %w", a.ContactID, types.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("checking contact existence: %w", err)
	}

	recordedAt := formatTime(a.RecordedAt)
	_, err = tx.Exec(
		"INSERT INTO activities ("+activityColumns+") VALUES (?,?,?,?,?,?,?)",
		a.ID, a.ContactID, string(a.Type), a.Summary, a.Outcome, a.NextAction, recordedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}

	_, err = tx.Exec(
		"UPDATE contacts SET last_contact = ? WHERE id = ?",
		recordedAt, a.ContactID,
	)
	if err != nil {
		return fmt.Errorf("stamping last_contact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing activity: %w", err)
	}
	return nil
}

// ListActivities returns all activities for a contact, most recent first.
func (s *Store) ListActivities(contactID string) ([]*types.Activity, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT "+activityColumns+" FROM activities WHERE contact_id = ? ORDER BY recorded_at DESC",
		contactID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	activities := []*types.Activity{}
	for rows.Next() {
		a, err := hydrateActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

// hydrateActivity converts an activities row into a *types.Activity.
func hydrateActivity(row rowScanner) (*types.Activity, error) {
	var a types.Activity
	var typ, recordedAt string
	err := row.Scan(
		&a.ID, &a.ContactID, &typ, &a.Summary, &a.Outcome, &a.NextAction, &recordedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Type = types.ActivityType(typ)
	if a.RecordedAt, err = parseTime(recordedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
