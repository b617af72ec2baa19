// Contact row operations: insert, lookup by ID and email, filtered listing,
// full-row update, delete, and the top-by-score query.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

const contactColumns = "id, name, email, phone, company, title, tags, lead_score, status, owner, source, created_at, last_contact"

// ContactFilter narrows ListContacts. Zero values match everything.
// Tag membership is filtered by the caller; tags are multi-valued and not
// queryable at the SQL level.
type ContactFilter struct {
	Status types.ContactStatus
	Owner  string
}

// InsertContact persists a new contact row. The email uniqueness constraint
// is enforced here as well as by the service; a violation surfaces as
// ErrDuplicateEmail.
func (s *Store) InsertContact(c *types.Contact) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tags, err := c.Tags.Encode()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"INSERT INTO contacts ("+contactColumns+") VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)",
		c.ID, c.Name, c.Email, c.Phone, c.Company, c.Title, tags,
		c.LeadScore, string(c.Status), c.Owner, c.Source,
		formatTime(c.CreatedAt), nullableTime(c.LastContact),
	)
	if err != nil {
		if isUniqueViolation(err, "contacts.email") {
			return fmt.Errorf("contact email %q: %w", c.Email, types.ErrDuplicateEmail)
		}
		return fmt.Errorf("inserting contact: %w", err)
	}
	return nil
}

// GetContact retrieves a contact by ID. A missing contact yields (nil, nil).
func (s *Store) GetContact(id string) (*types.Contact, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+contactColumns+" FROM contacts WHERE id = ?", id)
	c, err := hydrateContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting contact %s: %w", id, err)
	}
	return c, nil
}

// GetContactByEmail retrieves a contact by its exact stored email.
// A missing contact yields (nil, nil).
func (s *Store) GetContactByEmail(email string) (*types.Contact, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+contactColumns+" FROM contacts WHERE email = ?", email)
	c, err := hydrateContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting contact by email: %w", err)
	}
	return c, nil
}

// ListContacts returns contacts matching the filter. Row order is not
// guaranteed.
func (s *Store) ListContacts(filter ContactFilter) ([]*types.Contact, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + contactColumns + " FROM contacts"
	var conditions []string
	var args []any
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Owner != "" {
		conditions = append(conditions, "owner = ?")
		args = append(args, filter.Owner)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	defer rows.Close()

	contacts := []*types.Contact{}
	for rows.Next() {
		c, err := hydrateContact(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return contacts, nil
}

// UpdateContactRow rewrites the mutable columns of an existing contact.
// The id, email, and created_at columns are never touched.
func (s *Store) UpdateContactRow(c *types.Contact) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tags, err := c.Tags.Encode()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`UPDATE contacts SET name = ?, phone = ?, company = ?, title = ?,
		 tags = ?, lead_score = ?, status = ?, owner = ?, source = ?,
		 last_contact = ? WHERE id = ?`,
		c.Name, c.Phone, c.Company, c.Title, tags, c.LeadScore,
		string(c.Status), c.Owner, c.Source, nullableTime(c.LastContact), c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating contact %s: %w", c.ID, err)
	}
	return nil
}

// DeleteContact removes a contact row. Returns whether a row was deleted.
// Dependent deals and activities are left in place.
func (s *Store) DeleteContact(id string) (bool, error) {
	db, err := s.conn()
	if err != nil {
		return false, err
	}

	res, err := db.Exec("DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting contact %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting contact %s: %w", id, err)
	}
	return n > 0, nil
}

// TopContactsByScore returns contacts ordered by lead score descending,
// truncated to limit. Ties break in unspecified order.
func (s *Store) TopContactsByScore(limit int) ([]*types.Contact, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT "+contactColumns+" FROM contacts ORDER BY lead_score DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying top contacts: %w", err)
	}
	defer rows.Close()

	contacts := []*types.Contact{}
	for rows.Next() {
		c, err := hydrateContact(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating top contacts: %w", err)
	}
	return contacts, nil
}

// hydrateContact converts a contacts row into a *types.Contact.
func hydrateContact(row rowScanner) (*types.Contact, error) {
	var c types.Contact
	var tags, status, createdAt string
	var lastContact sql.NullString
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Title,
		&tags, &c.LeadScore, &status, &c.Owner, &c.Source,
		&createdAt, &lastContact,
	)
	if err != nil {
		return nil, err
	}
	c.Status = types.ContactStatus(status)
	if c.Tags, err = types.DecodeTags(tags); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if lastContact.Valid {
		t, err := parseTime(lastContact.String)
		if err != nil {
			return nil, err
		}
		c.LastContact = &t
	}
	return &c, nil
}
