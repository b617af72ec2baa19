// Schema DDL for the salesdesk tables. All statements use IF NOT EXISTS so
// initialization is idempotent and reopening an existing database is safe.
package sqlite

const (
	createContacts = `CREATE TABLE IF NOT EXISTS contacts (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    email        TEXT UNIQUE NOT NULL,
    phone        TEXT NOT NULL DEFAULT '',
    company      TEXT NOT NULL DEFAULT '',
    title        TEXT NOT NULL DEFAULT '',
    tags         TEXT NOT NULL DEFAULT '[]',
    lead_score   INTEGER NOT NULL DEFAULT 0,
    status       TEXT NOT NULL DEFAULT 'lead',
    owner        TEXT NOT NULL DEFAULT '',
    source       TEXT NOT NULL DEFAULT '',
    created_at   TEXT NOT NULL,
    last_contact TEXT
);`

	createDeals = `CREATE TABLE IF NOT EXISTS deals (
    id          TEXT PRIMARY KEY,
    contact_id  TEXT NOT NULL REFERENCES contacts(id),
    title       TEXT NOT NULL,
    value       REAL NOT NULL DEFAULT 0,
    stage       TEXT NOT NULL DEFAULT 'prospecting',
    probability REAL NOT NULL DEFAULT 0.10,
    close_date  TEXT,
    notes       TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);`

	createActivities = `CREATE TABLE IF NOT EXISTS activities (
    id          TEXT PRIMARY KEY,
    contact_id  TEXT NOT NULL REFERENCES contacts(id),
    type        TEXT NOT NULL,
    summary     TEXT NOT NULL,
    outcome     TEXT NOT NULL DEFAULT '',
    next_action TEXT NOT NULL DEFAULT '',
    recorded_at TEXT NOT NULL
);`
)

// Index DDL for the filtered listings and aggregations.
const (
	idxDealsContact      = `CREATE INDEX IF NOT EXISTS idx_deals_contact ON deals(contact_id);`
	idxActivitiesContact = `CREATE INDEX IF NOT EXISTS idx_activities_contact ON activities(contact_id);`
	idxContactsStatus    = `CREATE INDEX IF NOT EXISTS idx_contacts_status ON contacts(status);`
	idxDealsStage        = `CREATE INDEX IF NOT EXISTS idx_deals_stage ON deals(stage);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createContacts,
	createDeals,
	createActivities,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxDealsContact,
	idxActivitiesContact,
	idxContactsStatus,
	idxDealsStage,
}
