package db

// SchemaSQL is the complete schema for the work-item store.
//
// This is the single source of truth for the database schema. All tests load
// it via GetSchemaSQL() so repository code that references a column which
// does not exist here fails immediately with "no such column" instead of
// drifting silently.
//
// Notes on the shape:
//   - id is a zero-padded decimal string ("001"); CAST(id AS INTEGER) gives
//     the numeric ordering and the allocator's MAX.
//   - blocked_by, labels and log hold JSON-serialized lists; NULL means
//     absent (an empty list is normalized to NULL before writing).
//   - type carries no CHECK because free-form variants like 'message' are
//     tolerated; validation happens in core/item.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS items (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('open', 'in_progress', 'closed')) DEFAULT 'open',
	priority INTEGER NOT NULL DEFAULT 2,
	type TEXT NOT NULL DEFAULT 'task',
	created TEXT NOT NULL,
	updated TEXT NOT NULL,
	description TEXT,
	blocked_by TEXT,
	labels TEXT,
	closed_reason TEXT,
	log TEXT,
	author TEXT,
	assignee TEXT
);

CREATE INDEX IF NOT EXISTS idx_items_status ON items(status);
CREATE INDEX IF NOT EXISTS idx_items_assignee ON items(assignee);
`

// GetSchemaSQL returns the authoritative schema SQL.
func GetSchemaSQL() string {
	return SchemaSQL
}
