package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS briefings (
	id         TEXT PRIMARY KEY,
	text       TEXT NOT NULL,
	outcome    TEXT NOT NULL DEFAULT 'ok',
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_briefings_created_at ON briefings(created_at);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
