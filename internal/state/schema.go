package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS reading_state (
			issue_path TEXT PRIMARY KEY,
			page_id TEXT,
			page_number INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS embeds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			issue_path TEXT NOT NULL,
			page_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			path TEXT NOT NULL,
			kind TEXT NOT NULL,
			size INTEGER,
			url TEXT NOT NULL,
			title TEXT,
			artist TEXT,
			album TEXT,
			added_at INTEGER NOT NULL,
			UNIQUE(issue_path, page_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_embeds_page ON embeds(issue_path, page_id, position);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
