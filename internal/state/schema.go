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

		CREATE TABLE IF NOT EXISTS playlist_items (
			position INTEGER NOT NULL UNIQUE,
			item_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_playlist_items_position ON playlist_items(position);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
