package state

import (
	"context"
	"database/sql"

	dbutil "github.com/llehouerou/setlist/internal/db"
	"github.com/llehouerou/setlist/internal/playlist"
)

func getPlaylist(db *sql.DB) ([]playlist.Item, error) {
	rows, err := db.Query(`
		SELECT item_id, name
		FROM playlist_items
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]playlist.Item, 0)
	for rows.Next() {
		var it playlist.Item
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func savePlaylist(ctx context.Context, sqlDB *sql.DB, items []playlist.Item) error {
	return dbutil.WithTx(ctx, sqlDB, func(tx *sql.Tx) error {
		// Replace the whole snapshot
		if _, err := tx.Exec(`DELETE FROM playlist_items`); err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO playlist_items (position, item_id, name)
			VALUES (?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, it := range items {
			if _, err := stmt.Exec(i, it.ID, it.Name); err != nil {
				return err
			}
		}
		return nil
	})
}
