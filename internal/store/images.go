package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/omara/internal/model"
)

// ItemImageURL is the path an item's stored photo is served from.
func ItemImageURL(itemID int64) string {
	return fmt.Sprintf("/items/%d/image", itemID)
}

// SetItemImage stores an item's photo and points its image_url at it.
// Returns nil if the item does not exist.
func SetItemImage(ctx context.Context, db *sql.DB, itemID int64, data []byte, mime string) (*model.Item, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	item, err := getItem(ctx, tx, itemID)
	if err != nil || item == nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO item_images (item_id, data, mime) VALUES (?, ?, ?)
		 ON CONFLICT (item_id) DO UPDATE
		 SET data = excluded.data, mime = excluded.mime, updated_at = CURRENT_TIMESTAMP`,
		itemID, data, mime,
	)
	if err != nil {
		return nil, wrapErr("storing item image", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE items SET image_url = ? WHERE id = ?`, ItemImageURL(itemID), itemID,
	); err != nil {
		return nil, fmt.Errorf("setting item image url: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing item image: %w", err)
	}

	return GetItem(ctx, db, itemID)
}

// GetItemImage returns an item's photo and MIME type. data is nil when the
// item has no stored photo.
func GetItemImage(ctx context.Context, db *sql.DB, itemID int64) ([]byte, string, error) {
	var data []byte
	var mime string
	err := db.QueryRowContext(ctx,
		`SELECT data, mime FROM item_images WHERE item_id = ?`, itemID,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return data, mime, nil
}
