package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/erazemk/omara/internal/model"
)

// ListTags returns all tags ordered by name, including ones no item uses.
func ListTags(ctx context.Context, db *sql.DB) ([]model.Tag, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// attachTags gets or creates each named tag and attaches it to the item.
// Duplicate and blank names are ignored; attaching is idempotent.
func attachTags(ctx context.Context, q querier, itemID int64, names []string) error {
	for _, name := range normalizeTags(names) {
		// Insert-if-absent guarded by UNIQUE(name), then read back the id.
		if _, err := q.ExecContext(ctx,
			`INSERT INTO tags (name) VALUES (?) ON CONFLICT (name) DO NOTHING`, name,
		); err != nil {
			return wrapErr("creating tag", err)
		}

		var tagID int64
		if err := q.QueryRowContext(ctx,
			`SELECT id FROM tags WHERE name = ?`, name,
		).Scan(&tagID); err != nil {
			return fmt.Errorf("looking up tag %q: %w", name, err)
		}

		if _, err := q.ExecContext(ctx,
			`INSERT OR IGNORE INTO item_tags (item_id, tag_id) VALUES (?, ?)`, itemID, tagID,
		); err != nil {
			return wrapErr("attaching tag", err)
		}
	}
	return nil
}

// detachTags removes all tag associations of an item. Tag rows are kept.
func detachTags(ctx context.Context, q querier, itemID int64) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM item_tags WHERE item_id = ?`, itemID); err != nil {
		return fmt.Errorf("detaching tags: %w", err)
	}
	return nil
}

// itemTags returns the tags of the given items keyed by item id.
// A nil ids slice loads tags for every item.
func itemTags(ctx context.Context, q querier, ids []int64) (map[int64][]model.Tag, error) {
	query := `SELECT it.item_id, t.id, t.name
	          FROM item_tags it
	          JOIN tags t ON t.id = it.tag_id`
	var args []any
	if ids != nil {
		if len(ids) == 0 {
			return map[int64][]model.Tag{}, nil
		}
		query += ` WHERE it.item_id IN (?` + strings.Repeat(", ?", len(ids)-1) + `)`
		for _, id := range ids {
			args = append(args, id)
		}
	}
	query += ` ORDER BY t.name`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading item tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[int64][]model.Tag)
	for rows.Next() {
		var itemID int64
		var tag model.Tag
		if err := rows.Scan(&itemID, &tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("scanning item tag: %w", err)
		}
		tags[itemID] = append(tags[itemID], tag)
	}
	return tags, rows.Err()
}

// normalizeTags trims names and drops blanks and duplicates, keeping order.
func normalizeTags(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
