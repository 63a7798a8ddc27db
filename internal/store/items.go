package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/erazemk/omara/internal/model"
)

// psql builds statements with SQLite's ? placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const itemColumns = `id, name, category_id, location_id, color, fit, brand, notes, season,
	rating, image_url, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (*model.Item, error) {
	item := &model.Item{}
	err := s.Scan(&item.ID, &item.Name, &item.CategoryID, &item.LocationID,
		&item.Color, &item.Fit, &item.Brand, &item.Notes, &item.Season,
		&item.Rating, &item.ImageURL, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	item.Tags = []model.Tag{}
	return item, nil
}

// ListItems returns all items with their tags.
func ListItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY name, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	rows.Close()

	tags, err := itemTags(ctx, db, nil)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if t, ok := tags[items[i].ID]; ok {
			items[i].Tags = t
		}
	}
	return items, nil
}

// GetItem returns an item with its tags, or nil if it does not exist.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	return getItem(ctx, db, id)
}

func getItem(ctx context.Context, q querier, id int64) (*model.Item, error) {
	item, err := scanItem(q.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	tags, err := itemTags(ctx, q, []int64{id})
	if err != nil {
		return nil, err
	}
	if t, ok := tags[id]; ok {
		item.Tags = t
	}
	return item, nil
}

// CreateItem inserts an item and attaches its tags in one transaction.
func CreateItem(ctx context.Context, db *sql.DB, in model.ItemCreate) (*model.Item, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := psql.Insert("items").SetMap(map[string]any{
		"name":        in.Name,
		"category_id": in.CategoryID,
		"location_id": in.LocationID,
		"color":       in.Color,
		"fit":         in.Fit,
		"brand":       in.Brand,
		"notes":       in.Notes,
		"season":      in.Season,
		"rating":      in.Rating,
		"image_url":   in.ImageURL,
	}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building item insert: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("creating item", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	if err := attachTags(ctx, tx, id, in.Tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapErr("committing item", err)
	}

	return GetItem(ctx, db, id)
}

// UpdateItem applies a partial update. Only fields set in the update are
// written. If Tags is set the item's tags are replaced, not merged.
// Returns nil if the item does not exist.
func UpdateItem(ctx context.Context, db *sql.DB, id int64, in model.ItemUpdate) (*model.Item, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := getItem(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	set := map[string]any{}
	setOptional(set, "name", in.Name)
	setOptional(set, "category_id", in.CategoryID)
	setOptional(set, "location_id", in.LocationID)
	setOptional(set, "color", in.Color)
	setOptional(set, "fit", in.Fit)
	setOptional(set, "brand", in.Brand)
	setOptional(set, "notes", in.Notes)
	setOptional(set, "season", in.Season)
	setOptional(set, "rating", in.Rating)
	setOptional(set, "image_url", in.ImageURL)

	if err := execUpdate(ctx, tx, "items", id, set); err != nil {
		return nil, wrapErr("updating item", err)
	}

	if in.Tags.Set {
		if err := detachTags(ctx, tx, id); err != nil {
			return nil, err
		}
		if err := attachTags(ctx, tx, id, in.Tags.Value); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapErr("committing item update", err)
	}

	return GetItem(ctx, db, id)
}

// DeleteItem deletes an item together with its tag associations and image.
// Returns the deleted item, or nil if it did not exist.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	item, err := getItem(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	if err := detachTags(ctx, tx, id); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM item_images WHERE item_id = ?`, id); err != nil {
		return nil, fmt.Errorf("deleting item image: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return nil, wrapErr("deleting item", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing item deletion: %w", err)
	}
	return item, nil
}

// setOptional adds col to set when the field was present in the request.
func setOptional[T any](set map[string]any, col string, o model.Optional[T]) {
	if o.Set {
		set[col] = o.Arg()
	}
}

// execUpdate runs UPDATE table SET ... WHERE id = ?. It is a no-op for an
// empty set.
func execUpdate(ctx context.Context, q querier, table string, id int64, set map[string]any) error {
	if len(set) == 0 {
		return nil
	}

	query, args, err := psql.Update(table).SetMap(set).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("building %s update: %w", table, err)
	}

	_, err = q.ExecContext(ctx, query, args...)
	return err
}
