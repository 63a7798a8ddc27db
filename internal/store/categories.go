package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/omara/internal/model"
)

// ListCategories returns all categories ordered by name.
func ListCategories(ctx context.Context, db *sql.DB) ([]model.Category, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, comments FROM categories ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Comments); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategory returns a category by ID, or nil if it does not exist.
func GetCategory(ctx context.Context, db *sql.DB, id int64) (*model.Category, error) {
	return getCategory(ctx, db, id)
}

func getCategory(ctx context.Context, q querier, id int64) (*model.Category, error) {
	c := &model.Category{}
	err := q.QueryRowContext(ctx,
		`SELECT id, name, comments FROM categories WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Comments)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return c, nil
}

// CreateCategory creates a new category. Names are unique.
func CreateCategory(ctx context.Context, db *sql.DB, in model.CategoryCreate) (*model.Category, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO categories (name, comments) VALUES (?, ?)`,
		in.Name, in.Comments,
	)
	if err != nil {
		return nil, wrapErr("creating category", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting category id: %w", err)
	}

	return GetCategory(ctx, db, id)
}

// UpdateCategory applies a partial update. Returns nil if the category does
// not exist.
func UpdateCategory(ctx context.Context, db *sql.DB, id int64, in model.CategoryUpdate) (*model.Category, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := getCategory(ctx, tx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	set := map[string]any{}
	setOptional(set, "name", in.Name)
	setOptional(set, "comments", in.Comments)

	if err := execUpdate(ctx, tx, "categories", id, set); err != nil {
		return nil, wrapErr("updating category", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapErr("committing category update", err)
	}

	return GetCategory(ctx, db, id)
}

// DeleteCategory deletes a category. Fails with a ConflictError if any item
// still belongs to it. Returns nil if the category does not exist.
func DeleteCategory(ctx context.Context, db *sql.DB, id int64) (*model.Category, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	c, err := getCategory(ctx, tx, id)
	if err != nil || c == nil {
		return nil, err
	}

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE category_id = ?`, id,
	).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("checking category items: %w", err)
	}
	if count > 0 {
		return nil, &ConflictError{Reason: "category has items"}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return nil, wrapErr("deleting category", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing category deletion: %w", err)
	}
	return c, nil
}
