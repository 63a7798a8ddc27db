package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/omara/internal/model"
)

const locationColumns = `id, name, description, comments, width, height, grid_x, grid_y`

func scanLocation(s rowScanner) (*model.Location, error) {
	l := &model.Location{}
	err := s.Scan(&l.ID, &l.Name, &l.Description, &l.Comments,
		&l.Width, &l.Height, &l.GridX, &l.GridY)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ListLocations returns all locations.
func ListLocations(ctx context.Context, db *sql.DB) ([]model.Location, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+locationColumns+` FROM locations ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	defer rows.Close()

	var locations []model.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}
		locations = append(locations, *l)
	}
	return locations, rows.Err()
}

// GetLocation returns a location by ID, or nil if it does not exist.
func GetLocation(ctx context.Context, db *sql.DB, id int64) (*model.Location, error) {
	return getLocation(ctx, db, id)
}

func getLocation(ctx context.Context, q querier, id int64) (*model.Location, error) {
	l, err := scanLocation(q.QueryRowContext(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting location: %w", err)
	}
	return l, nil
}

// CreateLocation creates a new location.
func CreateLocation(ctx context.Context, db *sql.DB, in model.LocationCreate) (*model.Location, error) {
	query, args, err := psql.Insert("locations").SetMap(map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"comments":    in.Comments,
		"width":       in.Width,
		"height":      in.Height,
		"grid_x":      in.GridX,
		"grid_y":      in.GridY,
	}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building location insert: %w", err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("creating location", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting location id: %w", err)
	}

	return GetLocation(ctx, db, id)
}

// UpdateLocation applies a partial update. Returns nil if the location does
// not exist.
func UpdateLocation(ctx context.Context, db *sql.DB, id int64, in model.LocationUpdate) (*model.Location, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := getLocation(ctx, tx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	set := map[string]any{}
	setOptional(set, "name", in.Name)
	setOptional(set, "description", in.Description)
	setOptional(set, "comments", in.Comments)
	setOptional(set, "width", in.Width)
	setOptional(set, "height", in.Height)
	setOptional(set, "grid_x", in.GridX)
	setOptional(set, "grid_y", in.GridY)

	if err := execUpdate(ctx, tx, "locations", id, set); err != nil {
		return nil, wrapErr("updating location", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapErr("committing location update", err)
	}

	return GetLocation(ctx, db, id)
}

// DeleteLocation detaches all items from the location and deletes it, in
// one transaction. Returns nil if the location does not exist.
func DeleteLocation(ctx context.Context, db *sql.DB, id int64) (*model.Location, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	l, err := getLocation(ctx, tx, id)
	if err != nil || l == nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE items SET location_id = NULL WHERE location_id = ?`, id,
	); err != nil {
		return nil, fmt.Errorf("detaching location items: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id); err != nil {
		return nil, wrapErr("deleting location", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing location deletion: %w", err)
	}
	return l, nil
}
