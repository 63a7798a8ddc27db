package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults lists the categories and locations created on first start.
type Defaults struct {
	Categories []string `yaml:"categories"`
	Locations  []string `yaml:"locations"`
}

// LoadDefaults parses the embedded default categories and locations.
func LoadDefaults() (*Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(defaultsYAML, &d); err != nil {
		return nil, fmt.Errorf("parsing defaults: %w", err)
	}
	return &d, nil
}

// SeedDefaults inserts the default categories and locations once per
// database. The sentinel row is claimed first inside the same transaction,
// so a second run (or a concurrent one) sees it and does nothing.
// Reports whether this call did the seeding.
func SeedDefaults(ctx context.Context, db *sql.DB) (bool, error) {
	d, err := LoadDefaults()
	if err != nil {
		return false, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO app_meta (key, value) VALUES (?, '1')`, MetaSeeded,
	)
	if err != nil {
		return false, fmt.Errorf("claiming seed sentinel: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claiming seed sentinel: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	for _, name := range d.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO categories (name) VALUES (?)`, name,
		); err != nil {
			return false, fmt.Errorf("seeding category %s: %w", name, err)
		}
	}
	for _, name := range d.Locations {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO locations (name) VALUES (?)`, name,
		); err != nil {
			return false, fmt.Errorf("seeding location %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing seed transaction: %w", err)
	}
	return true, nil
}
