package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erazemk/omara/internal/model"
)

func ptr[T any](v T) *T { return &v }

func mustCategory(t *testing.T, database *sql.DB, name string) *model.Category {
	t.Helper()
	c, err := CreateCategory(context.Background(), database, model.CategoryCreate{Name: name})
	require.NoError(t, err)
	return c
}

func mustLocation(t *testing.T, database *sql.DB, name string) *model.Location {
	t.Helper()
	l, err := CreateLocation(context.Background(), database, model.LocationCreate{Name: name})
	require.NoError(t, err)
	return l
}

func mustItem(t *testing.T, database *sql.DB, in model.ItemCreate) *model.Item {
	t.Helper()
	item, err := CreateItem(context.Background(), database, in)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item
}

func tagNames(tags []model.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
