package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/omara/internal/db"
	"github.com/erazemk/omara/internal/model"
)

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	shoes := mustCategory(t, database, "Shoes")
	rack := mustLocation(t, database, "Shoe Rack")

	item, err := CreateItem(ctx, database, model.ItemCreate{
		Name:       "Sneaker",
		CategoryID: shoes.ID,
		LocationID: &rack.ID,
		Color:      ptr("white"),
		Brand:      ptr("Veja"),
		Season:     ptr("summer"),
		Rating:     ptr(4),
		Tags:       []string{"casual"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Sneaker", item.Name)
	assert.Equal(t, shoes.ID, item.CategoryID)
	require.NotNil(t, item.LocationID)
	assert.Equal(t, rack.ID, *item.LocationID)
	assert.Equal(t, "white", *item.Color)
	assert.Equal(t, 4, *item.Rating)
	assert.Nil(t, item.Fit)
	assert.Nil(t, item.Notes)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, []string{"casual"}, tagNames(item.Tags))

	got, err := GetItem(ctx, database, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestGetItemMissing(t *testing.T) {
	database := db.NewTestDB(t)

	item, err := GetItem(context.Background(), database, 42)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestCreateItemDuplicateTagsAttachOnce(t *testing.T) {
	database := db.NewTestDB(t)
	shoes := mustCategory(t, database, "Shoes")

	item := mustItem(t, database, model.ItemCreate{
		Name:       "Sneaker",
		CategoryID: shoes.ID,
		Tags:       []string{"Summer", "Summer", " Summer ", "", "Sport"},
	})

	assert.ElementsMatch(t, []string{"Summer", "Sport"}, tagNames(item.Tags))
	assert.Equal(t, 2, countRows(t, database, "item_tags"))
	assert.Equal(t, 2, countRows(t, database, "tags"))
}

func TestCreateItemReusesExistingTags(t *testing.T) {
	database := db.NewTestDB(t)
	shoes := mustCategory(t, database, "Shoes")

	first := mustItem(t, database, model.ItemCreate{Name: "Sneaker", CategoryID: shoes.ID, Tags: []string{"Summer"}})
	second := mustItem(t, database, model.ItemCreate{Name: "Sandal", CategoryID: shoes.ID, Tags: []string{"Summer"}})

	require.Len(t, first.Tags, 1)
	require.Len(t, second.Tags, 1)
	assert.Equal(t, first.Tags[0].ID, second.Tags[0].ID)
	assert.Equal(t, 1, countRows(t, database, "tags"))
}

func TestCreateItemUnknownCategoryIsConstraintViolation(t *testing.T) {
	database := db.NewTestDB(t)

	_, err := CreateItem(context.Background(), database, model.ItemCreate{
		Name:       "Ghost",
		CategoryID: 99,
		Tags:       []string{"orphan"},
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)

	// Nothing from the failed call persists, including the tag.
	assert.Equal(t, 0, countRows(t, database, "items"))
	assert.Equal(t, 0, countRows(t, database, "tags"))
}

func TestCreateItemUnknownLocationIsConstraintViolation(t *testing.T) {
	database := db.NewTestDB(t)
	shoes := mustCategory(t, database, "Shoes")

	_, err := CreateItem(context.Background(), database, model.ItemCreate{
		Name:       "Sneaker",
		CategoryID: shoes.ID,
		LocationID: ptr(int64(7)),
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestUpdateItemPartialLeavesOtherFields(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	shoes := mustCategory(t, database, "Shoes")
	rack := mustLocation(t, database, "Shoe Rack")

	item := mustItem(t, database, model.ItemCreate{
		Name:       "Sneaker",
		CategoryID: shoes.ID,
		LocationID: &rack.ID,
		Color:      ptr("white"),
		Fit:        ptr("regular"),
		Rating:     ptr(3),
		Tags:       []string{"Summer"},
	})

	updated, err := UpdateItem(ctx, database, item.ID, model.ItemUpdate{Color: model.Some("black")})
	require.NoError(t, err)

	assert.Equal(t, "black", *updated.Color)
	assert.Equal(t, item.Name, updated.Name)
	assert.Equal(t, item.CategoryID, updated.CategoryID)
	assert.Equal(t, item.LocationID, updated.LocationID)
	assert.Equal(t, item.Fit, updated.Fit)
	assert.Equal(t, item.Rating, updated.Rating)
	assert.Equal(t, item.CreatedAt, updated.CreatedAt)
	assert.Equal(t, item.Tags, updated.Tags)
}

func TestUpdateItemEmptyPayloadIsNoop(t *testing.T) {
	database := db.NewTestDB(t)
	shoes := mustCategory(t, database, "Shoes")
	item := mustItem(t, database, model.ItemCreate{Name: "Sneaker", CategoryID: shoes.ID, Tags: []string{"a"}})

	updated, err := UpdateItem(context.Background(), database, item.ID, model.ItemUpdate{})
	require.NoError(t, err)
	assert.Equal(t, item, updated)
}

func TestUpdateItemNullClearsNullableField(t *testing.T) {
	database := db.NewTestDB(t)
	shoes := mustCategory(t, database, "Shoes")
	rack := mustLocation(t, database, "Shoe Rack")
	item := mustItem(t, database, model.ItemCreate{
		Name: "Sneaker", CategoryID: shoes.ID, LocationID: &rack.ID, Notes: ptr("resole"),
	})

	updated, err := UpdateItem(context.Background(), database, item.ID, model.ItemUpdate{
		LocationID: model.Null[int64](),
		Notes:      model.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.LocationID)
	assert.Nil(t, updated.Notes)
}

func TestUpdateItemReplacesTags(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	shoes := mustCategory(t, database, "Shoes")
	item := mustItem(t, database, model.ItemCreate{
		Name: "Sneaker", CategoryID: shoes.ID, Tags: []string{"Summer", "Sport"},
	})

	updated, err := UpdateItem(ctx, database, item.ID, model.ItemUpdate{
		Tags: model.Some([]string{"Winter", "Sport"}),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Winter", "Sport"}, tagNames(updated.Tags))
}

func TestUpdateItemEmptyTagsKeepsTagRows(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	shoes := mustCategory(t, database, "Shoes")
	item := mustItem(t, database, model.ItemCreate{
		Name: "Sneaker", CategoryID: shoes.ID, Tags: []string{"Summer"},
	})
	summerID := item.Tags[0].ID

	updated, err := UpdateItem(ctx, database, item.ID, model.ItemUpdate{Tags: model.Some([]string{})})
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
	assert.NotNil(t, updated.Tags)
	assert.Equal(t, 0, countRows(t, database, "item_tags"))

	// The tag row survives and is reused by the next item.
	other := mustItem(t, database, model.ItemCreate{Name: "Sandal", CategoryID: shoes.ID, Tags: []string{"Summer"}})
	require.Len(t, other.Tags, 1)
	assert.Equal(t, summerID, other.Tags[0].ID)
}

func TestUpdateItemMissing(t *testing.T) {
	database := db.NewTestDB(t)

	item, err := UpdateItem(context.Background(), database, 5, model.ItemUpdate{Name: model.Some("x")})
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestUpdateItemUnknownCategoryRollsBack(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	shoes := mustCategory(t, database, "Shoes")
	item := mustItem(t, database, model.ItemCreate{Name: "Sneaker", CategoryID: shoes.ID, Tags: []string{"Summer"}})

	_, err := UpdateItem(ctx, database, item.ID, model.ItemUpdate{
		CategoryID: model.Some(int64(404)),
		Tags:       model.Some([]string{}),
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)

	got, err := GetItem(ctx, database, item.ID)
	require.NoError(t, err)
	assert.Equal(t, shoes.ID, got.CategoryID)
	assert.Equal(t, []string{"Summer"}, tagNames(got.Tags))
}

func TestDeleteItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	shoes := mustCategory(t, database, "Shoes")
	item := mustItem(t, database, model.ItemCreate{Name: "Sneaker", CategoryID: shoes.ID, Tags: []string{"Summer"}})

	deleted, err := DeleteItem(ctx, database, item.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, item.ID, deleted.ID)

	got, err := GetItem(ctx, database, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Equal(t, 0, countRows(t, database, "item_tags"))
	assert.Equal(t, 1, countRows(t, database, "tags"), "tags outlive their items")

	again, err := DeleteItem(ctx, database, item.ID)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestListItemsIncludesTags(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	shoes := mustCategory(t, database, "Shoes")

	mustItem(t, database, model.ItemCreate{Name: "Sneaker", CategoryID: shoes.ID, Tags: []string{"Summer"}})
	mustItem(t, database, model.ItemCreate{Name: "Boot", CategoryID: shoes.ID})

	items, err := ListItems(ctx, database)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Boot", items[0].Name)
	assert.NotNil(t, items[0].Tags)
	assert.Empty(t, items[0].Tags)
	assert.Equal(t, []string{"Summer"}, tagNames(items[1].Tags))
}
