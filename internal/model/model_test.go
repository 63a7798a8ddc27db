package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesOmittedNullAndValue(t *testing.T) {
	var in ItemUpdate
	err := json.Unmarshal([]byte(`{"name": "Jeans", "location_id": null, "rating": 0}`), &in)
	require.NoError(t, err)

	assert.True(t, in.Name.Present())
	assert.Equal(t, "Jeans", in.Name.Value)

	assert.True(t, in.LocationID.Set)
	assert.True(t, in.LocationID.Null)
	assert.Nil(t, in.LocationID.Arg())

	// A falsy value is still a value.
	assert.True(t, in.Rating.Present())
	assert.Equal(t, 0, in.Rating.Value)

	assert.False(t, in.Color.Set)
	assert.False(t, in.Tags.Set)
}

func TestOptionalEmptyTagList(t *testing.T) {
	var in ItemUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"tags": []}`), &in))

	assert.True(t, in.Tags.Present())
	assert.NotNil(t, in.Tags.Value)
	assert.Empty(t, in.Tags.Value)
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var in ItemUpdate
	err := json.Unmarshal([]byte(`{"category_id": "shoes"}`), &in)
	assert.Error(t, err)
}

func TestItemCreateValidate(t *testing.T) {
	rating := func(r int) *int { return &r }

	tests := []struct {
		name    string
		in      ItemCreate
		wantErr bool
	}{
		{"valid", ItemCreate{Name: "Sneaker", CategoryID: 1}, false},
		{"missing name", ItemCreate{CategoryID: 1}, true},
		{"blank name", ItemCreate{Name: "  ", CategoryID: 1}, true},
		{"missing category", ItemCreate{Name: "Sneaker"}, true},
		{"rating low", ItemCreate{Name: "Sneaker", CategoryID: 1, Rating: rating(0)}, true},
		{"rating high", ItemCreate{Name: "Sneaker", CategoryID: 1, Rating: rating(6)}, true},
		{"rating ok", ItemCreate{Name: "Sneaker", CategoryID: 1, Rating: rating(5)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItemUpdateValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      ItemUpdate
		wantErr bool
	}{
		{"empty", ItemUpdate{}, false},
		{"null name", ItemUpdate{Name: Null[string]()}, true},
		{"blank name", ItemUpdate{Name: Some("")}, true},
		{"null category", ItemUpdate{CategoryID: Null[int64]()}, true},
		{"null location", ItemUpdate{LocationID: Null[int64]()}, false},
		{"null rating", ItemUpdate{Rating: Null[int]()}, false},
		{"bad rating", ItemUpdate{Rating: Some(9)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "err = %v", err)
		})
	}
}

func TestCategoryAndLocationValidate(t *testing.T) {
	assert.Error(t, (&CategoryCreate{}).Validate())
	assert.NoError(t, (&CategoryCreate{Name: "Shoes"}).Validate())
	assert.Error(t, (&CategoryUpdate{Name: Null[string]()}).Validate())
	assert.NoError(t, (&CategoryUpdate{Comments: Null[string]()}).Validate())

	assert.Error(t, (&LocationCreate{Name: ""}).Validate())
	assert.NoError(t, (&LocationCreate{Name: "Closet"}).Validate())
	assert.Error(t, (&LocationUpdate{Name: Some(" ")}).Validate())
	assert.NoError(t, (&LocationUpdate{Width: Some(1.5)}).Validate())
}
