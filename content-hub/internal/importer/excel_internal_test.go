package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestMapColumns(t *testing.T) {
	t.Parallel()

	cols, err := mapColumns([]string{" Name ", "Price", "Listing Type", "Beds", "", "Price"})
	require.NoError(t, err)
	assert.Equal(t, columnMap{"title": 0, "price": 1, "listing_type": 2, "bedrooms": 3}, cols)

	_, err = mapColumns([]string{"title", "location"})
	require.ErrorIs(t, err, ErrMissingColumns)
	assert.Contains(t, err.Error(), "price")
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, splitList("a.jpg, b.jpg;\nc.jpg, "))
}

func TestParseRow(t *testing.T) {
	t.Parallel()

	cols := columnMap{"title": 0, "price": 1, "status": 2, "bedrooms": 3, "sources": 4, "published": 5}

	tests := []struct {
		name    string
		cells   []string
		wantErr string
	}{
		{"valid", []string{"Villa", "₦1,250,000", "Sold", "4", "mansaluxe-realty, group", "yes"}, ""},
		{"missing title", []string{"", "100"}, "title is required"},
		{"missing price", []string{"Villa"}, "price is required"},
		{"price without digits", []string{"Villa", "call us"}, "price \"call us\" has no digits"},
		{"bad status", []string{"Villa", "100", "leased"}, "status must be one of: available, sold, pending"},
		{"bad bedrooms", []string{"Villa", "100", "", "four"}, "bedrooms must be a whole number"},
		{"bad site", []string{"Villa", "100", "", "", "nowhere"}, "invalid site"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			draft, msg := parseRow(cols, tt.cells)
			if tt.wantErr != "" {
				assert.Contains(t, msg, tt.wantErr)
				return
			}
			require.Empty(t, msg)
			assert.Equal(t, "sold", *draft.Status)
			assert.Equal(t, 4, *draft.Bedrooms)
			assert.Len(t, draft.Sources, 2)
			assert.True(t, *draft.Published)
		})
	}
}

func TestOpenExcelRows(t *testing.T) {
	t.Parallel()

	t.Run("invalid reader", func(t *testing.T) {
		t.Parallel()
		rows, err := openExcelRows(bytes.NewReader([]byte("not excel")))
		require.Error(t, err)
		assert.Nil(t, rows)
	})

	t.Run("empty sheet", func(t *testing.T) {
		t.Parallel()
		f := excelize.NewFile()
		var buf bytes.Buffer
		require.NoError(t, f.Write(&buf))

		rows, err := openExcelRows(&buf)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}
