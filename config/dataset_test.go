package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/exercises/products"
	"github.com/marcodamonte/exercises/ratings"
)

func TestLoadDataset(t *testing.T) {
	path := writeFile(t, `
items:
  - title: Dune
    rating: 4.5
  - title: Eragon
    rating: 2
products:
  - name: Laptop
    price: 1200
  - name: Mouse
    price: 25.5
`)

	ds, err := LoadDataset(path)
	require.NoError(t, err)

	assert.Equal(t, []ratings.RatedItem{
		{Title: "Dune", Rating: 4.5},
		{Title: "Eragon", Rating: 2},
	}, ds.Items)
	assert.Equal(t, []products.Product{
		{Name: "Laptop", Price: 1200},
		{Name: "Mouse", Price: 25.5},
	}, ds.Products)
}

func TestLoadDatasetEmptyFile(t *testing.T) {
	ds, err := LoadDataset(writeFile(t, ""))
	require.NoError(t, err)
	assert.Empty(t, ds.Items)
	assert.Empty(t, ds.Products)
}

func TestLoadDatasetInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"missing title", "items:\n  - rating: 5\n", "items[0].title"},
		{"blank product name", "products:\n  - name: Pen\n    price: 1\n  - name: '  '\n    price: 2\n", "products[1].name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			_, err := LoadDataset(path)
			require.ErrorIs(t, err, ErrInvalidDataset)
			assert.Contains(t, err.Error(), tt.field)
			assert.Contains(t, err.Error(), path)
		})
	}
}
