// Package products selects products by price.
package products

import "github.com/marcodamonte/exercises/collections"

// Product is a named item with a price.
type Product struct {
	Name  string
	Price float64
}

// MostExpensive returns the product with the highest price. When several
// share that price the first one wins. ok is false for an empty slice.
func MostExpensive(ps []Product) (Product, bool) {
	return collections.MaxBy(ps, func(p Product) float64 { return p.Price })
}
