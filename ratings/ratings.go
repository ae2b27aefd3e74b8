// Package ratings filters rated items by score.
package ratings

import "github.com/marcodamonte/exercises/collections"

// MinRating is the inclusive threshold an item must reach to be kept.
const MinRating = 4

// RatedItem is a title with its rating.
type RatedItem struct {
	Title  string
	Rating float64
}

// FilterByRating returns the items rated MinRating or higher, in their
// original order. items is not modified.
func FilterByRating(items []RatedItem) []RatedItem {
	return collections.Filter(items, func(it RatedItem) bool {
		return it.Rating >= MinRating
	})
}
