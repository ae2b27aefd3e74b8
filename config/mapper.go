package config

import (
	"fmt"
	"strings"

	"github.com/marcodamonte/exercises/products"
	"github.com/marcodamonte/exercises/ratings"
)

func MapDataset(dto YAMLDataset) (Dataset, error) {
	ds := Dataset{
		Items:    make([]ratings.RatedItem, 0, len(dto.Items)),
		Products: make([]products.Product, 0, len(dto.Products)),
	}

	for i, it := range dto.Items {
		if strings.TrimSpace(it.Title) == "" {
			return Dataset{}, invalidField(fmt.Sprintf("items[%d].title", i), "title is required")
		}
		ds.Items = append(ds.Items, ratings.RatedItem{Title: it.Title, Rating: it.Rating})
	}

	for i, p := range dto.Products {
		if strings.TrimSpace(p.Name) == "" {
			return Dataset{}, invalidField(fmt.Sprintf("products[%d].name", i), "name is required")
		}
		ds.Products = append(ds.Products, products.Product{Name: p.Name, Price: p.Price})
	}

	return ds, nil
}

func invalidField(field, msg string) error {
	return fmt.Errorf("%s: %s: %w", field, msg, ErrInvalidDataset)
}
