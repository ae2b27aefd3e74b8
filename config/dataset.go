package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marcodamonte/exercises/products"
	"github.com/marcodamonte/exercises/ratings"
)

// ErrInvalidDataset classifies dataset validation failures.
var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset is sample input for the rating filter and the product selector.
type Dataset struct {
	Items    []ratings.RatedItem
	Products []products.Product
}

// LoadDataset reads a YAML dataset file.
func LoadDataset(path string) (Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, &LoadError{Op: "config.load_dataset", Path: path, Err: err}
	}

	var dto YAMLDataset
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Dataset{}, &LoadError{Op: "config.load_dataset", Path: path, Err: err}
	}

	ds, err := MapDataset(dto)
	if err != nil {
		return Dataset{}, &LoadError{Op: "config.load_dataset", Path: path, Err: err}
	}
	return ds, nil
}
