package config

type YAMLDataset struct {
	Items    []YAMLRatedItem `yaml:"items"`
	Products []YAMLProduct   `yaml:"products"`
}

type YAMLRatedItem struct {
	Title  string  `yaml:"title"`
	Rating float64 `yaml:"rating"`
}

type YAMLProduct struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}
