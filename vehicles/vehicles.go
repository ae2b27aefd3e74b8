// Package vehicles models a Vehicle and a Car built on top of it.
//
// Car embeds Vehicle rather than inheriting from it: every Vehicle method
// is promoted onto Car, and Car adds its own model information.
package vehicles

import (
	"fmt"
	"io"
	"os"
)

// InfoPrinter is implemented by anything that can print its vehicle info.
type InfoPrinter interface {
	PrintInfo()
}

// ModelPrinter is implemented by vehicles that know their model.
type ModelPrinter interface {
	PrintModel()
}

// Describer composes InfoPrinter and ModelPrinter. *Car satisfies it.
type Describer interface {
	InfoPrinter
	ModelPrinter
}

// Option configures a Vehicle.
type Option func(*Vehicle)

// WithOutput sets the writer diagnostic lines are printed to.
// The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(v *Vehicle) {
		if w != nil {
			v.out = w
		}
	}
}

// Vehicle has a fixed make and a year that may change.
type Vehicle struct {
	make string
	Year int

	out io.Writer
}

// NewVehicle creates a Vehicle.
func NewVehicle(vehicleMake string, year int, opts ...Option) *Vehicle {
	v := &Vehicle{make: vehicleMake, Year: year, out: os.Stdout}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Make returns the vehicle's make.
func (v *Vehicle) Make() string { return v.make }

// Info formats the make and year as "Make: <make>, Year: <year>".
func (v *Vehicle) Info() string {
	return fmt.Sprintf("Make: %s, Year: %d", v.make, v.Year)
}

// PrintInfo writes Info as a line to the vehicle's output.
func (v *Vehicle) PrintInfo() {
	fmt.Fprintln(v.out, v.Info())
}

// Car is a Vehicle with a model.
type Car struct {
	Vehicle
	model string
}

// NewCar creates a Car. The make, year and options are applied through
// NewVehicle.
func NewCar(vehicleMake string, year int, model string, opts ...Option) *Car {
	return &Car{
		Vehicle: *NewVehicle(vehicleMake, year, opts...),
		model:   model,
	}
}

// Model returns the car's model.
func (c *Car) Model() string { return c.model }

// ModelInfo formats the model as "Model: <model>".
func (c *Car) ModelInfo() string {
	return "Model: " + c.model
}

// PrintModel writes ModelInfo as a line to the car's output.
func (c *Car) PrintModel() {
	fmt.Fprintln(c.out, c.ModelInfo())
}
