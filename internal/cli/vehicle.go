package cli

import (
	"github.com/spf13/cobra"

	"github.com/marcodamonte/exercises/vehicles"
)

func vehicleCmd() *cobra.Command {
	var (
		vehicleMake string
		year        int
		model       string
	)

	c := &cobra.Command{
		Use:   "vehicle",
		Short: "Print vehicle info, and the model when one is given",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := vehicles.WithOutput(cmd.OutOrStdout())

			if model == "" {
				vehicles.NewVehicle(vehicleMake, year, out).PrintInfo()
				return nil
			}

			car := vehicles.NewCar(vehicleMake, year, model, out)
			car.PrintInfo()
			car.PrintModel()
			return nil
		},
	}

	c.Flags().StringVar(&vehicleMake, "make", "", "vehicle make (required)")
	c.Flags().IntVar(&year, "year", 0, "model year (required)")
	c.Flags().StringVar(&model, "model", "", "car model")
	_ = c.MarkFlagRequired("make")
	_ = c.MarkFlagRequired("year")
	return c
}
