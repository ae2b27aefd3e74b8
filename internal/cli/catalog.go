package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/exercises/config"
	"github.com/marcodamonte/exercises/products"
	"github.com/marcodamonte/exercises/ratings"
)

func ratingsCmd(a *app) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "ratings",
		Short: fmt.Sprintf("List dataset items rated %d or higher", ratings.MinRating),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := config.LoadDataset(file)
			if err != nil {
				return err
			}

			kept := ratings.FilterByRating(ds.Items)
			a.log.Debug("filtered items", zap.Int("in", len(ds.Items)), zap.Int("kept", len(kept)))

			out := cmd.OutOrStdout()
			for _, it := range kept {
				fmt.Fprintf(out, "%s (%s)\n", it.Title, formatNumber(it.Rating))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "dataset YAML file (required)")
	_ = c.MarkFlagRequired("file")
	return c
}

func mostExpensiveCmd(a *app) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "most-expensive",
		Short: "Show the most expensive product of a dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := config.LoadDataset(file)
			if err != nil {
				return err
			}

			p, ok := products.MostExpensive(ds.Products)
			if !ok {
				a.log.Debug("dataset has no products", zap.String("file", file))
				fmt.Fprintln(cmd.OutOrStdout(), "no products")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", p.Name, formatNumber(p.Price))
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "dataset YAML file (required)")
	_ = c.MarkFlagRequired("file")
	return c
}
