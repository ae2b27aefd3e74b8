package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/exercises/collections"
	"github.com/marcodamonte/exercises/days"
	"github.com/marcodamonte/exercises/future"
	"github.com/marcodamonte/exercises/products"
	"github.com/marcodamonte/exercises/ratings"
	"github.com/marcodamonte/exercises/square"
	"github.com/marcodamonte/exercises/strcase"
	"github.com/marcodamonte/exercises/values"
	"github.com/marcodamonte/exercises/vehicles"
)

func demoCmd(a *app) *cobra.Command {
	var delay time.Duration

	c := &cobra.Command{
		Use:   "demo",
		Short: "Run every exercise with built-in sample data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			section(out, "strcase — FormatString")
			fmt.Fprintln(out, " ", strcase.Format("hello, gopher"))
			fmt.Fprintln(out, " ", strcase.FormatString("HELLO, GOPHER", false))

			section(out, "ratings — FilterByRating")
			for _, it := range ratings.FilterByRating(sampleItems) {
				fmt.Fprintf(out, "  %s (%s)\n", it.Title, formatNumber(it.Rating))
			}

			section(out, "collections — Concat[T]")
			fmt.Fprintln(out, " ", collections.Concat([]int{1, 2}, []int{3}, []int{4, 5}))

			section(out, "vehicles — Vehicle embedded in Car")
			car := vehicles.NewCar("Toyota", 2020, "Corolla", vehicles.WithOutput(out))
			car.PrintInfo()
			car.PrintModel()

			section(out, "values — Text | Number")
			for _, v := range []values.Value{values.Text("abcd"), values.Number(5)} {
				fmt.Fprintf(out, "  %#v → %s\n", v, formatNumber(values.Process(v)))
			}

			section(out, "products — MostExpensive")
			if p, ok := products.MostExpensive(sampleProducts); ok {
				fmt.Fprintf(out, "  %s (%s)\n", p.Name, formatNumber(p.Price))
			}
			if _, ok := products.MostExpensive(nil); !ok {
				fmt.Fprintln(out, "  empty input → no product")
			}

			section(out, "days — GetDayType")
			for _, d := range []days.Day{days.Wednesday, days.Saturday} {
				fmt.Fprintf(out, "  %s → %s\n", d, days.GetDayType(d))
			}

			section(out, "square — Async")
			sq, shutdown := a.newSquarer(delay)
			defer shutdown()

			got, err := future.AwaitAll(cmd.Context(), sq.Async(4), sq.Async(1.5))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  4^2 = %s, 1.5^2 = %s (after %s)\n",
				formatNumber(got[0]), formatNumber(got[1]), sq.Delay())

			_, err = sq.Async(-1).Await(cmd.Context())
			if !errors.Is(err, square.ErrInvalidArgument) {
				return fmt.Errorf("expected invalid argument, got %v", err)
			}
			fmt.Fprintln(out, " ", err)
			return nil
		},
	}

	c.Flags().DurationVar(&delay, "delay", 0, "override the configured squaring delay")
	return c
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

var sampleItems = []ratings.RatedItem{
	{Title: "The Go Programming Language", Rating: 4.8},
	{Title: "Untitled Draft", Rating: 2.1},
	{Title: "Concurrency in Go", Rating: 4},
}

var sampleProducts = []products.Product{
	{Name: "Keyboard", Price: 80},
	{Name: "Monitor", Price: 300},
	{Name: "Chair", Price: 300},
}
