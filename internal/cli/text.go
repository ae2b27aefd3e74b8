package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/exercises/collections"
	"github.com/marcodamonte/exercises/days"
	"github.com/marcodamonte/exercises/strcase"
	"github.com/marcodamonte/exercises/values"
)

func formatCmd() *cobra.Command {
	var lower bool

	c := &cobra.Command{
		Use:   "format <text>",
		Short: "Upper-case text (or lower-case it with --lower)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strcase.FormatString(args[0], !lower))
			return nil
		},
	}

	c.Flags().BoolVar(&lower, "lower", false, "lower-case instead of upper-case")
	return c
}

func concatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concat <list>...",
		Short: "Concatenate comma-separated lists",
		Example: `  exercises concat 1,2 3 4,5
  1,2,3,4,5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists := collections.Map(args, splitList)
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(collections.Concat(lists...), ","))
			return nil
		},
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func processCmd() *cobra.Command {
	var asText bool

	c := &cobra.Command{
		Use:   "process <value>",
		Short: "Double a number, or measure the length of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(values.Process(parseValue(args[0], asText))))
			return nil
		},
	}

	c.Flags().BoolVar(&asText, "text", false, "treat the argument as text even if it looks numeric")
	return c
}

func parseValue(s string, asText bool) values.Value {
	if !asText {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return values.Number(n)
		}
	}
	return values.Text(s)
}

func dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day <name>",
		Short: "Tell whether a day is a weekday or on the weekend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := days.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), days.GetDayType(d))
			return nil
		},
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
