package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/centreconnect/centreconnect/internal/interfaces/cli/env"
	"github.com/centreconnect/centreconnect/internal/shared/biztime"
	"github.com/centreconnect/centreconnect/internal/shared/classnames"
	"github.com/centreconnect/centreconnect/internal/shared/errors"
	"github.com/centreconnect/centreconnect/internal/shared/format"
	"github.com/centreconnect/centreconnect/internal/shared/logger"
)

type options struct {
	global   *env.Options
	locale   string
	currency string
}

func NewCommand(global *env.Options) *cobra.Command {
	o := &options{global: global}

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format values for display",
		Long:  `Format dates, currency amounts, ages and slugs using the configured locale conventions.`,
	}

	cmd.PersistentFlags().StringVar(&o.locale, "locale", "", "Locale tag override (e.g. en-ZA)")
	cmd.PersistentFlags().StringVar(&o.currency, "currency", "", "ISO 4217 currency override (e.g. ZAR)")

	cmd.AddCommand(
		newDateCommand(o),
		newCurrencyCommand(o),
		newAgeCommand(o),
		newSlugCommand(o),
		newClassesCommand(),
		newLocalesCommand(),
	)

	return cmd
}

func (o *options) formatter(extra ...format.Option) (*format.Formatter, error) {
	cfg, err := env.Init(o.global)
	if err != nil {
		return nil, err
	}

	opts, err := env.FormatterOptions(cfg)
	if err != nil {
		return nil, err
	}
	if o.locale != "" {
		opts = append(opts, format.WithLocale(o.locale))
	}
	if o.currency != "" {
		opts = append(opts, format.WithCurrency(o.currency))
	}
	opts = append(opts, extra...)

	f, err := format.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build formatter: %w", err)
	}
	return f, nil
}

func newDateCommand(o *options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "date <value>",
		Short: "Render a date in long form",
		Long:  `Render an ISO date or timestamp as a long-form date, e.g. "1 March 2024".`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.formatter()
			if err != nil {
				return err
			}

			if strict {
				t, err := biztime.ParseDateIn(args[0], f.Location())
				if err != nil {
					return errors.NewBadRequestError("invalid date", err.Error())
				}
				fmt.Fprintln(cmd.OutOrStdout(), f.FormatDate(t))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), f.FormatDateString(args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unparseable input instead of printing \"Invalid Date\"")

	return cmd
}

func newCurrencyCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "currency <amount>",
		Short: "Render an amount in the configured currency",
		Long:  `Render a decimal amount as currency, e.g. 1234.5 becomes "R1,234.50". Use "--" before negative amounts.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return errors.NewBadRequestError("invalid amount", args[0])
			}

			f, err := o.formatter()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), f.FormatCurrency(amount))
			return nil
		},
	}
}

func newAgeCommand(o *options) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "age <date-of-birth>",
		Short: "Compute an age in whole years",
		Long:  `Compute the age in completed years of a date of birth, as of today or as of the --as-of date.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.formatter()
			if err != nil {
				return err
			}

			if asOf == "" {
				age, err := f.CalculateAgeString(args[0])
				if err != nil {
					return err
				}
				logger.Debug("age calculated",
					"date_of_birth", args[0],
					"as_of", biztime.FormatInBizTimezone(biztime.Now(), time.DateOnly),
					"age", age)
				fmt.Fprintln(cmd.OutOrStdout(), age)
				return nil
			}

			ref, err := biztime.ParseDateIn(asOf, f.Location())
			if err != nil {
				return errors.NewBadRequestError("invalid --as-of date", err.Error())
			}
			dob, err := biztime.ParseDateIn(args[0], f.Location())
			if err != nil {
				return errors.NewValidationError("invalid date of birth", err.Error())
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.CalculateAge(dob, ref))
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Reference date (YYYY-MM-DD); defaults to today")

	return cmd
}

func newSlugCommand(o *options) *cobra.Command {
	var trimEdges bool

	cmd := &cobra.Command{
		Use:   "slug <text...>",
		Short: "Generate a URL slug",
		Long:  `Generate a lowercase, hyphen separated slug from the arguments joined by single spaces.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []format.Option
			if cmd.Flags().Changed("trim-edges") {
				extra = append(extra, format.WithSlugTrimEdges(trimEdges))
			}

			f, err := o.formatter(extra...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), f.GenerateSlug(strings.Join(args, " ")))
			return nil
		},
	}

	cmd.Flags().BoolVar(&trimEdges, "trim-edges", false, "Drop leading and trailing hyphens (overrides slug.trim_edges)")

	return cmd
}

func newClassesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classes <class...>",
		Short: "Merge Tailwind class lists",
		Long:  `Join class lists and drop utilities overridden by later ones, e.g. "px-2 py-1" "p-4" becomes "p-4".`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), classnames.Merge(args))
			return nil
		},
	}
}

func newLocalesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the built-in locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tag := range format.SupportedLocales() {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}
