package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ytget/adaptive-nav/internal/model"
	"github.com/ytget/adaptive-nav/internal/navigation"
	"github.com/ytget/adaptive-nav/internal/responsive"
)

// classifyCmd prints the layout chosen for each width
var classifyCmd = &cobra.Command{
	Use:   "classify WIDTH...",
	Short: "Show device class, grid columns and item extent for widths",
	Example: `  adaptive-nav classify 375 768 1440
  adaptive-nav classify 599.5 600
  adaptive-nav classify -- -1 800`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

// routesCmd lists the navigation catalog
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List navigation destinations and validate the catalog",
	Args:  cobra.NoArgs,
	RunE:  runRoutes,
}

// classifyFlagError reports a negative width that was parsed as a flag
// ("-1") as an invalid width instead of an unknown flag.
func classifyFlagError(cmd *cobra.Command, err error) error {
	msg := err.Error()
	i := strings.LastIndex(msg, " in ")
	if i < 0 {
		return err
	}
	arg := msg[i+len(" in "):]
	if _, perr := strconv.ParseFloat(arg, 32); perr != nil {
		return err
	}
	return fmt.Errorf("width %s is negative: %w", arg, model.ErrInvalidArgument)
}

func runClassify(cmd *cobra.Command, args []string) error {
	t := table.New().Headers("WIDTH", "DEVICE", "COLUMNS", "EXTENT")

	var errs []error
	for _, arg := range args {
		width, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("width %q is not a number: %w", arg, model.ErrInvalidArgument))
			continue
		}
		profile, err := responsive.Classify(float32(width))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		t.Row(
			strconv.FormatFloat(width, 'f', -1, 32),
			profile.Device.String(),
			strconv.Itoa(profile.Columns),
			strconv.FormatFloat(float64(profile.MaxExtent), 'f', -1, 32),
		)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return errors.Join(errs...)
}

func runRoutes(cmd *cobra.Command, args []string) error {
	catalog := navigation.NewDefaultCatalog()

	t := table.New().Headers("#", "ID", "TITLE", "ROUTE", "ICON")
	for i, entry := range catalog.Items() {
		t.Row(strconv.Itoa(i+1), entry.ID, entry.Title, entry.Route, string(entry.Icon))
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.Render())

	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("catalog is invalid: %w", err)
	}
	if err := cfg.Validate(catalog); err != nil {
		return fmt.Errorf("configuration does not match the catalog: %w", err)
	}
	fmt.Fprintf(out, "%d destinations, default %s\n", catalog.Len(), catalog.DefaultEntry().Route)
	return nil
}
