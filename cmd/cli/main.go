package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"launchdash/internal"
	"launchdash/internal/callbacks"
	"launchdash/internal/config"
	"launchdash/internal/container"
	"launchdash/internal/controls"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	dataFile    string
	sheet       string
	databaseURL string
	table       string
	verbose     bool
}

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "launchdash-cli",
		Short: "Compute launch dashboard charts from the command line",
		Long: `Compute the launch dashboard charts without starting the web server.

The launch table is read the same way the server reads it: from DATABASE_URL
when set, otherwise from LAUNCH_DATA_FILE. Flags override the environment.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.dataFile, "data", "", "Launch records file (.csv or .xlsx)")
	rootCmd.PersistentFlags().StringVar(&flags.sheet, "sheet", "", "Worksheet name for .xlsx files")
	rootCmd.PersistentFlags().StringVar(&flags.databaseURL, "database-url", "", "Postgres connection URL")
	rootCmd.PersistentFlags().StringVar(&flags.table, "table", "", "Postgres table holding launch records")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log loading progress to stderr")

	rootCmd.AddCommand(
		newPieCmd(&flags),
		newScatterCmd(&flags),
		newControlsCmd(&flags),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPieCmd(flags *globalFlags) *cobra.Command {
	var site string

	cmd := &cobra.Command{
		Use:   "pie",
		Short: "Print the success pie chart for a site selection",
		Long: `Print the success pie chart as JSON.

Example: launchdash-cli pie --site "KSC LC-39A" --data spacex_launch_dash.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer c.Shutdown(cmd.Context())

			state, err := parseState(c.Registry, site, "", "")
			if err != nil {
				return err
			}
			spec, err := c.Dispatcher.Render(cmd.Context(), callbacks.SuccessPieChart, state)
			if err != nil {
				return err
			}
			return printJSON(spec)
		},
	}

	cmd.Flags().StringVar(&site, "site", "", "Launch site, or \"All Sites\" (default)")
	return cmd
}

func newScatterCmd(flags *globalFlags) *cobra.Command {
	var site, low, high string

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Print the payload/outcome scatter chart",
		Long: `Print the payload/outcome scatter chart as JSON. Omitted payload bounds
default to the lightest and heaviest payload in the table.

Example: launchdash-cli scatter --site "All Sites" --low 2000 --high 8000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer c.Shutdown(cmd.Context())

			state, err := parseState(c.Registry, site, low, high)
			if err != nil {
				return err
			}
			spec, err := c.Dispatcher.Render(cmd.Context(), callbacks.SuccessPayloadScatterChart, state)
			if err != nil {
				return err
			}
			return printJSON(spec)
		},
	}

	cmd.Flags().StringVar(&site, "site", "", "Launch site, or \"All Sites\" (default)")
	cmd.Flags().StringVar(&low, "low", "", "Lower payload bound in kg, inclusive")
	cmd.Flags().StringVar(&high, "high", "", "Upper payload bound in kg, inclusive")
	return cmd
}

func newControlsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "controls",
		Short: "Print the dashboard controls and their defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer c.Shutdown(cmd.Context())

			return printJSON(map[string]interface{}{
				"controls": c.Registry,
				"defaults": c.Registry.Defaults(),
				"outputs":  c.Dispatcher.Outputs(),
			})
		},
	}
}

func loadContainer(ctx context.Context, flags *globalFlags) (*container.Container, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if flags.dataFile != "" {
		cfg.Data.File = flags.dataFile
		cfg.Data.DatabaseURL = ""
	}
	if flags.sheet != "" {
		cfg.Data.Sheet = flags.sheet
	}
	if flags.databaseURL != "" {
		cfg.Data.DatabaseURL = flags.databaseURL
	}
	if flags.table != "" {
		cfg.Data.Table = flags.table
	}

	logger := internal.NewNopLogger()
	if flags.verbose {
		if logger, err = internal.NewLogger(internal.LogLevelDebug, "development"); err != nil {
			return nil, err
		}
	}

	c, err := container.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := c.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to load launch records: %w", err)
	}
	return c, nil
}

func parseState(registry *controls.Registry, site, low, high string) (controls.State, error) {
	selection, err := registry.ParseSite(site)
	if err != nil {
		return controls.State{}, err
	}
	payload, err := registry.ParsePayloadText(low, high)
	if err != nil {
		return controls.State{}, err
	}
	return controls.State{Site: selection, Payload: payload}, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
