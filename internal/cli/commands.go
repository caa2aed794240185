package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/gearbox/internal/version"
	"github.com/arthur-debert/gearbox/pkg/config"
	"github.com/arthur-debert/gearbox/pkg/core"
	"github.com/arthur-debert/gearbox/pkg/logging"
	"github.com/arthur-debert/gearbox/pkg/ui"
)

// app carries state from the root command's pre-run into subcommands
type app struct {
	verbosity  int
	configPath string
	format     string
	strict     bool

	runtime *core.Runtime
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gearbox",
		Short: "Inspect the transition events registered with gearbox",
		Long: `gearbox materializes every transition event linked into the binary
into a dispatch table and lets you list the registered types and see which
exit, effect and entry sub-events they produce.`,
		Version:           version.Version,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/gearbox/gearbox.toml)")
	flags.StringVarP(&a.format, "format", "f", "", "Output format: auto, term, text, json, yaml, toml")
	flags.BoolVar(&a.strict, "strict", false, "Fail when a transition type is registered more than once")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newDispatchCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// setup loads configuration, configures logging and materializes the registry
func (a *app) setup(cmd *cobra.Command, args []string) error {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		overrides["logging.verbosity"] = a.verbosity
	}
	if flags.Changed("format") {
		overrides["output.format"] = a.format
	}
	if flags.Changed("strict") {
		overrides["registry.strict"] = a.strict
	}

	// Config loading and materialization log too; honor -v for them
	logging.SetupLogger(a.verbosity)

	rt, err := core.Initialize(config.LoadOptions{Path: a.configPath, Overrides: overrides})
	if err != nil {
		return err
	}
	a.runtime = rt

	if rt.Config.Logging.Verbosity != a.verbosity {
		logging.SetupLogger(rt.Config.Logging.Verbosity)
	}
	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	return ui.NewRenderer(a.runtime.Config.OutputFormat(), cmd.OutOrStdout())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Skip config loading and registry materialization
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gearbox version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered transition events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(ui.NewTransitionList(a.runtime.Table))
		},
	}
}

func newDispatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch <type>",
		Short: "Show the sub-events a transition event produces",
		Long: `Dispatch the zero value of a registered transition event and print the
exit, effect and entry sub-events it produces. <type> is either the fully
qualified type name shown by "gearbox list", pkg.Type, or a bare type name
when it is unambiguous.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, phases, err := a.runtime.DispatchZero(args[0])
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(ui.NewDispatchView(entry, phases))
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Dump(a.runtime.Config)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
