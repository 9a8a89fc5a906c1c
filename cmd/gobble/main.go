package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

const version = "0.1.0"

// errReported marks failures whose diagnostic was already printed.
var errReported = errors.New("input has errors")

// globals holds the settings shared by all commands: the config file
// merged with the persistent flags.
type globals struct {
	configPath string
	verbose    int
	color      string
	cfg        Config
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:           "gobble",
		Short:         "Parse, check and convert JSON and arithmetic from the command line",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g.configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("color") {
				cfg.Color = g.color
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbosity = g.verbose
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			g.cfg = cfg
			commonlog.Configure(cfg.Verbosity, nil)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", defaultConfigFile, "config file (TOML or YAML)")
	rootCmd.PersistentFlags().CountVarP(&g.verbose, "verbose", "v", "log more; repeat for more detail")
	rootCmd.PersistentFlags().StringVar(&g.color, "color", "auto", "colour diagnostics (auto, always, never)")

	rootCmd.AddCommand(newJSONCmd(g))
	rootCmd.AddCommand(newCalcCmd(g))
	rootCmd.AddCommand(newWatchCmd(g))
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "gobble: %s\n", err)
		}
		os.Exit(1)
	}
}
