package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/portforge/portforge/src/config"
	"github.com/portforge/portforge/src/output"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "portforge",
	Short: "Multi-platform port build orchestrator",
	Long:  "portforge — builds a project for multiple target platforms from one declarative spec.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .portforge.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// useColor resolves the color preference from config and environment.
func useColor() bool {
	if cfg != nil {
		switch cfg.Color {
		case "always":
			return true
		case "never":
			return false
		}
	}
	return output.UseColor()
}
