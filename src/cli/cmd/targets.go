package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/portforge/portforge/src/output"
	"github.com/portforge/portforge/src/toolchain"
)

var (
	ltPlatforms bool
	ltCompilers bool
)

var targetsCmd = &cobra.Command{
	Use:   "list-targets",
	Short: "List supported platforms and compilers",
	RunE:  runListTargets,
}

func init() {
	targetsCmd.Flags().BoolVarP(&ltPlatforms, "platforms", "p", false, "list supported platforms")
	targetsCmd.Flags().BoolVarP(&ltCompilers, "compilers", "c", false, "list supported compilers")

	rootCmd.AddCommand(targetsCmd)
}

func runListTargets(cmd *cobra.Command, args []string) error {
	color := useColor()
	w := os.Stdout

	// No selection flag means show both.
	all := !ltPlatforms && !ltCompilers

	if ltPlatforms || all {
		sec := output.NewSection(w, "Supported Platforms", 0, color)
		output.PlatformTable(sec, toolchain.AllPlatforms())
		sec.Close()
	}

	if ltCompilers || all {
		sec := output.NewSection(w, "Supported Compilers", 0, color)
		output.ToolchainTable(sec, toolchain.All())
		sec.Close()
	}

	return nil
}
