package cmd

import (
	"fmt"

	"github.com/conneroisu/adventofcode/internal/registry"
	"github.com/conneroisu/adventofcode/internal/version"
	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for aoc including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version and target platform
- Number of registered solutions

Examples:
  aoc version               # Show version info
  aoc version --short       # Version number only
  aoc version --format json # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runVersionCommand,
}

var versionFlags *StandardFlags

func init() {
	rootCmd.AddCommand(versionCmd)

	versionFlags = AddStandardFlags(versionCmd, "output")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if versionShort {
		fmt.Fprintln(out, version.GetShortVersion())
		return nil
	}

	info := version.GetBuildInfo()
	info.Solutions = registry.Default.Count()

	switch versionFlags.OutputFormat("text") {
	case "json":
		return renderJSON(out, info)
	case "yaml":
		return renderYAML(out, info)
	default:
		fmt.Fprintln(out, info.String())
		return nil
	}
}
