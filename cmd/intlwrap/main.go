package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/intlwrap/intlwrap/cmd/intlwrap/commands"
	"github.com/intlwrap/intlwrap/logger"
)

var rootCmd = &cobra.Command{
	Use:   "intlwrap",
	Short: "intlwrap - Localization wrapper generator for Flutter message catalogues",
	Long: `intlwrap - Localization wrapper generator for Flutter message catalogues.

intlwrap reads machine-generated message catalogues (*.g.dart) and writes a
companion wrapper source file (*.l10n.dart) adapting each catalogue to the
framework's localization loading convention.

Available commands:
  generate - Generate wrappers for one or more catalogues
  watch    - Watch directories and regenerate wrappers on change
  version  - Show version information

Examples:
  intlwrap generate lib/intl_en.g.dart   # Generate one wrapper
  intlwrap generate --dir lib            # Generate for every catalogue under lib/
  intlwrap watch lib                     # Regenerate as catalogues change`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(verbosity, jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
