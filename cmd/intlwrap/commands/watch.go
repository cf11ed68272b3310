package commands

import (
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/intlwrap/intlwrap/format"
	"github.com/intlwrap/intlwrap/gen"
	"github.com/intlwrap/intlwrap/logger"
	"github.com/intlwrap/intlwrap/watch"
)

var watchNoFormat bool

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch [roots...]",
	Short: "Watch directories and regenerate wrappers on change",
	Long: `Watch one or more directory trees and regenerate wrappers as message
catalogues change. Changes to intlwrap.yaml or l10n.yaml re-resolve
configuration for subsequent generations.

Runs until interrupted.

Examples:
  intlwrap watch            # Watch the current directory
  intlwrap watch lib test   # Watch several roots`,
	RunE: runWatch,
}

func init() {
	WatchCmd.Flags().BoolVar(&watchNoFormat, "no-format", false, "Skip running the Dart formatter on output")
}

func runWatch(cmd *cobra.Command, args []string) error {
	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var formatter format.Formatter = format.Passthrough{}
	if !watchNoFormat {
		if dart := format.NewDart(); dart.Available() {
			formatter = dart
		} else {
			pterm.Warning.Println("dart not found in PATH, writing unformatted output")
		}
	}

	generator := gen.New(formatter, logger.Logger)
	engine, err := watch.NewEngine(generator, roots, logger.Logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine.Start()
	pterm.Info.Printf("Watching %v (Ctrl-C to stop)\n", roots)

	<-ctx.Done()
	pterm.Println()
	engine.Stop()
	return nil
}
