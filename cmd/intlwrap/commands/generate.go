package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/intlwrap/intlwrap/config"
	"github.com/intlwrap/intlwrap/errors"
	"github.com/intlwrap/intlwrap/format"
	"github.com/intlwrap/intlwrap/gen"
	"github.com/intlwrap/intlwrap/logger"
)

var (
	generateDir      string
	generateConfig   string
	generateNoFormat bool
	generateDryRun   bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate [catalogues...]",
	Short: "Generate localization wrappers for message catalogues",
	Long: `Generate a companion wrapper source file for each message catalogue.

Each input must end in .g.dart; the wrapper is written next to it with the
.l10n.dart suffix, replacing any previous wrapper for that catalogue.
Catalogues declaring no message class are skipped. Failing catalogues do not
stop the remaining ones.

Examples:
  intlwrap generate lib/intl_en.g.dart         # One catalogue
  intlwrap generate --dir lib                  # Every catalogue under lib/
  intlwrap generate --dry-run lib/a.g.dart     # Print wrapper to stdout
  intlwrap generate --config l10n.yaml --dir . # Explicit configuration file`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateDir, "dir", "d", "", "Scan a directory tree for catalogues")
	GenerateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "Configuration file (default: nearest intlwrap.yaml or l10n.yaml)")
	GenerateCmd.Flags().BoolVar(&generateNoFormat, "no-format", false, "Skip running the Dart formatter on output")
	GenerateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Print generated source to stdout instead of writing")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputs, err := collectInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no catalogues given; pass paths or --dir")
	}

	opts, err := resolveOptions(inputs[0])
	if err != nil {
		if !errors.Is(err, errors.ErrConfigUnavailable) {
			return err
		}
		pterm.Warning.Printf("Configuration unavailable, using defaults: %v\n", err)
	}

	generator := gen.New(pickFormatter(), logger.Logger)

	var generated, skipped, failed int
	for _, input := range inputs {
		text, err := os.ReadFile(input)
		if err != nil {
			pterm.Error.Printf("%s: %v\n", input, err)
			failed++
			continue
		}

		req := gen.Request{InputPath: input, InputText: text, Options: opts}

		if generateDryRun {
			res, err := generator.Generate(cmd.Context(), req)
			switch {
			case errors.IsSkip(err):
				pterm.Info.Printf("%s: no message class, skipped\n", input)
				skipped++
			case err != nil:
				pterm.Error.Printf("%s: %v\n", input, err)
				failed++
			default:
				fmt.Fprintln(cmd.OutOrStdout(), res.Source)
				generated++
			}
			continue
		}

		res, err := generator.Run(cmd.Context(), req)
		switch {
		case errors.IsSkip(err):
			pterm.Info.Printf("%s: no message class, skipped\n", input)
			skipped++
		case err != nil:
			pterm.Error.Printf("%s: %v\n", input, err)
			failed++
		default:
			pterm.Success.Printf("%s -> %s\n", input, res.OutputPath)
			generated++
		}
	}

	if len(inputs) > 1 {
		pterm.Info.Printf("%d generated, %d skipped, %d failed\n", generated, skipped, failed)
	}
	if failed > 0 {
		return errors.Newf("%d of %d catalogues failed", failed, len(inputs))
	}
	return nil
}

// collectInputs merges explicit paths with a --dir scan.
func collectInputs(args []string) ([]string, error) {
	inputs := append([]string(nil), args...)

	if generateDir != "" {
		err := filepath.WalkDir(generateDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && gen.IsCatalogue(path) {
				inputs = append(inputs, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "scan %s", generateDir)
		}
	}

	return inputs, nil
}

func resolveOptions(firstInput string) (config.Options, error) {
	if generateConfig != "" {
		return config.ResolveFromFile(generateConfig)
	}

	start := generateDir
	if start == "" {
		start = filepath.Dir(firstInput)
	}
	return config.Resolve(start)
}

func pickFormatter() format.Formatter {
	if generateNoFormat {
		return format.Passthrough{}
	}

	dart := format.NewDart()
	if !dart.Available() {
		pterm.Warning.Println("dart not found in PATH, writing unformatted output")
		return format.Passthrough{}
	}
	return dart
}
