package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/intlwrap/intlwrap/config"
	"github.com/intlwrap/intlwrap/errors"
	"github.com/intlwrap/intlwrap/format"
	intltest "github.com/intlwrap/intlwrap/internal/testing"
)

func newTestGenerator() *Generator {
	return New(format.Passthrough{}, zap.NewNop().Sugar())
}

func TestOutputPath(t *testing.T) {
	out, err := OutputPath("lib/intl_en.g.dart")
	require.NoError(t, err)
	assert.Equal(t, "lib/intl_en.l10n.dart", out)
}

func TestOutputPathMismatch(t *testing.T) {
	for _, path := range []string{"lib/strings.dart", "lib/intl_en.dart", "intl_en.g.darts", ""} {
		_, err := OutputPath(path)
		require.Error(t, err, "path %q", path)
		assert.True(t, errors.Is(err, errors.ErrPathMismatch))
	}
}

func TestIsCatalogue(t *testing.T) {
	assert.True(t, IsCatalogue("lib/intl_en.g.dart"))
	assert.False(t, IsCatalogue("lib/intl_en.l10n.dart"))
	assert.False(t, IsCatalogue("lib/main.dart"))
}

func TestRunWritesWrapper(t *testing.T) {
	dir := t.TempDir()
	input := intltest.WriteCatalogue(t, dir, "intl_en.g.dart", "ExampleMessages", []string{"en", "pt_BR", "fr"})

	text, err := os.ReadFile(input)
	require.NoError(t, err)

	g := newTestGenerator()
	res, err := g.Run(context.Background(), Request{InputPath: input, InputText: text, Options: config.Default()})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "intl_en.l10n.dart"), res.OutputPath)

	written, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, res.Source, string(written))
	assert.Contains(t, string(written), "class ExampleLocalizations {")
	assert.Contains(t, string(written), "import 'intl_en.g.dart';")
}

func TestRunDeterminism(t *testing.T) {
	dir := t.TempDir()
	input := intltest.WriteCatalogue(t, dir, "intl_en.g.dart", "ExampleMessages", []string{"en", "pt_BR"})
	text, err := os.ReadFile(input)
	require.NoError(t, err)

	g := newTestGenerator()
	req := Request{InputPath: input, InputText: text, Options: config.Default()}

	first, err := g.Run(context.Background(), req)
	require.NoError(t, err)
	second, err := g.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Source, second.Source, "re-running on unchanged input is byte-identical")
}

func TestGenerateSkipsMissingDeclaration(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "colors.g.dart")
	require.NoError(t, os.WriteFile(input, []byte("class Palette {}\n"), 0644))

	g := newTestGenerator()
	_, err := g.Run(context.Background(), Request{
		InputPath: input,
		InputText: []byte("class Palette {}\n"),
		Options:   config.Default(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsSkip(err), "missing declaration is a skip, not a failure")

	// No output asset, empty or otherwise
	assert.Equal(t, []string{"colors.g.dart"}, intltest.ListFiles(t, dir))
}

func TestRunPathMismatchWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "strings.dart")
	require.NoError(t, os.WriteFile(input, []byte("class FooMessages {}\n"), 0644))

	g := newTestGenerator()
	_, err := g.Run(context.Background(), Request{
		InputPath: input,
		InputText: []byte("class FooMessages {}\n"),
		Options:   config.Default(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPathMismatch))
	assert.Equal(t, []string{"strings.dart"}, intltest.ListFiles(t, dir))
}

func TestRunFormatterFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := intltest.WriteCatalogue(t, dir, "intl_en.g.dart", "ExampleMessages", []string{"en"})
	text, err := os.ReadFile(input)
	require.NoError(t, err)

	// "false" exits non-zero for any input, standing in for a formatter
	// rejecting malformed source.
	g := New(&format.Dart{Binary: "false"}, zap.NewNop().Sugar())
	_, err = g.Run(context.Background(), Request{InputPath: input, InputText: text, Options: config.Default()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFormatFailed))

	assert.Equal(t, []string{"intl_en.g.dart"}, intltest.ListFiles(t, dir))
}

func TestGenerateConfigNamingStrategy(t *testing.T) {
	// Config naming derives names without scanning; the input declares no
	// matching class at all.
	opts := config.Default()
	opts.Naming = config.NamingConfig
	opts.ClassName = "App"

	g := newTestGenerator()
	res, err := g.Generate(context.Background(), Request{
		InputPath: "lib/app.g.dart",
		InputText: []byte("class Whatever {}\n"),
		Options:   opts,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Source, "class AppLocalizations {")
	assert.Contains(t, res.Source, "AppMessages(rootBundle.loadString")
}

func TestGenerateLocaleWarnings(t *testing.T) {
	dir := t.TempDir()
	input := intltest.WriteCatalogue(t, dir, "intl_en.g.dart", "ExampleMessages", []string{"en", "!!bogus!!"})
	text, err := os.ReadFile(input)
	require.NoError(t, err)

	g := newTestGenerator()
	res, err := g.Generate(context.Background(), Request{InputPath: input, InputText: text, Options: config.Default()})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "!!bogus!!")
}
