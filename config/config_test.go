package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intlwrap/intlwrap/errors"
)

func TestResolveDefaultsWhenAbsent(t *testing.T) {
	dir := t.TempDir()

	opts, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultHeader, opts.Header)
	assert.Equal(t, DefaultClassName, opts.ClassName)
	assert.Equal(t, NamingScan, opts.Naming)
}

func TestResolveReadsProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("header: \"// My project, generated file\"\nclass_name: AppMessages\nnaming: config\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "intlwrap.yaml"), content, 0644))

	opts, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "// My project, generated file", opts.Header)
	assert.Equal(t, "AppMessages", opts.ClassName)
	assert.Equal(t, NamingConfig, opts.Naming)
}

func TestResolveWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "lib", "src")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "l10n.yaml"), []byte("class_name: DeepMessages\n"), 0644))

	opts, err := Resolve(nested)
	require.NoError(t, err)
	assert.Equal(t, "DeepMessages", opts.ClassName)
}

func TestResolvePrefersIntlwrapYaml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "intlwrap.yaml"), []byte("class_name: First\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "l10n.yaml"), []byte("class_name: Second\n"), 0644))

	opts, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "First", opts.ClassName)
}

func TestResolveMalformedDegradesToDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "intlwrap.yaml"), []byte(":\t{{not yaml"), 0644))

	opts, err := Resolve(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfigUnavailable))

	// Options still usable
	assert.Equal(t, DefaultClassName, opts.ClassName)
	assert.Equal(t, DefaultHeader, opts.Header)
}

func TestResolvePartialFileKeepsOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "intlwrap.yaml"), []byte("class_name: OnlyThis\n"), 0644))

	opts, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "OnlyThis", opts.ClassName)
	assert.Equal(t, DefaultHeader, opts.Header)
	assert.Equal(t, NamingScan, opts.Naming)
}

func TestResolveInvalidNamingFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "intlwrap.yaml"), []byte("naming: merge\n"), 0644))

	opts, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, NamingScan, opts.Naming)
}

func TestResolveEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INTLWRAP_CLASS_NAME", "EnvMessages")

	opts, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "EnvMessages", opts.ClassName)
}

func TestResolveFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("class_name: CustomMessages\n"), 0644))

	opts, err := ResolveFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CustomMessages", opts.ClassName)
}

func TestResolveFromFileMissing(t *testing.T) {
	opts, err := ResolveFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfigUnavailable))
	assert.Equal(t, Default(), opts)
}
