// Package testing provides shared fixtures for intlwrap tests.
package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteCatalogue writes a minimal machine-generated message catalogue
// declaring the given class and known locales, and returns its path.
func WriteCatalogue(t *testing.T, dir, file, class string, locales []string) string {
	t.Helper()

	quoted := make([]string, len(locales))
	for i, id := range locales {
		quoted[i] = fmt.Sprintf("'%s'", id)
	}

	src := fmt.Sprintf(`// Machine generated, do not edit.
class %s {
  %s(this._loader, this._adapter);

  static const List<String> knownLocales = [%s];

  final Future<String> Function(String) _loader;
  final Object _adapter;

  Future<void> loadLocale(String id) async {}
}
`, class, class, strings.Join(quoted, ", "))

	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("Failed to write catalogue fixture: %v", err)
	}
	return path
}

// ListFiles returns the names of all regular files under dir, for asserting
// that a pipeline produced no unexpected artifacts.
func ListFiles(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir %s: %v", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}
