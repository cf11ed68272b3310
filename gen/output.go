package gen

import (
	"os"
	"strings"

	"github.com/intlwrap/intlwrap/errors"
)

// Asset suffixes. The output path is a pure function of the input path:
// the catalogue suffix is replaced by the wrapper suffix, keeping the two
// files colocated.
const (
	CatalogueSuffix = ".g.dart"
	WrapperSuffix   = ".l10n.dart"
)

// IsCatalogue reports whether path names a catalogue asset.
func IsCatalogue(path string) bool {
	return strings.HasSuffix(path, CatalogueSuffix)
}

// OutputPath derives the wrapper path from a catalogue path. Inputs lacking
// the catalogue suffix fail with ErrPathMismatch; guessing an output
// location is never acceptable.
func OutputPath(inputPath string) (string, error) {
	if !strings.HasSuffix(inputPath, CatalogueSuffix) {
		return "", errors.Wrapf(errors.ErrPathMismatch, "expected %q suffix on %q", CatalogueSuffix, inputPath)
	}
	return strings.TrimSuffix(inputPath, CatalogueSuffix) + WrapperSuffix, nil
}

// WriteArtifact replaces the output asset with src in full. Partial or
// append writes never happen; callers only reach this after formatting
// succeeded.
func WriteArtifact(path, src string) error {
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
