package format

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/intlwrap/intlwrap/errors"
)

// Dart runs the Dart SDK formatter over emitted source via a temp file.
type Dart struct {
	// Binary is the SDK executable, "dart" by default.
	Binary string
}

// NewDart returns a formatter invoking the dart binary on PATH.
func NewDart() *Dart {
	return &Dart{Binary: "dart"}
}

// Available reports whether the formatter binary can be invoked.
func (d *Dart) Available() bool {
	_, err := exec.LookPath(d.Binary)
	return err == nil
}

// Format writes src to a temp file, runs "dart format" on it and reads the
// result back. Any failure wraps ErrFormatFailed: correctly constructed
// libraries always format cleanly.
func (d *Dart) Format(ctx context.Context, src string) (string, error) {
	tmp, err := os.CreateTemp("", "intlwrap-*.dart")
	if err != nil {
		return "", errors.Wrap(err, "create temp file for formatter")
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(src); err != nil {
		tmp.Close()
		return "", errors.Wrapf(err, "write %s", tmpPath)
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrapf(err, "close %s", tmpPath)
	}

	cmd := exec.CommandContext(ctx, d.Binary, "format", tmpPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(errors.ErrFormatFailed, "%s format: %v: %s", d.Binary, err, stderr.String())
	}

	out, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", errors.Wrapf(err, "read formatted %s", tmpPath)
	}
	return string(out), nil
}
