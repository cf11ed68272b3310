// Package format canonicalizes emitted Dart source.
//
// The canonical formatter is an external, idempotent text transformation;
// this package only defines the contract and the adapters that invoke it. A
// formatting failure on emitted text means the document model produced
// malformed source, which is a generator defect, never user error.
package format

import "context"

// Formatter canonicalizes source text. Implementations must be idempotent:
// formatting already-formatted text returns it unchanged.
type Formatter interface {
	Format(ctx context.Context, src string) (string, error)
}

// Passthrough returns source unchanged. Used for tests and --no-format.
type Passthrough struct{}

func (Passthrough) Format(_ context.Context, src string) (string, error) {
	return src, nil
}
