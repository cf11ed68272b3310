package gen

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/intlwrap/intlwrap/catalog"
	"github.com/intlwrap/intlwrap/config"
	"github.com/intlwrap/intlwrap/errors"
	"github.com/intlwrap/intlwrap/format"
)

// Request is one generation unit: a catalogue asset plus resolved options.
// Created per triggering event, owned by one pipeline run, never persisted.
type Request struct {
	InputPath string
	InputText []byte
	Options   config.Options
}

// Result carries the finished wrapper source and its destination.
type Result struct {
	OutputPath string
	Source     string

	// Warnings are advisory locale diagnostics; they never block output.
	Warnings []string
}

// Generator runs the generation pipeline. Independent requests share no
// mutable state and may run concurrently.
type Generator struct {
	formatter format.Formatter
	log       *zap.SugaredLogger
}

// New creates a Generator using the given canonical formatter.
func New(formatter format.Formatter, log *zap.SugaredLogger) *Generator {
	return &Generator{formatter: formatter, log: log}
}

// Generate runs read-through-format for one request without writing.
// A catalogue with no discoverable message class returns an error matching
// errors.ErrMissingDeclaration; callers treat that as "skip this asset".
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	outputPath, err := OutputPath(req.InputPath)
	if err != nil {
		return nil, err
	}

	info, err := g.resolveNames(req)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if locales := catalog.ExtractKnownLocales(req.InputText); len(locales) > 0 {
		warnings = catalog.CheckLocales(locales)
	}

	lib := BuildLibrary(info, req.Options, filepath.Base(req.InputPath))
	emitted := Render(lib)

	g.log.Debugw("Emitted wrapper library",
		"input", req.InputPath,
		"class", info.LocalizationsClass,
		"bytes", len(emitted))

	formatted, err := g.formatter.Format(ctx, emitted)
	if err != nil {
		return nil, errors.Wrapf(err, "format wrapper for %s", req.InputPath)
	}

	return &Result{
		OutputPath: outputPath,
		Source:     formatted,
		Warnings:   warnings,
	}, nil
}

// Run generates and persists the wrapper. The output file is replaced in
// full, and only after formatting succeeded.
func (g *Generator) Run(ctx context.Context, req Request) (*Result, error) {
	res, err := g.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	for _, warning := range res.Warnings {
		g.log.Warnw("Locale diagnostic",
			"input", req.InputPath,
			"warning", warning)
	}

	if err := WriteArtifact(res.OutputPath, res.Source); err != nil {
		return nil, err
	}

	g.log.Infow("Generated wrapper",
		"input", req.InputPath,
		"output", res.OutputPath,
		"bytes", len(res.Source))

	return res, nil
}

// resolveNames applies the configured naming strategy. Scan and config
// naming are alternatives; a deployment uses one or the other.
func (g *Generator) resolveNames(req Request) (catalog.ClassNameInfo, error) {
	if req.Options.Naming == config.NamingConfig {
		return catalog.FromBaseName(req.Options.ClassName), nil
	}

	info, ok := catalog.ExtractClassName(req.InputText)
	if !ok {
		return catalog.ClassNameInfo{}, errors.Wrapf(errors.ErrMissingDeclaration, "scan %s", req.InputPath)
	}
	return info, nil
}
