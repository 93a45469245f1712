package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/fibbench/internal/config"
	"github.com/specialistvlad/fibbench/internal/ctxlog"
	"github.com/specialistvlad/fibbench/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL suite loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths, resolves locals, and
// translates all benchmark blocks into a single validated suite.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Suite, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("no .hcl suite files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	var roots []fileRoot

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		roots = append(roots, root)
	}

	evalCtx, err := l.buildEvalContext(ctx, roots)
	if err != nil {
		return nil, err
	}

	suite := &config.Suite{}
	for _, root := range roots {
		for _, block := range root.Benchmarks {
			b, err := l.translateBenchmark(ctx, block, evalCtx)
			if err != nil {
				return nil, err
			}
			suite.Benchmarks = append(suite.Benchmarks, b)
		}
	}

	if len(suite.Benchmarks) == 0 {
		return nil, fmt.Errorf("%w in %v", config.ErrEmptySuite, paths)
	}
	if err := suite.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.", "benchmarks", len(suite.Benchmarks))
	return suite, nil
}

// buildEvalContext collects every `locals` attribute across all files into
// the `local` object. Locals are evaluated without a context, so they cannot
// reference each other.
func (l *Loader) buildEvalContext(ctx context.Context, roots []fileRoot) (*hcl.EvalContext, error) {
	logger := ctxlog.FromContext(ctx)
	locals := make(map[string]cty.Value)

	for _, root := range roots {
		for _, block := range root.Locals {
			attrs, diags := block.Body.JustAttributes()
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode locals: %w", diags)
			}
			for name, attr := range attrs {
				if _, exists := locals[name]; exists {
					return nil, fmt.Errorf("duplicate local value '%s' at %s", name, attr.NameRange)
				}
				val, diags := attr.Expr.Value(nil)
				if diags.HasErrors() {
					return nil, fmt.Errorf("invalid local value '%s': %w", name, diags)
				}
				locals[name] = val
			}
		}
	}
	logger.Debug("Locals resolved.", "count", len(locals))

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"local": cty.ObjectVal(locals),
		},
	}, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl
// files found. Unlike module search paths, a suite path that does not exist
// is an error.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
		} else {
			found = []string{path}
		}

		for _, f := range found {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
