// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Target is a generation backend. The set of targets is closed.
type Target string

// TargetC renders C headers and their AsciiDoc reference.
const TargetC Target = "C"

// Mode selects which artifact a run produces.
type Mode int

const (
	// ModeHeaders renders one interface header per module.
	ModeHeaders Mode = iota
	// ModeDocs renders the documentation index and one document per module.
	ModeDocs
)

const (
	defaultOutDir    = "output"
	defaultDocOutDir = "adoc_output"
)

// Options configures one generation run.
type Options struct {
	// Target is the backend name; empty selects C.
	Target string
	// Mode selects headers or documentation.
	Mode Mode
	// OutDir receives generated headers.
	OutDir string
	// DocOutDir receives generated documentation.
	DocOutDir string
	// Optimization overrides the API documentation optimization when non-empty.
	Optimization string
	// ModuleTemplateText replaces the built-in module document template when non-empty.
	ModuleTemplateText string
	// Logger receives progress messages; nil discards them.
	Logger *log.Logger
}

// Result lists files written by a run in write order.
type Result struct {
	Files []string
}

// outputFile is one rendered document awaiting write.
type outputFile struct {
	path    string
	content string
}

// ParseTarget resolves a backend name; empty selects C.
func ParseTarget(name string) (Target, error) {
	switch strings.TrimSpace(name) {
	case "", "C", "c":
		return TargetC, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedTarget, name)
	}
}

// SelectMode resolves requested artifacts; documentation wins when both are requested.
func SelectMode(headers, docs bool) Mode {
	if docs {
		return ModeDocs
	}

	return ModeHeaders
}

// Generate renders every module and writes the results below the configured directories.
// Any error aborts the run; files written before the failure are left in place.
func Generate(api *APIDefinition, modules []*ModuleDefinition, opt Options) (Result, error) {
	target, err := ParseTarget(opt.Target)
	if err != nil {
		return Result{}, err
	}

	for i, module := range modules {
		if module == nil {
			return Result{}, fmt.Errorf("%w: module #%d is missing", ErrValidateDefinition, i+1)
		}
	}

	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var files []outputFile
	switch target {
	case TargetC:
		files, err = renderC(api, modules, opt, logger)
	default:
		err = fmt.Errorf("%w %q", ErrUnsupportedTarget, target)
	}

	if err != nil {
		return Result{}, err
	}

	if err := checkDistinctOutputs(files); err != nil {
		return Result{}, err
	}

	result := Result{Files: make([]string, 0, len(files))}
	for _, file := range files {
		if err := writeOutput(file); err != nil {
			return result, err
		}

		logger.Info("generated", "file", file.path)
		result.Files = append(result.Files, file.path)
	}

	return result, nil
}

// renderC renders all C backend documents of the selected mode in memory.
func renderC(api *APIDefinition, modules []*ModuleDefinition, opt Options, logger *log.Logger) ([]outputFile, error) {
	if opt.Mode == ModeDocs {
		return renderDocs(api, modules, opt, logger)
	}

	outDir := opt.OutDir
	if strings.TrimSpace(outDir) == "" {
		outDir = defaultOutDir
	}

	files := make([]outputFile, 0, len(modules))
	for _, module := range modules {
		content, err := RenderHeader(api, module)
		if err != nil {
			return nil, fmt.Errorf("render header %q: %w", module.CFilename, err)
		}

		files = append(files, outputFile{
			path:    filepath.Join(outDir, filepath.FromSlash(module.CFilename)),
			content: content,
		})
	}

	return files, nil
}

// renderDocs renders module documents and the index once the cross-reference index is complete.
func renderDocs(api *APIDefinition, modules []*ModuleDefinition, opt Options, logger *log.Logger) ([]outputFile, error) {
	docOutDir := opt.DocOutDir
	if strings.TrimSpace(docOutDir) == "" {
		docOutDir = defaultDocOutDir
	}

	index := BuildXRefIndex(modules)
	logger.Debug("cross-reference index built", "names", index.Len())
	for _, name := range index.Collisions() {
		logger.Warn("name declared more than once; links resolve to first declaration", "name", name)
	}

	ctx, err := NewRenderContext(api, index)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(opt.Optimization) != "" {
		ctx.Optimization, err = ParseOptimization(opt.Optimization)
		if err != nil {
			return nil, err
		}
	}

	ctx.ModuleTemplateText = opt.ModuleTemplateText

	files := make([]outputFile, 0, len(modules)+1)
	links := make([]ModuleLink, 0, len(modules))
	for _, module := range modules {
		content, err := RenderModuleDoc(ctx, module)
		if err != nil {
			return nil, fmt.Errorf("render module document %q: %w", module.CFilename, err)
		}

		docPath := ModuleDocPath(module.CFilename)
		files = append(files, outputFile{
			path:    filepath.Join(docOutDir, filepath.FromSlash(docPath)),
			content: content,
		})
		links = append(links, ModuleLink{
			CFilename: module.CFilename,
			Name:      sanitizeText(module.Name),
			Path:      docPath,
		})
	}

	content, err := RenderIndexDoc(ctx, api, links)
	if err != nil {
		return nil, fmt.Errorf("render documentation index: %w", err)
	}

	files = append(files, outputFile{
		path:    filepath.Join(docOutDir, IndexFileName),
		content: content,
	})

	return files, nil
}

// checkDistinctOutputs rejects runs where two documents share one path.
func checkDistinctOutputs(files []outputFile) error {
	seen := make(map[string]struct{}, len(files))
	for _, file := range files {
		key := filepath.Clean(file.path)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w %q", ErrDuplicateOutput, file.path)
		}

		seen[key] = struct{}{}
	}

	return nil
}

// writeOutput creates parent directories and writes one document.
func writeOutput(file outputFile) error {
	if err := os.MkdirAll(filepath.Dir(file.path), 0o755); err != nil {
		return fmt.Errorf("%w: create directory for %q: %w", ErrWriteOutput, file.path, err)
	}

	//nolint:gosec // generated headers and documents are regular project sources.
	if err := os.WriteFile(file.path, []byte(file.content), 0o644); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, file.path, err)
	}

	return nil
}
