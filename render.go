// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

const (
	// docExtension is the file extension of generated documentation.
	docExtension = ".adoc"
	// IndexFileName is the top-level documentation file name.
	IndexFileName = "index" + docExtension
	// ModuleDocDir is the documentation sub-directory holding module documents.
	ModuleDocDir = "modules"
)

const (
	templateModuleName = "module"
	templateIndexName  = "index"
)

// RenderContext carries the immutable settings shared by all documentation
// renderer calls of one run.
type RenderContext struct {
	// HeadingOffset is added to every heading level.
	HeadingOffset int
	// Optimization selects html or plain output.
	Optimization Optimization
	// Index resolves cross-references between documents.
	Index *XRefIndex
	// ModuleTemplateText replaces the built-in module template when non-empty.
	ModuleTemplateText string
}

// ModuleLink is one module entry of the documentation index.
type ModuleLink struct {
	// CFilename is the module header file name.
	CFilename string
	// Name is the module display name.
	Name string
	// Path is the module document path relative to the documentation root.
	Path string
}

// NewRenderContext builds a render context from API settings and a prebuilt index.
func NewRenderContext(api *APIDefinition, index *XRefIndex) (RenderContext, error) {
	ctx := RenderContext{Index: index, Optimization: OptimizationPlain}
	if api == nil {
		return ctx, nil
	}

	optimization, err := ParseOptimization(string(api.Optimization))
	if err != nil {
		return RenderContext{}, err
	}

	ctx.HeadingOffset = api.TopHeadingLevel
	ctx.Optimization = optimization
	return ctx, nil
}

// ParseOptimization normalizes documentation optimization mode; empty means plain.
func ParseOptimization(value string) (Optimization, error) {
	switch Optimization(strings.ToLower(strings.TrimSpace(value))) {
	case "", OptimizationPlain:
		return OptimizationPlain, nil
	case OptimizationHTML:
		return OptimizationHTML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownOptimization, value)
	}
}

// ModuleDocPath returns module document path relative to the documentation root.
func ModuleDocPath(cFilename string) string {
	return path.Join(ModuleDocDir, moduleSlug(cFilename)+docExtension)
}

// RenderModuleDoc renders the AsciiDoc reference page of one module.
func RenderModuleDoc(ctx RenderContext, module *ModuleDefinition) (string, error) {
	view, err := buildModuleView(ctx, module)
	if err != nil {
		return "", err
	}

	return executeTemplate(ctx, templateModuleName, ctx.ModuleTemplateText, view)
}

// RenderIndexDoc renders the top-level AsciiDoc index linking every module document.
func RenderIndexDoc(ctx RenderContext, api *APIDefinition, links []ModuleLink) (string, error) {
	return executeTemplate(ctx, templateIndexName, "", buildIndexView(ctx, api, links))
}

// executeTemplate resolves and runs one documentation template and normalizes its output.
// Listing bodies are restored after normalization and keep their exact bytes.
func executeTemplate(ctx RenderContext, name, customText string, view any) (string, error) {
	listings := &listingStash{}
	tpl, err := resolveTemplate(name, customText, templateFuncs(ctx, listings))
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := tpl.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrExecuteTemplate, name, err)
	}

	normalized := normalizeAsciidocOutput(out.String())
	return ensureTrailingNewline(listings.restore(normalized)), nil
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	file, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
