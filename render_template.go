// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

// templateFS stores built-in AsciiDoc templates embedded into the package.
//
//go:embed templates/*.adoc.gotmpl
var templateFS embed.FS

// builtInTemplateFiles maps template aliases to embedded file paths.
var builtInTemplateFiles = map[string]string{
	templateModuleName: "templates/module.adoc.gotmpl",
	templateIndexName:  "templates/index.adoc.gotmpl",
}

// resolveTemplate parses either custom template text or the named built-in template.
func resolveTemplate(name, customText string, funcs template.FuncMap) (*template.Template, error) {
	if strings.TrimSpace(customText) != "" {
		parsed, err := template.New("custom").Funcs(funcs).Parse(customText)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, "custom", err)
		}

		return parsed, nil
	}

	templateText, err := BuiltinTemplate(name)
	if err != nil {
		return nil, err
	}

	parsed, err := template.New(name).Funcs(funcs).Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, name, err)
	}

	return parsed, nil
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// templateFuncs provides utility functions available inside documentation templates.
// "listing" emits a code body that output normalization leaves untouched.
func templateFuncs(ctx RenderContext, listings *listingStash) template.FuncMap {
	return template.FuncMap{
		"heading": func(level int) string {
			return headingMarker(ctx.HeadingOffset, level)
		},
		"listing": listings.put,
	}
}

// headingMarker returns the AsciiDoc section marker for level relative to offset.
func headingMarker(offset, level int) string {
	depth := offset + level
	if depth < 1 {
		depth = 1
	}

	return strings.Repeat("=", depth) + " "
}
