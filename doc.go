// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

/*
Package csigen renders machine-readable API definitions into C interface
headers and AsciiDoc reference documentation.

One definition tree feeds two renderers: the header renderer formats types,
code fragments, macros and function prototypes with generated comments and
include guards; the documentation renderer produces an index document plus
one document per module, cross-linking every declared type and function name.

Load definitions from YAML and render headers:

	api, modules, err := csigen.LoadFile("api/csi.yaml")
	if err != nil {
		return err
	}

	result, err := csigen.Generate(api, modules, csigen.Options{
		Mode:   csigen.ModeHeaders,
		OutDir: "include",
	})
	if err != nil {
		return err
	}

	fmt.Println(strings.Join(result.Files, "\n"))

Render documentation with hyperlinked anchors:

	result, err := csigen.Generate(api, modules, csigen.Options{
		Mode:         csigen.ModeDocs,
		DocOutDir:    "docs",
		Optimization: "html",
	})

Render a single module in memory:

	header, err := csigen.RenderHeader(api, modules[0])
	if err != nil {
		return err
	}

	index := csigen.BuildXRefIndex(modules)
	ctx, err := csigen.NewRenderContext(api, index)
	if err != nil {
		return err
	}

	page, err := csigen.RenderModuleDoc(ctx, modules[0])
*/
package csigen
