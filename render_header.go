// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import "strings"

const (
	assemblerGuardOpen  = "#ifndef __ASSEMBLER__"
	assemblerGuardClose = "#endif // __ASSEMBLER__"
)

// RenderHeader renders one module as a complete C interface header.
// Sections without content leave no trace in the output.
func RenderHeader(api *APIDefinition, module *ModuleDefinition) (string, error) {
	var out strings.Builder

	out.WriteString(headerComment(api, module))
	out.WriteByte('\n')

	guard := guardName(module.CFilename)
	out.WriteString("#ifndef " + guard + "\n")
	out.WriteString("#define " + guard + "\n")
	out.WriteByte('\n')

	if len(module.IncludeFiles) > 0 {
		for _, include := range module.IncludeFiles {
			out.WriteString(formatInclude(include))
		}

		out.WriteByte('\n')
	}

	if module.NoAssembler {
		out.WriteString(assemblerGuardOpen + "\n\n")
	}

	for _, decl := range module.Types {
		rendered, err := formatTypeSection(decl)
		if err != nil {
			return "", err
		}

		out.WriteString(rendered)
		out.WriteByte('\n')
	}

	if len(module.Definitions) > 0 {
		for _, fragment := range module.Definitions {
			var comment commentBlock
			comment.text(fragment.Comment)
			out.WriteString(comment.String())
			out.WriteString(verbatimLine(fragment.Fragment))
		}

		out.WriteByte('\n')
	}

	for _, macro := range module.Macros {
		out.WriteString(callableComment(macro.Description, macro.Notes, macro.Params, macro.Return))
		out.WriteString(verbatimLine(macro.Code))
		out.WriteByte('\n')
	}

	for _, fn := range module.Functions {
		out.WriteString(callableComment(fn.Description, fn.Notes, fn.Params, fn.Return))
		out.WriteString(formatPrototype(fn))
		out.WriteByte('\n')
	}

	if module.NoAssembler {
		out.WriteString(assemblerGuardClose + "\n\n")
	}

	out.WriteString("#endif /* " + guard + " */\n")
	return out.String(), nil
}

// headerComment renders the leading file comment of a header.
func headerComment(api *APIDefinition, module *ModuleDefinition) string {
	var comment commentBlock
	comment.text(module.Name)
	comment.separator()
	comment.text(module.Description)

	for _, note := range module.Notes {
		comment.separator()
		comment.text(note)
	}

	if api != nil && strings.TrimSpace(api.Boilerplate) != "" {
		comment.separator()
		comment.text(api.Boilerplate)
	}

	return comment.String()
}

// formatInclude renders one include directive line.
func formatInclude(include IncludeFile) string {
	if include.SystemHeader {
		return "#include <" + include.Filename + ">\n"
	}

	return "#include \"" + include.Filename + "\"\n"
}

// formatTypeSection renders a type declaration preceded by its doc comment.
func formatTypeSection(decl TypeDeclaration) (string, error) {
	declaration, err := formatTypeDeclaration(decl)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(decl.Description) == "" && (decl.Kind != KindFunction || len(decl.FuncParams) == 0) {
		return declaration, nil
	}

	var comment commentBlock
	comment.text(decl.Description)
	if decl.Kind == KindFunction && len(decl.FuncParams) > 0 {
		comment.separator()
		for _, param := range decl.FuncParams {
			comment.text(paramTag(param))
		}
	}

	return comment.String() + declaration, nil
}

// callableComment renders the doc comment shared by functions and macros.
func callableComment(description string, notes []string, params []Param, ret *ReturnValue) string {
	var comment commentBlock
	comment.text(description)
	comment.separator()

	if len(notes) > 0 {
		for _, note := range notes {
			comment.text(note)
		}

		comment.separator()
	}

	for _, param := range params {
		comment.text(paramTag(param))
	}

	if ret != nil {
		comment.text("@return : " + ret.Description)
	}

	return comment.String()
}

// paramTag renders the @param line text of one parameter.
func paramTag(param Param) string {
	return "@param " + param.Name + ": " + param.Description
}

// verbatimLine returns a pass-through payload terminated by exactly one newline.
func verbatimLine(payload Verbatim) string {
	return strings.TrimRight(string(payload), "\n") + "\n"
}
