// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import (
	"fmt"
	"path"
	"strings"
)

// indexView is the root view model of the documentation index template.
type indexView struct {
	HTML    bool
	Title   string
	Notes   []string
	CNotes  []string
	Modules []ModuleLink
}

// moduleView is the root view model of the module document template.
type moduleView struct {
	HTML        bool
	CFilename   string
	Name        string
	Description string
	HasNotes    bool
	Notes       []string
	CNotes      []string
	Types       []typeView
	Functions   []callableView
	Macros      []callableView
	Definitions []fragmentView
	BackLink    string
}

// typeView represents one type declaration section.
type typeView struct {
	Name        string
	Kind        string
	Description string
	Source      string
	Values      []enumValueView
	Members     []string
	IsFunction  bool
	Subject     string
	Params      []paramView
}

// enumValueView is one row of an enum value table.
type enumValueView struct {
	Name        string
	Description string
}

// callableView represents one function or macro section.
type callableView struct {
	Name        string
	Source      string
	Description string
	Notes       []string
	Subject     string
	Return      *returnView
	Params      []paramView
}

// paramView is one documented parameter.
type paramView struct {
	Type        string
	Name        string
	Description string
	Notes       []string
}

// returnView is the documented return value.
type returnView struct {
	Type        string
	Description string
}

// fragmentView is one raw code fragment under its label.
type fragmentView struct {
	Comment  string
	Fragment string
}

// buildIndexView prepares data for the index template.
func buildIndexView(ctx RenderContext, api *APIDefinition, links []ModuleLink) indexView {
	view := indexView{
		HTML:    ctx.Optimization == OptimizationHTML,
		Modules: links,
	}

	if api != nil {
		view.Title = sanitizeText(api.DocumentationTitle)
		view.Notes = api.Notes
		view.CNotes = api.CSpecificNotes
	}

	return view
}

// buildModuleView prepares data for the module template with cross-references applied.
func buildModuleView(ctx RenderContext, module *ModuleDefinition) (moduleView, error) {
	l := linker{index: ctx.Index, module: module.CFilename, ext: docExtension}

	view := moduleView{
		HTML:        ctx.Optimization == OptimizationHTML,
		CFilename:   module.CFilename,
		Name:        sanitizeText(module.Name),
		Description: l.link(module.Description),
		HasNotes:    len(module.Notes) > 0 || len(module.CSpecificNotes) > 0,
		Notes:       l.linkAll(module.Notes),
		CNotes:      l.linkAll(module.CSpecificNotes),
		BackLink:    path.Join("..", IndexFileName),
	}

	view.Types = make([]typeView, 0, len(module.Types))
	for _, decl := range module.Types {
		typed, err := buildTypeView(l, decl)
		if err != nil {
			return moduleView{}, err
		}

		view.Types = append(view.Types, typed)
	}

	view.Functions = make([]callableView, 0, len(module.Functions))
	for _, fn := range module.Functions {
		view.Functions = append(view.Functions, callableView{
			Name:        fn.Name,
			Source:      trimSource(formatPrototype(fn)),
			Description: l.link(fn.Description),
			Notes:       l.linkAll(fn.Notes),
			Subject:     "Function",
			Return:      buildReturnView(l, fn.Return),
			Params:      buildParamViews(l, fn.Params),
		})
	}

	view.Macros = make([]callableView, 0, len(module.Macros))
	for _, macro := range module.Macros {
		view.Macros = append(view.Macros, callableView{
			Name:        macro.Name,
			Source:      trimSource(string(macro.Code)),
			Description: l.link(macro.Description),
			Notes:       l.linkAll(macro.Notes),
			Subject:     "Macro",
			Return:      buildReturnView(l, macro.Return),
			Params:      buildParamViews(l, macro.Params),
		})
	}

	view.Definitions = make([]fragmentView, 0, len(module.Definitions))
	for _, fragment := range module.Definitions {
		view.Definitions = append(view.Definitions, fragmentView{
			Comment:  sanitizeText(fragment.Comment),
			Fragment: trimSource(string(fragment.Fragment)),
		})
	}

	return view, nil
}

// buildTypeView prepares one type section.
func buildTypeView(l linker, decl TypeDeclaration) (typeView, error) {
	view := typeView{
		Name:        decl.Name,
		Kind:        string(decl.Kind),
		Description: l.link(decl.Description),
		Subject:     "Function",
	}

	switch decl.Kind {
	case KindInt, KindUnsigned:
		source, err := formatTypeDeclaration(decl)
		if err != nil {
			return typeView{}, err
		}

		view.Source = trimSource(source)
	case KindEnum:
		view.Source = trimSource(formatTypePrefixes(decl.Prefixes) + formatEnumTypedef(decl, false))
		view.Values = make([]enumValueView, 0, len(decl.EnumMembers))
		for _, member := range decl.EnumMembers {
			view.Values = append(view.Values, enumValueView{
				Name:        member.Name,
				Description: escapeTableCell(l.link(sanitizeText(member.Description))),
			})
		}
	case KindStruct:
		view.Members = make([]string, 0, len(decl.StructMembers))
		for _, member := range decl.StructMembers {
			view.Members = append(view.Members, strings.TrimSuffix(formatStructMember(member), ";"))
		}
	case KindFunction:
		view.Source = trimSource(formatTypePrefixes(decl.Prefixes) + formatFunctionTypedef(decl))
		view.IsFunction = true
		view.Params = buildParamViews(l, decl.FuncParams)
	default:
		return typeView{}, fmt.Errorf("%w %q for type %q", ErrUnknownTypeKind, decl.Kind, decl.Name)
	}

	return view, nil
}

// buildParamViews prepares parameter descriptions with linked base types.
func buildParamViews(l linker, params []Param) []paramView {
	if len(params) == 0 {
		return nil
	}

	out := make([]paramView, 0, len(params))
	for _, param := range params {
		typeSpelling, name := splitPointer(param.Type, param.Name)
		out = append(out, paramView{
			Type:        l.typeRef(typeSpelling),
			Name:        name,
			Description: l.link(param.Description),
			Notes:       l.linkAll(param.Notes),
		})
	}

	return out
}

// buildReturnView prepares the return value description.
func buildReturnView(l linker, ret *ReturnValue) *returnView {
	if ret == nil {
		return nil
	}

	return &returnView{
		Type:        l.typeRef(ret.Type),
		Description: l.link(ret.Description),
	}
}

// trimSource strips trailing line breaks from code shown in listing blocks.
func trimSource(source string) string {
	return strings.TrimRight(normalizeLineEndings(source), "\n")
}
