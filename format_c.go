// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	// cIndent is one level of indentation inside generated C blocks.
	cIndent = "    "
	// cVoid is the spelling of absent return types and empty parameter lists.
	cVoid = "void"
)

// typePrefixOrder is the emission order of storage qualifiers.
var typePrefixOrder = []TypePrefix{PrefixStatic, PrefixVolatile, PrefixInline, PrefixConst}

// splitPointer moves trailing pointer markers from type spelling onto the name,
// so "int *" with "count" becomes "int" and "*count".
func splitPointer(typeSpelling, name string) (string, string) {
	typeSpelling = strings.TrimSpace(typeSpelling)
	if !strings.HasSuffix(typeSpelling, "*") {
		return typeSpelling, name
	}

	base := strings.TrimRight(typeSpelling, "* \t")
	stars := strings.Count(typeSpelling[len(base):], "*")
	return base, strings.Repeat("*", stars) + name
}

// formatParam renders a parameter as it appears inside a parameter list.
func formatParam(param Param) string {
	typeSpelling, name := splitPointer(param.Type, param.Name)
	return typeSpelling + " " + name
}

// formatParamList joins parameters or returns void for an empty list.
func formatParamList(params []Param) string {
	if len(params) == 0 {
		return cVoid
	}

	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, formatParam(param))
	}

	return strings.Join(parts, ", ")
}

// formatStructMember renders one struct field statement without indentation.
func formatStructMember(member StructMember) string {
	typeSpelling, name := splitPointer(member.Type, member.Name)
	return typeSpelling + " " + name + ";"
}

// formatTypePrefixes renders storage qualifiers in fixed C order.
func formatTypePrefixes(prefixes []TypePrefix) string {
	var out strings.Builder
	for _, prefix := range typePrefixOrder {
		if slices.Contains(prefixes, prefix) {
			out.WriteString(string(prefix))
			out.WriteByte(' ')
		}
	}

	return out.String()
}

// formatEnumMember renders one enumerator line body including trailing comma.
func formatEnumMember(member EnumMember, withComment bool) string {
	out := member.Name
	if member.Value != nil {
		out += " = " + strconv.FormatInt(*member.Value, 10)
	}

	out += ","
	if withComment && strings.TrimSpace(member.Description) != "" {
		out += " /* " + sanitizeText(member.Description) + " */"
	}

	return out
}

// formatEnumTypedef renders a complete enum typedef block.
func formatEnumTypedef(decl TypeDeclaration, withComments bool) string {
	var out strings.Builder
	out.WriteString("typedef enum {\n")
	for _, member := range decl.EnumMembers {
		out.WriteString(cIndent)
		out.WriteString(formatEnumMember(member, withComments))
		out.WriteByte('\n')
	}

	out.WriteString("} " + decl.Name + ";\n")
	return out.String()
}

// formatStructTypedef renders a complete struct typedef block.
func formatStructTypedef(decl TypeDeclaration) string {
	var out strings.Builder
	out.WriteString("typedef struct {\n")
	for _, member := range decl.StructMembers {
		out.WriteString(cIndent)
		out.WriteString(formatStructMember(member))
		out.WriteByte('\n')
	}

	out.WriteString("} " + decl.Name + ";\n")
	return out.String()
}

// formatFunctionTypedef renders a callable type alias on a single line.
func formatFunctionTypedef(decl TypeDeclaration) string {
	returnType := strings.TrimSpace(decl.FuncReturn)
	if returnType == "" {
		returnType = cVoid
	}

	return "typedef " + returnType + " (" + decl.Name + ")(" + formatParamList(decl.FuncParams) + ");\n"
}

// formatPrototype renders a function prototype terminated by a semicolon.
func formatPrototype(fn FunctionDeclaration) string {
	returnType := cVoid
	if fn.Return != nil && strings.TrimSpace(fn.Return.Type) != "" {
		returnType = strings.TrimSpace(fn.Return.Type)
	}

	return returnType + " " + fn.Name + "(" + formatParamList(fn.Params) + ");\n"
}

// formatTypeDeclaration renders the C declaration of one type without its comment.
// Storage qualifiers prefix the declaration statement.
func formatTypeDeclaration(decl TypeDeclaration) (string, error) {
	var body string
	switch decl.Kind {
	case KindInt:
		body = "typedef int " + decl.Name + ";\n"
	case KindUnsigned:
		body = "typedef unsigned int " + decl.Name + ";\n"
	case KindEnum:
		body = formatEnumTypedef(decl, true)
	case KindStruct:
		body = formatStructTypedef(decl)
	case KindFunction:
		body = formatFunctionTypedef(decl)
	default:
		return "", fmt.Errorf("%w %q for type %q", ErrUnknownTypeKind, decl.Kind, decl.Name)
	}

	return formatTypePrefixes(decl.Prefixes) + body, nil
}
