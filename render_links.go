// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import (
	"strings"
	"unicode"
)

// linker rewrites declared names in documentation prose into cross-references.
type linker struct {
	index *XRefIndex
	// module is the output filename of the document being rendered.
	module string
	// ext is the documentation file extension including the dot.
	ext string
}

// link performs one left-to-right tokenizing pass over text. Identifier tokens
// present in the index become links; text between backticks is copied as is.
// Emitted link markup is never scanned again.
func (l linker) link(text string) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	var out strings.Builder
	out.Grow(len(text))

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '`' {
			end := indexRune(runes, '`', i+1)
			if end < 0 {
				out.WriteString(string(runes[i:]))
				break
			}

			out.WriteString(string(runes[i : end+1]))
			i = end + 1
			continue
		}

		if !isIdentRune(r) {
			out.WriteRune(r)
			i++
			continue
		}

		start := i
		for i < len(runes) && isIdentRune(runes[i]) {
			i++
		}

		token := string(runes[start:i])
		switch {
		case l.index.Contains(token):
			out.WriteString(l.ref(token))
		case token == "_" && isSpaceAt(runes, start-1) && isSpaceAt(runes, i):
			out.WriteString("\\_")
		default:
			out.WriteString(token)
		}
	}

	return out.String()
}

// ref renders a link to a declared name. Names owned by the current module use
// an in-document reference; others point at the owning module document.
func (l linker) ref(name string) string {
	owner, ok := l.index.Owner(name)
	if !ok {
		return "`" + name + "`"
	}

	if owner == l.module {
		return "<<" + name + ",`" + name + "`>>"
	}

	return "xref:" + moduleSlug(owner) + l.ext + "#" + name + "[`" + name + "`]"
}

// typeRef renders a type spelling with every indexed identifier linked and
// the remaining text as inline code, so "const widget_t" keeps its qualifier.
func (l linker) typeRef(typeSpelling string) string {
	runes := []rune(strings.TrimSpace(typeSpelling))
	if len(runes) == 0 {
		return ""
	}

	var out, plain strings.Builder
	appendPart := func(part string) {
		if out.Len() > 0 {
			out.WriteByte(' ')
		}

		out.WriteString(part)
	}
	flush := func() {
		text := strings.TrimSpace(plain.String())
		plain.Reset()
		if text != "" {
			appendPart("`" + text + "`")
		}
	}

	for i := 0; i < len(runes); {
		if !isIdentRune(runes[i]) {
			plain.WriteRune(runes[i])
			i++
			continue
		}

		start := i
		for i < len(runes) && isIdentRune(runes[i]) {
			i++
		}

		token := string(runes[start:i])
		if !l.index.Contains(token) {
			plain.WriteString(token)
			continue
		}

		flush()
		appendPart(l.ref(token))
	}

	flush()
	return out.String()
}

// linkAll applies link to every paragraph.
func (l linker) linkAll(paragraphs []string) []string {
	if len(paragraphs) == 0 {
		return nil
	}

	out := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		out = append(out, l.link(paragraph))
	}

	return out
}

// isIdentRune reports whether r can be part of a C identifier.
func isIdentRune(r rune) bool {
	return r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// isSpaceAt reports whether position idx is whitespace or outside text bounds.
func isSpaceAt(runes []rune, idx int) bool {
	if idx < 0 || idx >= len(runes) {
		return true
	}

	return unicode.IsSpace(runes[idx])
}

// indexRune returns the position of target at or after from, or -1.
func indexRune(runes []rune, target rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}

	return -1
}
