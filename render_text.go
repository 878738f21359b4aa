// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import (
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// commentWrapWidth is the text width of generated C comment lines.
const commentWrapWidth = 80

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}

// wrapCommentText wraps plain text into comment lines of at most commentWrapWidth columns.
// Words longer than the width stay on their own line.
func wrapCommentText(text string) []string {
	text = sanitizeText(text)
	if text == "" {
		return nil
	}

	wrapped := wordwrap.WrapString(text, commentWrapWidth)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return lines
}

// commentBlock accumulates the body of one C block comment.
type commentBlock struct {
	lines []string
}

// text appends wrapped text lines.
func (block *commentBlock) text(value string) {
	block.lines = append(block.lines, wrapCommentText(value)...)
}

// separator appends an empty comment line.
func (block *commentBlock) separator() {
	block.lines = append(block.lines, "")
}

// String renders the comment with opening and closing markers.
func (block *commentBlock) String() string {
	var out strings.Builder
	out.WriteString("/*\n")
	for _, line := range block.lines {
		if line == "" {
			out.WriteString(" *\n")
			continue
		}

		out.WriteString(" * ")
		out.WriteString(line)
		out.WriteByte('\n')
	}

	out.WriteString(" */\n")
	return out.String()
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// normalizeAsciidocOutput collapses runs of blank lines and trims trailing
// whitespace everywhere. Listing bodies are stashed before this pass.
func normalizeAsciidocOutput(text string) string {
	text = normalizeLineEndings(text)
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	blank := false
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}

			blank = true
			continue
		}

		blank = false
		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// listingStash holds verbatim listing bodies while the surrounding document is normalized.
type listingStash struct {
	bodies []string
}

// put stores body and returns the single-line marker standing in for it.
func (stash *listingStash) put(body string) string {
	stash.bodies = append(stash.bodies, body)
	return listingMarker(len(stash.bodies) - 1)
}

// restore replaces every marker in text with its stored body.
func (stash *listingStash) restore(text string) string {
	if len(stash.bodies) == 0 {
		return text
	}

	pairs := make([]string, 0, 2*len(stash.bodies))
	for i, body := range stash.bodies {
		pairs = append(pairs, listingMarker(i), body)
	}

	return strings.NewReplacer(pairs...).Replace(text)
}

// listingMarker returns the placeholder of the i-th stashed listing.
func listingMarker(i int) string {
	return "\x00listing:" + strconv.Itoa(i) + "\x00"
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}

// escapeTableCell escapes AsciiDoc table cell separators.
func escapeTableCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}

// guardName derives the include guard macro from an output file name,
// for example "csi_defs.h" becomes "CSI_DEFS_H".
func guardName(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	if idx := strings.LastIndex(filename, "/"); idx >= 0 {
		filename = filename[idx+1:]
	}

	var out strings.Builder
	out.Grow(len(filename))
	for _, r := range strings.ToUpper(filename) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}

	return out.String()
}

// moduleSlug returns the documentation file stem of a module, for example
// "csi_defs.h" becomes "csi_defs_h".
func moduleSlug(cFilename string) string {
	return strings.ReplaceAll(strings.ToLower(cFilename), ".", "_")
}
