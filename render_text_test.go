// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import (
	"strings"
	"testing"
)

func TestWrapCommentTextWidth(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("interface definition ", 20)
	lines := wrapCommentText(text)
	if len(lines) < 2 {
		t.Fatalf("expected wrapped lines, got %d", len(lines))
	}

	for _, line := range lines {
		if len(line) > commentWrapWidth {
			t.Fatalf("line longer than %d columns: %q", commentWrapWidth, line)
		}

		if strings.HasSuffix(line, " ") {
			t.Fatalf("line has trailing space: %q", line)
		}
	}

	if got := strings.Join(lines, " "); got != sanitizeText(text) {
		t.Fatalf("wrapping changed words:\n%s\nwant:\n%s", got, sanitizeText(text))
	}
}

func TestWrapCommentTextLongWordStaysWhole(t *testing.T) {
	t.Parallel()

	word := strings.Repeat("x", commentWrapWidth+20)
	lines := wrapCommentText("see " + word + " end")

	found := false
	for _, line := range lines {
		if line == word {
			found = true
		}
	}

	if !found {
		t.Fatalf("long word was split or merged: %q", lines)
	}
}

func TestWrapCommentTextEmpty(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "\n\t"} {
		if lines := wrapCommentText(input); lines != nil {
			t.Fatalf("wrapCommentText(%q) = %q, want nil", input, lines)
		}
	}
}

func TestCommentBlockString(t *testing.T) {
	t.Parallel()

	var block commentBlock
	block.text("First  line\ntext.")
	block.separator()
	block.text("@return : ok")

	want := "/*\n * First line text.\n *\n * @return : ok\n */\n"
	if got := block.String(); got != want {
		t.Fatalf("comment = %q, want %q", got, want)
	}

	var empty commentBlock
	if got := empty.String(); got != "/*\n */\n" {
		t.Fatalf("empty comment = %q", got)
	}
}

func TestGuardName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"widget.h":          "WIDGET_H",
		"csi_defs.h":        "CSI_DEFS_H",
		"include/csi-io.h":  "CSI_IO_H",
		`include\win32.h`:   "WIN32_H",
		"Mixed.Case.Header": "MIXED_CASE_HEADER",
	}

	for input, want := range cases {
		if got := guardName(input); got != want {
			t.Fatalf("guardName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestModuleSlugAndDocPath(t *testing.T) {
	t.Parallel()

	if got := moduleSlug("CSI_Defs.h"); got != "csi_defs_h" {
		t.Fatalf("moduleSlug = %q", got)
	}

	if got := ModuleDocPath("widget.h"); got != "modules/widget_h.adoc" {
		t.Fatalf("ModuleDocPath = %q", got)
	}
}

func TestNormalizeAsciidocOutput(t *testing.T) {
	t.Parallel()

	input := "\n\n= Title  \n\n\n\ntext\t\n----\n\n\n----\nend\n\n"
	want := "= Title\n\ntext\n----\n\n----\nend"

	if got := normalizeAsciidocOutput(input); got != want {
		t.Fatalf("normalized:\n%q\nwant:\n%q", got, want)
	}
}

func TestNormalizeAsciidocOutputCRLF(t *testing.T) {
	t.Parallel()

	got := normalizeAsciidocOutput("a\r\n\r\n\r\nb\rc")
	if got != "a\n\nb\nc" {
		t.Fatalf("normalized = %q", got)
	}
}

func TestListingStashKeepsBodiesVerbatim(t *testing.T) {
	t.Parallel()

	var stash listingStash
	first := stash.put("#define A 1\n\n\n#define B 2  ")
	second := stash.put("x\t")

	text := "----\n" + first + "\n----\n\n\n\n----\n" + second + "\n----"
	got := stash.restore(normalizeAsciidocOutput(text))

	want := "----\n#define A 1\n\n\n#define B 2  \n----\n\n----\nx\t\n----"
	if got != want {
		t.Fatalf("restored:\n%q\nwant:\n%q", got, want)
	}

	var empty listingStash
	if got := empty.restore("plain"); got != "plain" {
		t.Fatalf("empty stash changed text: %q", got)
	}
}

func TestEscapeTableCell(t *testing.T) {
	t.Parallel()

	if got := escapeTableCell("a|b"); got != `a\|b` {
		t.Fatalf("escapeTableCell = %q", got)
	}
}
