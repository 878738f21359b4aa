// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import "testing"

func testLinker() linker {
	index := BuildXRefIndex([]*ModuleDefinition{
		{
			CFilename: "widget.h",
			Types:     []TypeDeclaration{{Name: "Color"}, {Name: "widget_t"}, {Name: "widget"}},
		},
		{
			CFilename: "gadget.h",
			Functions: []FunctionDeclaration{{Name: "gadget_attach"}},
		},
	})

	return linker{index: index, module: "widget.h", ext: docExtension}
}

func TestLinkerLink(t *testing.T) {
	t.Parallel()

	l := testLinker()
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "same document",
			in:   "Uses Color values.",
			want: "Uses <<Color,`Color`>> values.",
		},
		{
			name: "other document",
			in:   "See gadget_attach.",
			want: "See xref:gadget_h.adoc#gadget_attach[`gadget_attach`].",
		},
		{
			name: "whole identifiers only",
			in:   "ColorMode and Colors differ from Color",
			want: "ColorMode and Colors differ from <<Color,`Color`>>",
		},
		{
			name: "prefix names are not substituted twice",
			in:   "widget_t wraps widget",
			want: "<<widget_t,`widget_t`>> wraps <<widget,`widget`>>",
		},
		{
			name: "repeated name",
			in:   "Color, Color",
			want: "<<Color,`Color`>>, <<Color,`Color`>>",
		},
		{
			name: "backtick span",
			in:   "call `Color` or `gadget_attach()` directly",
			want: "call `Color` or `gadget_attach()` directly",
		},
		{
			name: "unterminated backtick",
			in:   "a `Color",
			want: "a `Color",
		},
		{
			name: "lone underscore",
			in:   "a _ b _",
			want: `a \_ b \_`,
		},
		{
			name: "underscore inside identifier",
			in:   "snake_case (_)",
			want: "snake_case (_)",
		},
		{
			name: "non ascii",
			in:   "Größe Color",
			want: "Größe <<Color,`Color`>>",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := l.link(tc.in); got != tc.want {
				t.Fatalf("link(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestLinkerTypeRef(t *testing.T) {
	t.Parallel()

	l := testLinker()
	if got := l.typeRef(" widget_t "); got != "<<widget_t,`widget_t`>>" {
		t.Fatalf("typeRef = %q", got)
	}

	if got := l.typeRef("const char"); got != "`const char`" {
		t.Fatalf("typeRef = %q", got)
	}

	if got := l.typeRef("const widget_t"); got != "`const` <<widget_t,`widget_t`>>" {
		t.Fatalf("typeRef qualified = %q", got)
	}

	if got := l.typeRef("gadget_attach *"); got != "xref:gadget_h.adoc#gadget_attach[`gadget_attach`] `*`" {
		t.Fatalf("typeRef pointer = %q", got)
	}

	if got := l.typeRef("unsigned long long"); got != "`unsigned long long`" {
		t.Fatalf("typeRef plain = %q", got)
	}

	if got := l.typeRef(""); got != "" {
		t.Fatalf("typeRef empty = %q", got)
	}
}

func TestLinkerNilIndex(t *testing.T) {
	t.Parallel()

	l := linker{module: "a.h", ext: docExtension}
	if got := l.link("Color stays"); got != "Color stays" {
		t.Fatalf("link = %q", got)
	}
}
