// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import (
	"errors"
	"strings"
	"testing"
)

func TestSplitPointer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		typeSpelling string
		name         string
		wantType     string
		wantName     string
	}{
		{"int*", "count", "int", "*count"},
		{"int *", "count", "int", "*count"},
		{"const char *", "name", "const char", "*name"},
		{"char **", "argv", "char", "**argv"},
		{"char * *", "argv", "char", "**argv"},
		{"unsigned long", "size", "unsigned long", "size"},
		{"  int  ", "x", "int", "x"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.typeSpelling, func(t *testing.T) {
			t.Parallel()

			gotType, gotName := splitPointer(tc.typeSpelling, tc.name)
			if gotType != tc.wantType || gotName != tc.wantName {
				t.Fatalf("splitPointer(%q, %q) = %q, %q; want %q, %q",
					tc.typeSpelling, tc.name, gotType, gotName, tc.wantType, tc.wantName)
			}
		})
	}
}

func TestPointerRuleNeverLeavesTrailingMarker(t *testing.T) {
	t.Parallel()

	for _, typeSpelling := range []string{"int*", "int *", "void*", "widget_t  *", "char**"} {
		member := formatStructMember(StructMember{Name: "count", Type: typeSpelling})
		param := formatParam(Param{Name: "count", Type: typeSpelling})

		for _, rendered := range []string{member, param} {
			if strings.Contains(rendered, "* ") || !strings.Contains(rendered, "*count") {
				t.Fatalf("pointer marker not moved onto name for %q: %q", typeSpelling, rendered)
			}
		}
	}

	if got := formatStructMember(StructMember{Name: "count", Type: "int*"}); got != "int *count;" {
		t.Fatalf("struct member = %q, want %q", got, "int *count;")
	}

	if got := formatParam(Param{Name: "count", Type: "int*"}); got != "int *count" {
		t.Fatalf("param = %q, want %q", got, "int *count")
	}

	if got := formatStructMember(StructMember{Name: "count", Type: "int"}); got != "int count;" {
		t.Fatalf("plain member = %q, want %q", got, "int count;")
	}
}

func TestFormatTypePrefixesOrder(t *testing.T) {
	t.Parallel()

	all := []TypePrefix{PrefixConst, PrefixStatic, PrefixVolatile, PrefixInline}
	want := map[TypePrefix]int{PrefixStatic: 0, PrefixVolatile: 1, PrefixInline: 2, PrefixConst: 3}

	// every subset in every rotation of input order
	for mask := 0; mask < 1<<len(all); mask++ {
		var subset []TypePrefix
		for i, prefix := range all {
			if mask&(1<<i) != 0 {
				subset = append(subset, prefix)
			}
		}

		for shift := 0; shift < len(subset); shift++ {
			rotated := append(append([]TypePrefix{}, subset[shift:]...), subset[:shift]...)
			got := formatTypePrefixes(rotated)

			words := strings.Fields(got)
			if len(words) != len(subset) {
				t.Fatalf("prefixes %v rendered %q", rotated, got)
			}

			for i := 1; i < len(words); i++ {
				if want[TypePrefix(words[i-1])] > want[TypePrefix(words[i])] {
					t.Fatalf("prefixes %v rendered out of order: %q", rotated, got)
				}
			}

			if len(subset) > 0 && !strings.HasSuffix(got, " ") {
				t.Fatalf("prefixes %v must end with a space: %q", rotated, got)
			}
		}
	}

	if got := formatTypePrefixes([]TypePrefix{PrefixConst, PrefixStatic}); got != "static const " {
		t.Fatalf("prefixes = %q, want %q", got, "static const ")
	}

	if got := formatTypePrefixes(nil); got != "" {
		t.Fatalf("empty prefixes = %q", got)
	}
}

func TestFormatEnumTypedef(t *testing.T) {
	t.Parallel()

	one := int64(1)
	negative := int64(-4)
	decl := TypeDeclaration{
		Name: "Color",
		Kind: KindEnum,
		EnumMembers: []EnumMember{
			{Name: "RED", Value: &one, Description: "Primary red"},
			{Name: "GREEN"},
			{Name: "ERR", Value: &negative},
		},
	}

	withComments := formatEnumTypedef(decl, true)
	want := "typedef enum {\n" +
		"    RED = 1, /* Primary red */\n" +
		"    GREEN,\n" +
		"    ERR = -4,\n" +
		"} Color;\n"
	if withComments != want {
		t.Fatalf("enum with comments:\n%s\nwant:\n%s", withComments, want)
	}

	plain := formatEnumTypedef(decl, false)
	assertNotContains(t, plain, "/*")
	assertContains(t, plain, "    RED = 1,\n")

	lines := strings.Count(plain, "\n") - 2
	if lines != len(decl.EnumMembers) {
		t.Fatalf("enum member lines = %d, want %d", lines, len(decl.EnumMembers))
	}
}

func TestFormatStructTypedef(t *testing.T) {
	t.Parallel()

	got := formatStructTypedef(TypeDeclaration{
		Name: "point_t",
		Kind: KindStruct,
		StructMembers: []StructMember{
			{Name: "x", Type: "int"},
			{Name: "next", Type: "point_t*"},
		},
	})

	want := "typedef struct {\n    int x;\n    point_t *next;\n} point_t;\n"
	if got != want {
		t.Fatalf("struct:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatFunctionTypedef(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		decl TypeDeclaration
		want string
	}{
		{
			name: "defaults",
			decl: TypeDeclaration{Name: "handler_t", Kind: KindFunction},
			want: "typedef void (handler_t)(void);\n",
		},
		{
			name: "params",
			decl: TypeDeclaration{
				Name:       "isr_t",
				Kind:       KindFunction,
				FuncReturn: "int",
				FuncParams: []Param{
					{Name: "ctx", Type: "void *"},
					{Name: "id", Type: "unsigned int"},
				},
			},
			want: "typedef int (isr_t)(void *ctx, unsigned int id);\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := formatFunctionTypedef(tc.decl); got != tc.want {
				t.Fatalf("typedef = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatPrototype(t *testing.T) {
	t.Parallel()

	got := formatPrototype(FunctionDeclaration{Name: "get_color", Return: &ReturnValue{Type: "int"}})
	if got != "int get_color(void);\n" {
		t.Fatalf("prototype = %q", got)
	}

	got = formatPrototype(FunctionDeclaration{
		Name: "copy",
		Params: []Param{
			{Name: "dst", Type: "char*"},
			{Name: "src", Type: "const char *"},
			{Name: "len", Type: "size_t"},
		},
	})
	if got != "void copy(char *dst, const char *src, size_t len);\n" {
		t.Fatalf("prototype = %q", got)
	}
}

func TestFormatTypeDeclarationPrefixesAndKinds(t *testing.T) {
	t.Parallel()

	got, err := formatTypeDeclaration(TypeDeclaration{
		Name:     "counter_t",
		Kind:     KindUnsigned,
		Prefixes: []TypePrefix{PrefixVolatile, PrefixStatic},
	})
	if err != nil {
		t.Fatalf("formatTypeDeclaration: %v", err)
	}

	if got != "static volatile typedef unsigned int counter_t;\n" {
		t.Fatalf("declaration = %q", got)
	}

	got, err = formatTypeDeclaration(TypeDeclaration{Name: "status_t", Kind: KindInt})
	if err != nil {
		t.Fatalf("formatTypeDeclaration: %v", err)
	}

	if got != "typedef int status_t;\n" {
		t.Fatalf("declaration = %q", got)
	}
}

func TestFormatTypeDeclarationUnknownKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []TypeKind{"", "union", "float"} {
		_, err := formatTypeDeclaration(TypeDeclaration{Name: "bad_t", Kind: kind})
		if !errors.Is(err, ErrUnknownTypeKind) {
			t.Fatalf("kind %q: expected ErrUnknownTypeKind, got %v", kind, err)
		}
	}
}
