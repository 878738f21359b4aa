// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

// Optimization selects documentation output flavour.
type Optimization string

const (
	// OptimizationPlain emits documents without title anchors and back-links.
	OptimizationPlain Optimization = "plain"
	// OptimizationHTML emits title anchors and back-links for hyperlinked output.
	OptimizationHTML Optimization = "html"
)

// TypeKind is the declaration kind of a TypeDeclaration.
type TypeKind string

const (
	KindInt      TypeKind = "int"
	KindUnsigned TypeKind = "unsigned"
	KindEnum     TypeKind = "enum"
	KindStruct   TypeKind = "struct"
	KindFunction TypeKind = "function"
)

// TypePrefix is one storage qualifier applied to a type declaration.
type TypePrefix string

const (
	PrefixConst    TypePrefix = "const"
	PrefixStatic   TypePrefix = "static"
	PrefixVolatile TypePrefix = "volatile"
	PrefixInline   TypePrefix = "inline"
)

// Verbatim is an opaque code payload emitted exactly as written.
// Renderers never parse or reformat it.
type Verbatim string

// APIDefinition is the top-level definition shared by every module.
type APIDefinition struct {
	// DocumentationTitle is the title of the documentation index.
	DocumentationTitle string `yaml:"c-documentation-title" validate:"required"`
	// Boilerplate is appended to every generated header comment.
	Boilerplate string `yaml:"boilerplate"`
	// TopHeadingLevel offsets every documentation heading level.
	TopHeadingLevel int `yaml:"top-heading-level" validate:"gte=0,lte=4"`
	// Optimization selects html or plain documentation output.
	Optimization Optimization `yaml:"adoc-optimization" validate:"omitempty,oneof=html plain"`
	// Modules lists module definition files relative to the API file.
	Modules []string `yaml:"modules" validate:"required,min=1,dive,required"`
	// Notes are free-form paragraphs for the documentation index.
	Notes []string `yaml:"notes"`
	// CSpecificNotes are C-only paragraphs for the documentation index.
	CSpecificNotes []string `yaml:"c-specific-notes"`
}

// moduleFile is the on-disk envelope of a module definition.
type moduleFile struct {
	Module ModuleDefinition `yaml:"module"`
}

// ModuleDefinition describes one header file and its documentation page.
type ModuleDefinition struct {
	CFilename      string                `yaml:"c-filename" validate:"required"`
	Name           string                `yaml:"name" validate:"required"`
	Description    string                `yaml:"description" validate:"required"`
	Notes          []string              `yaml:"notes"`
	CSpecificNotes []string              `yaml:"c-specific-notes"`
	IncludeFiles   []IncludeFile         `yaml:"c-include-files" validate:"dive"`
	NoAssembler    bool                  `yaml:"no-assembler"`
	Types          []TypeDeclaration     `yaml:"c-type-declarations" validate:"dive"`
	Functions      []FunctionDeclaration `yaml:"functions" validate:"dive"`
	Macros         []MacroDeclaration    `yaml:"macros" validate:"dive"`
	Definitions    []CodeFragment        `yaml:"c-definitions" validate:"dive"`
}

// IncludeFile is one #include directive.
type IncludeFile struct {
	Filename string `yaml:"filename" validate:"required"`
	// SystemHeader selects <file> over "file".
	SystemHeader bool `yaml:"system-header"`
}

// TypeDeclaration is a tagged variant over TypeKind values.
// Only the fields of the matching kind are consulted.
type TypeDeclaration struct {
	Name          string         `yaml:"name" validate:"required"`
	Description   string         `yaml:"description"`
	Kind          TypeKind       `yaml:"type" validate:"required,oneof=int unsigned enum struct function"`
	Prefixes      []TypePrefix   `yaml:"type-prefixes" validate:"dive,oneof=const static volatile inline"`
	EnumMembers   []EnumMember   `yaml:"enum-members" validate:"required_if=Kind enum,dive"`
	StructMembers []StructMember `yaml:"struct-members" validate:"required_if=Kind struct,dive"`
	FuncReturn    string         `yaml:"func-typedef-retval"`
	FuncParams    []Param        `yaml:"func-typedef-params" validate:"dive"`
}

// EnumMember is one enumerator. Value is nil when the compiler assigns it.
type EnumMember struct {
	Name        string `yaml:"name" validate:"required"`
	Value       *int64 `yaml:"value"`
	Description string `yaml:"description"`
}

// StructMember is one struct field.
type StructMember struct {
	Name string `yaml:"name" validate:"required"`
	Type string `yaml:"type" validate:"required"`
}

// Param is one named and typed parameter of a function, macro or callable type.
type Param struct {
	Name        string   `yaml:"name" validate:"required"`
	Type        string   `yaml:"type" validate:"required"`
	Description string   `yaml:"description"`
	Notes       []string `yaml:"notes"`
}

// ReturnValue describes what a function or macro yields.
type ReturnValue struct {
	Type        string `yaml:"type" validate:"required"`
	Description string `yaml:"description"`
}

// FunctionDeclaration is one C function prototype.
type FunctionDeclaration struct {
	Name        string       `yaml:"name" validate:"required"`
	Description string       `yaml:"description" validate:"required"`
	Notes       []string     `yaml:"notes"`
	Params      []Param      `yaml:"c-params" validate:"dive"`
	Return      *ReturnValue `yaml:"c-return-value"`
}

// MacroDeclaration is a preprocessor macro whose body is emitted verbatim.
type MacroDeclaration struct {
	Name        string       `yaml:"name" validate:"required"`
	Description string       `yaml:"description" validate:"required"`
	Code        Verbatim     `yaml:"code" validate:"required"`
	Notes       []string     `yaml:"notes"`
	Params      []Param      `yaml:"c-params" validate:"dive"`
	Return      *ReturnValue `yaml:"c-return-value"`
}

// CodeFragment is a raw code block emitted verbatim under a label comment.
type CodeFragment struct {
	Comment  string   `yaml:"comment" validate:"required"`
	Fragment Verbatim `yaml:"fragment" validate:"required"`
}
