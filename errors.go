// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import "errors"

var (
	// ErrReadDefinitionFile is returned when an API or module file cannot be read.
	ErrReadDefinitionFile = errors.New("read definition file")
	// ErrDecodeDefinition is returned when YAML decoding of a definition fails.
	ErrDecodeDefinition = errors.New("decode definition")
	// ErrValidateDefinition is returned when a decoded definition misses required fields.
	ErrValidateDefinition = errors.New("validate definition")
	// ErrUnknownTypeKind is returned when a type declaration carries an unsupported kind.
	ErrUnknownTypeKind = errors.New("unknown type declaration kind")
	// ErrUnsupportedTarget is returned when requested target language has no backend.
	ErrUnsupportedTarget = errors.New("unsupported target language")
	// ErrUnknownOptimization is returned when documentation optimization mode is not supported.
	ErrUnknownOptimization = errors.New("unknown documentation optimization")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseTemplate is returned when documentation template parsing fails.
	ErrParseTemplate = errors.New("parse documentation template")
	// ErrExecuteTemplate is returned when documentation template execution fails.
	ErrExecuteTemplate = errors.New("execute documentation template")
	// ErrDuplicateOutput is returned when two modules resolve to the same output file.
	ErrDuplicateOutput = errors.New("duplicate output path")
	// ErrWriteOutput is returned when a generated file or directory cannot be written.
	ErrWriteOutput = errors.New("write output")
)
