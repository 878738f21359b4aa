// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LoadFile reads the top-level API definition and every module it references.
// Module paths are resolved relative to the API file directory.
func LoadFile(apiPath string) (*APIDefinition, []*ModuleDefinition, error) {
	data, err := os.ReadFile(apiPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %q: %w", ErrReadDefinitionFile, apiPath, err)
	}

	api, err := DecodeAPI(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", apiPath, err)
	}

	baseDir := filepath.Dir(apiPath)
	modules := make([]*ModuleDefinition, 0, len(api.Modules))
	for _, ref := range api.Modules {
		modulePath := ref
		if !filepath.IsAbs(modulePath) {
			modulePath = filepath.Join(baseDir, filepath.FromSlash(ref))
		}

		moduleData, err := os.ReadFile(modulePath)
		if err != nil {
			return nil, nil, fmt.Errorf("%w %q: %w", ErrReadDefinitionFile, modulePath, err)
		}

		module, err := DecodeModule(moduleData)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", modulePath, err)
		}

		modules = append(modules, module)
	}

	return api, modules, nil
}

// DecodeAPI decodes and validates a top-level API definition document.
func DecodeAPI(data []byte) (*APIDefinition, error) {
	var api APIDefinition
	if err := decodeStrict(data, &api); err != nil {
		return nil, err
	}

	if err := validateDefinition(&api); err != nil {
		return nil, err
	}

	return &api, nil
}

// DecodeModule decodes and validates one module definition document.
// The document holds the module under a top-level "module" key.
func DecodeModule(data []byte) (*ModuleDefinition, error) {
	var file moduleFile
	if err := decodeStrict(data, &file); err != nil {
		return nil, err
	}

	if err := validateDefinition(&file.Module); err != nil {
		return nil, err
	}

	return &file.Module, nil
}

// decodeStrict decodes one YAML document and rejects unknown keys.
func decodeStrict(data []byte, target any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrDecodeDefinition)
		}

		return fmt.Errorf("%w: %w", ErrDecodeDefinition, err)
	}

	return nil
}

// definitionValidator checks structural constraints declared in struct tags.
// Field names in errors follow YAML keys.
var definitionValidator = newDefinitionValidator()

// newDefinitionValidator creates a validator reporting YAML key names.
func newDefinitionValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return v
}

// validateDefinition validates a decoded definition tree.
func validateDefinition(target any) error {
	if err := definitionValidator.Struct(target); err != nil {
		return fmt.Errorf("%w: %w", ErrValidateDefinition, err)
	}

	return nil
}
