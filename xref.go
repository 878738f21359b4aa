// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/csigen

package csigen

import "sort"

// XRefIndex is the set of linkable type and function names across all modules.
// It is built once per run and only read afterwards.
type XRefIndex struct {
	owners     map[string]string
	collisions map[string]struct{}
}

// BuildXRefIndex collects every type and function name declared by modules.
// Each name maps to the output filename of the first module declaring it.
func BuildXRefIndex(modules []*ModuleDefinition) *XRefIndex {
	index := &XRefIndex{
		owners:     make(map[string]string),
		collisions: make(map[string]struct{}),
	}

	for _, module := range modules {
		if module == nil {
			continue
		}

		for _, decl := range module.Types {
			index.add(decl.Name, module.CFilename)
		}

		for _, fn := range module.Functions {
			index.add(fn.Name, module.CFilename)
		}
	}

	return index
}

// add registers one declared name.
func (index *XRefIndex) add(name, owner string) {
	if name == "" {
		return
	}

	if _, exists := index.owners[name]; exists {
		index.collisions[name] = struct{}{}
		return
	}

	index.owners[name] = owner
}

// Contains reports whether name is linkable.
func (index *XRefIndex) Contains(name string) bool {
	if index == nil {
		return false
	}

	_, ok := index.owners[name]
	return ok
}

// Owner returns the output filename of the module declaring name.
func (index *XRefIndex) Owner(name string) (string, bool) {
	if index == nil {
		return "", false
	}

	owner, ok := index.owners[name]
	return owner, ok
}

// Len returns the number of distinct linkable names.
func (index *XRefIndex) Len() int {
	if index == nil {
		return 0
	}

	return len(index.owners)
}

// Names returns all linkable names in sorted order.
func (index *XRefIndex) Names() []string {
	if index == nil {
		return nil
	}

	return sortedKeys(index.owners)
}

// Collisions returns names declared more than once in sorted order.
// Such names share one anchor and link to the first declaration.
func (index *XRefIndex) Collisions() []string {
	if index == nil {
		return nil
	}

	return sortedKeys(index.collisions)
}

// sortedKeys returns deterministic sorted keys of a string-keyed map.
func sortedKeys[V any](values map[string]V) []string {
	out := make([]string, 0, len(values))
	for key := range values {
		out = append(out, key)
	}

	sort.Strings(out)
	return out
}
