// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package placeholder fills {a.b.c} placeholders from nested data.
//
// Substitution is a single pass: replacement text is never scanned again,
// so data containing braces cannot inject further placeholders. A
// placeholder stays verbatim when its path does not resolve, or when it
// resolves to a falsy value ("", 0, false, nil).
//
//	placeholder.Substitute("Name: {cmd.name}", map[string]any{
//	    "cmd": map[string]any{"name": "clear"},
//	}) // "Name: clear"
package placeholder

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
)

var pattern = regexp.MustCompile(`\{([^{}\s]+)\}`)

// Substitute replaces every {path} in template with the value found by
// walking data along the dot-separated path.
func Substitute(template string, data map[string]any) string {
	return pattern.ReplaceAllStringFunc(template, func(match string) string {
		v, ok := Lookup(data, match[1:len(match)-1])
		if !ok || falsy(v) {
			return match
		}
		return fmt.Sprint(v)
	})
}

// Lookup walks data through each segment of path. It fails as soon as a
// segment is missing or the current value is not a string-keyed map.
func Lookup(data any, path string) (any, bool) {
	cur := data
	for _, seg := range strings.Split(path, ".") {
		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func child(v any, key string) (any, bool) {
	switch m := v.(type) {
	case map[string]any:
		c, ok := m[key]
		return c, ok
	case map[string]string:
		c, ok := m[key]
		return c, ok
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	c := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !c.IsValid() {
		return nil, false
	}
	return c.Interface(), true
}

func falsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
