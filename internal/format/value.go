// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/rigcon/internal/ui/styles"
)

// =============================================================================
// VALUE CATEGORIES
// =============================================================================

// Category is the rendering class of a log argument. Classify tries the
// categories in declaration order and stops at the first match.
type Category int

const (
	CategoryNull Category = iota
	CategoryUndefined
	CategorySequence
	CategoryDateTime
	CategoryPattern
	CategoryNamedStructured
	CategoryPlainStructured
	CategoryCallable
	CategoryNumeric
	CategoryBoolean
	CategorySymbolic
	CategoryOther
)

var categoryNames = [...]string{
	"null", "undefined", "sequence", "datetime", "pattern", "named-structured",
	"plain-structured", "callable", "numeric", "boolean", "symbolic", "other",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// undefinedValue is the type of Undefined.
type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// Undefined marks an argument that was deliberately left without a value.
// It renders as the "undefined" label, distinct from nil ("null").
var Undefined any = undefinedValue{}

// Symbol is a unique symbolic token. It renders as Symbol(<description>).
type Symbol string

func (s Symbol) String() string { return "Symbol(" + string(s) + ")" }

const anonymousName = "anonymous"

var (
	timeType   = reflect.TypeOf(time.Time{})
	regexpType = reflect.TypeOf((*regexp.Regexp)(nil))
)

// Classify returns the category v renders under.
func Classify(v any) Category {
	if isNil(v) {
		return CategoryNull
	}
	if _, ok := v.(undefinedValue); ok {
		return CategoryUndefined
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array:
		return CategorySequence
	case rv.Type() == timeType || (rv.Kind() == reflect.Pointer && rv.Type().Elem() == timeType):
		return CategoryDateTime
	case rv.Type() == regexpType:
		return CategoryPattern
	case isStructured(rv) && structuredName(rv) != "":
		return CategoryNamedStructured
	case isStructured(rv):
		return CategoryPlainStructured
	case rv.Kind() == reflect.Func:
		return CategoryCallable
	case isNumeric(v, rv):
		return CategoryNumeric
	case rv.Kind() == reflect.Bool:
		return CategoryBoolean
	}
	if _, ok := v.(Symbol); ok {
		return CategorySymbolic
	}
	return CategoryOther
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// isBig reports values from math/big, which are numbers even though they
// are implemented as structs.
func isBig(v any) bool {
	switch v.(type) {
	case *big.Int, *big.Float, *big.Rat:
		return true
	}
	return false
}

func isStructured(rv reflect.Value) bool {
	if isBig(rv.Interface()) {
		return false
	}
	t := rv.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct || t.Kind() == reflect.Map
}

// structuredName returns the declared type name of a struct or map, without
// generic type arguments. Unnamed types return "".
func structuredName(rv reflect.Value) string {
	t := rv.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return ""
	}
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return anonymousName
	}
	return name
}

func isNumeric(v any, rv reflect.Value) bool {
	if isBig(v) {
		return true
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// funcName returns the short name of the function held by rv. Closures and
// method values the runtime cannot name come back as "anonymous".
func funcName(rv reflect.Value) string {
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return anonymousName
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || isClosureName(name) {
		return anonymousName
	}
	return name
}

// isClosureName matches the runtime's func1, func2, ... closure names.
func isClosureName(name string) bool {
	rest, ok := strings.CutPrefix(name, "func")
	if !ok || rest == "" {
		return false
	}
	_, err := strconv.Atoi(rest)
	return err == nil
}

// =============================================================================
// FORMATTER
// =============================================================================

// DateLayout is how time values are shown in log output.
const DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// Formatter renders arbitrary values to styled text.
type Formatter struct {
	styler *styles.Styler
}

// NewFormatter creates a formatter that styles through s.
func NewFormatter(s *styles.Styler) *Formatter {
	return &Formatter{styler: s}
}

// Render returns the display text for v.
func (f *Formatter) Render(v any) string {
	switch Classify(v) {
	case CategoryNull:
		return f.styler.Bold("null")
	case CategoryUndefined:
		return f.styler.Foreground("undefined", styles.Undefined)
	case CategorySequence, CategoryPlainStructured:
		return serialize(v)
	case CategoryDateTime:
		return f.styler.Foreground(asTime(v).Format(DateLayout), styles.Date)
	case CategoryPattern:
		return f.styler.Foreground("/"+v.(*regexp.Regexp).String()+"/", styles.Pattern)
	case CategoryNamedStructured:
		return f.styler.Foreground("[class "+structuredName(reflect.ValueOf(v))+"]", styles.Special)
	case CategoryCallable:
		return f.styler.Foreground("[function "+funcName(reflect.ValueOf(v))+"]", styles.Special)
	case CategoryNumeric:
		return f.styler.Foreground(numberText(v), styles.Number)
	case CategoryBoolean:
		return f.styler.Foreground(strconv.FormatBool(reflect.ValueOf(v).Bool()), styles.Boolean)
	case CategorySymbolic:
		return f.styler.Foreground(v.(Symbol).String(), styles.Symbol)
	default:
		return fmt.Sprint(v)
	}
}

// RenderAll renders each argument and joins the results with single spaces.
func (f *Formatter) RenderAll(args []any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = f.Render(arg)
	}
	return strings.Join(parts, " ")
}

// RenderTinted is RenderAll with every run of unstyled values rendered in
// c. Values with a category color keep it, and text after them is still
// in c, since each styled value ends with a full reset.
func (f *Formatter) RenderTinted(args []any, c lipgloss.TerminalColor) string {
	var parts, run []string
	flush := func() {
		if len(run) > 0 {
			parts = append(parts, f.styler.Foreground(strings.Join(run, " "), c))
			run = run[:0]
		}
	}
	for _, arg := range args {
		switch Classify(arg) {
		case CategorySequence, CategoryPlainStructured, CategoryOther:
			run = append(run, f.Render(arg))
		default:
			flush()
			parts = append(parts, f.Render(arg))
		}
	}
	flush()
	return strings.Join(parts, " ")
}

func asTime(v any) time.Time {
	if p, ok := v.(*time.Time); ok {
		return *p
	}
	return v.(time.Time)
}

func numberText(v any) string {
	switch n := v.(type) {
	case *big.Float:
		return n.Text('g', -1)
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return fmt.Sprint(v)
}

// serialize writes v as compact JSON. Values JSON cannot encode (channels,
// functions inside a record) fall back to Go's default formatting.
func serialize(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
