package formfill

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// IsEmptyValue reports whether an extracted value carries no information:
// nil, a blank or whitespace-only string, a zero-length array, or an object
// whose every property is itself empty.
func IsEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x) == ""
	case []any:
		return len(x) == 0
	case map[string]any:
		for _, e := range x {
			if !IsEmptyValue(e) {
				return false
			}
		}
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Map:
		for _, k := range rv.MapKeys() {
			if !IsEmptyValue(rv.MapIndex(k).Interface()) {
				return false
			}
		}
		return true
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil() || IsEmptyValue(rv.Elem().Interface())
	}
	return false
}

// valueChanged decides whether next is a meaningful change over prev. The
// rule set is asymmetric on purpose: an extraction that found nothing must
// never register as a change, while genuinely new information is detected
// even when the prior value was blank. Trimmed string comparison absorbs
// the numeric-vs-string and whitespace noise of natural-language output.
func valueChanged(prev, next any) bool {
	if IsEmptyValue(next) {
		return false
	}

	pa, prevIsSlice := asSlice(prev)
	na, nextIsSlice := asSlice(next)
	if prevIsSlice && nextIsSlice {
		if len(pa) != len(na) {
			return true
		}
		return !cmp.Equal(pa, na) // order-sensitive deep equality
	}

	pm, prevIsMap := asMap(prev)
	nm, nextIsMap := asMap(next)
	if prevIsMap && nextIsMap {
		return !cmp.Equal(pm, nm)
	}

	ps := strings.TrimSpace(stringify(prev))
	ns := strings.TrimSpace(stringify(next))
	return ps != ns && ns != ""
}

// diffFields compares two FieldSets of identical cardinality and order and
// returns the display names of fields whose value meaningfully changed.
func diffFields(prev, next FieldSet) []string {
	changed := make([]string, 0, len(next))
	for i := range next {
		if i >= len(prev) {
			break
		}
		if valueChanged(prev[i].Value, next[i].Value) {
			changed = append(changed, next[i].displayName())
		}
	}
	return changed
}

func asSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if v == nil || rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, m != nil
	}
	return nil, false
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
