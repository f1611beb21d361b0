package formfill

// FlatValueMap maps dot-notation paths to extracted leaf values. It is an
// ephemeral intermediate between parsing and field updating.
type FlatValueMap map[string]any

// Flatten converts a nested object into a FlatValueMap. Plain objects
// recurse with the key appended to the dotted path; arrays, scalars and
// nulls become leaves at the accumulated path. Arrays are never flattened
// element-wise. An already-flat object maps to itself.
func Flatten(obj map[string]any) FlatValueMap {
	out := make(FlatValueMap, len(obj))
	flattenInto(out, "", obj)
	return out
}

func flattenInto(dst FlatValueMap, parent string, obj map[string]any) {
	for key, v := range obj {
		full := joinPath(parent, key)
		if nested, ok := v.(map[string]any); ok && nested != nil {
			flattenInto(dst, full, nested)
			continue
		}
		dst[full] = v
	}
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
