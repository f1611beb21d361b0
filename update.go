package formfill

import "strconv"

// applyValues produces a new FieldSet with every exact path match replaced
// by its extracted value. Extracted keys that match no declared field are
// silently dropped so the model can never inject structure the form did not
// ask for. Empty extracted values are skipped as well: finding nothing must
// not blank out data a human already entered.
func applyValues(fields FieldSet, values FlatValueMap) FieldSet {
	out := fields.Clone()
	index := make(map[string]int, len(out))
	for i, f := range out {
		index[f.Path] = i
	}
	for path, raw := range values {
		i, ok := index[path]
		if !ok {
			continue
		}
		if IsEmptyValue(raw) {
			continue
		}
		v, ok := coerceValue(out[i].Type, raw)
		if !ok {
			continue // shape mismatch keeps the prior value
		}
		out[i].Value = v
	}
	return out
}

// coerceValue validates an extracted value against the declared field type
// at write time, absorbing the representational noise of model output
// (numbers quoted as strings, booleans spelled out). A value that cannot be
// reconciled with the type is rejected rather than stored.
func coerceValue(ft FieldType, v any) (any, bool) {
	switch ft {
	case FieldNumber:
		switch x := v.(type) {
		case float64, float32, int, int32, int64:
			return v, true
		case string:
			if n, err := strconv.ParseFloat(x, 64); err == nil {
				return n, true
			}
			return nil, false
		}
		return nil, false
	case FieldCheckbox:
		switch x := v.(type) {
		case bool:
			return x, true
		case string:
			if b, err := strconv.ParseBool(x); err == nil {
				return b, true
			}
			return nil, false
		}
		return nil, false
	case FieldText, FieldTextarea, FieldDate, FieldRadio:
		if s, ok := scalarString(v); ok {
			return s, true
		}
		return nil, false
	case FieldSelect:
		// single choice or multi-select array of choices
		if s, ok := scalarString(v); ok {
			return s, true
		}
		if arr, ok := asSlice(v); ok {
			return arr, true
		}
		return nil, false
	default:
		// unknown custom types pass through untouched
		return v, true
	}
}

func scalarString(v any) (string, bool) {
	switch v.(type) {
	case string, float64, float32, int, int32, int64, bool:
		return stringify(v), true
	}
	return "", false
}
