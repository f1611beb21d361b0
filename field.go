package formfill

import "fmt"

// FieldType enumerates the form-friendly field kinds a descriptor may carry.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldDate     FieldType = "date"
	FieldCheckbox FieldType = "checkbox"
	FieldRadio    FieldType = "radio"
	FieldNumber   FieldType = "number"
)

// FieldDescriptor describes one target input of a data-entry form. Path is
// the unique dot-notation key the extraction payload is matched against;
// Value is a scalar, []any, or map[string]any depending on Type.
type FieldDescriptor struct {
	ID       string    `json:"id"`
	Path     string    `json:"path"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label"`
	Value    any       `json:"value,omitempty"`
	Options  []string  `json:"options,omitempty"`
	Required bool      `json:"required,omitempty"`
}

// FieldSet is the ordered collection of descriptors for one form session.
// It is owned by the hosting form; the pipeline only ever returns fresh
// copies and never mutates the caller's slice.
type FieldSet []FieldDescriptor

// Clone returns a deep copy. Descriptor values of map or slice shape are
// copied recursively so the caller and the pipeline never share storage.
func (fs FieldSet) Clone() FieldSet {
	if fs == nil {
		return nil
	}
	out := make(FieldSet, len(fs))
	for i, f := range fs {
		f.Value = copyValue(f.Value)
		if f.Options != nil {
			f.Options = append([]string(nil), f.Options...)
		}
		out[i] = f
	}
	return out
}

// Validate checks the FieldSet invariants: every path non-empty and unique.
func (fs FieldSet) Validate() error {
	seen := make(map[string]struct{}, len(fs))
	for _, f := range fs {
		if f.Path == "" {
			return fmt.Errorf("field %q: path is empty", f.ID)
		}
		if _, dup := seen[f.Path]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicatePath, f.Path)
		}
		seen[f.Path] = struct{}{}
	}
	return nil
}

// Labels returns the display labels in FieldSet order, falling back to the
// path for unlabeled fields.
func (fs FieldSet) Labels() []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.displayName()
	}
	return out
}

func (f FieldDescriptor) displayName() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Path
}

func copyValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[k] = copyValue(e)
		}
		return m
	case []any:
		s := make([]any, len(x))
		for i, e := range x {
			s[i] = copyValue(e)
		}
		return s
	case []string:
		return append([]string(nil), x...)
	default:
		return v
	}
}
