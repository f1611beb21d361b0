package formfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmptyValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		empty bool
	}{
		{"nil", nil, true},
		{"blank string", "", true},
		{"whitespace string", "   \t\n", true},
		{"empty array", []any{}, true},
		{"empty typed slice", []string{}, true},
		{"object of empties", map[string]any{"a": "", "b": nil}, true},
		{"empty object", map[string]any{}, true},
		{"nested empties", map[string]any{"a": map[string]any{"b": " "}}, true},
		{"non-blank string", "x", false},
		{"zero number", float64(0), false},
		{"false bool", false, false},
		{"array with element", []any{""}, false},
		{"object with value", map[string]any{"a": "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, IsEmptyValue(tt.value))
		})
	}
}

func TestValueChanged_Asymmetry(t *testing.T) {
	// blank → filled is a change
	assert.True(t, valueChanged("", "John"))
	// filled → blank is never a change: extraction that finds nothing must
	// not register, let alone erase
	assert.False(t, valueChanged("John", ""))
	assert.False(t, valueChanged("John", nil))
	assert.False(t, valueChanged([]any{"a"}, []any{}))
}

func TestValueChanged_Arrays(t *testing.T) {
	assert.False(t, valueChanged([]any{"a", "b"}, []any{"a", "b"}))
	assert.True(t, valueChanged([]any{"a"}, []any{"a", "b"}))
	assert.True(t, valueChanged([]any{"a", "b"}, []any{"b", "a"})) // order-sensitive
	assert.True(t, valueChanged(nil, []any{"a"}))
}

func TestValueChanged_Objects(t *testing.T) {
	assert.False(t, valueChanged(
		map[string]any{"a": "1", "b": []any{"x"}},
		map[string]any{"a": "1", "b": []any{"x"}},
	))
	assert.True(t, valueChanged(
		map[string]any{"a": "1"},
		map[string]any{"a": "2"},
	))
}

func TestValueChanged_ScalarNoise(t *testing.T) {
	// representational noise is not a change
	assert.False(t, valueChanged("20", float64(20)))
	assert.False(t, valueChanged(" 20/40 ", "20/40"))
	assert.False(t, valueChanged(true, "true"))
	// genuinely new information is
	assert.True(t, valueChanged("20/40", "20/30"))
	assert.True(t, valueChanged(nil, "20/40"))
}

func TestDiffFields_LabelsAndFallback(t *testing.T) {
	prev := FieldSet{
		{Path: "a", Label: "Alpha", Value: ""},
		{Path: "b", Value: "old"},
		{Path: "c", Label: "Gamma", Value: "same"},
	}
	next := prev.Clone()
	next[0].Value = "new"
	next[1].Value = "newer"

	changed := diffFields(prev, next)
	assert.Equal(t, []string{"Alpha", "b"}, changed) // path stands in for a missing label
}
