package formfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFields() FieldSet {
	return FieldSet{
		{ID: "f1", Path: "vision.rightEye.uncorrected", Type: FieldText, Label: "Uncorrected VA (right)"},
		{ID: "f2", Path: "age", Type: FieldNumber, Label: "Age", Value: float64(44)},
		{ID: "f3", Path: "followUp", Type: FieldCheckbox, Label: "Follow-up"},
		{ID: "f4", Path: "eye", Type: FieldSelect, Label: "Eye", Options: []string{"left", "right", "both"}},
	}
}

func TestApplyValues_ExactMatchReplaces(t *testing.T) {
	out := applyValues(testFields(), FlatValueMap{
		"vision.rightEye.uncorrected": "20/40",
		"eye":                         "right",
	})
	assert.Equal(t, "20/40", out[0].Value)
	assert.Equal(t, "right", out[3].Value)
	assert.Equal(t, float64(44), out[1].Value) // untouched
}

func TestApplyValues_NoInvention(t *testing.T) {
	fields := testFields()
	out := applyValues(fields, FlatValueMap{
		"comments":             "extraneous model chatter",
		"vision.leftEye.sharp": "fabricated",
	})
	require.Len(t, out, len(fields)) // cardinality unchanged
	for i := range out {
		assert.Equal(t, fields[i].Path, out[i].Path)
		assert.Equal(t, fields[i].Value, out[i].Value)
	}
}

func TestApplyValues_EmptyKeepsPriorValue(t *testing.T) {
	out := applyValues(testFields(), FlatValueMap{
		"age": "",
	})
	assert.Equal(t, float64(44), out[1].Value)

	out = applyValues(testFields(), FlatValueMap{"age": nil})
	assert.Equal(t, float64(44), out[1].Value)
}

func TestApplyValues_DoesNotMutateInput(t *testing.T) {
	fields := testFields()
	_ = applyValues(fields, FlatValueMap{"vision.rightEye.uncorrected": "20/40"})
	assert.Nil(t, fields[0].Value)
}

func TestCoerceValue_NumberField(t *testing.T) {
	v, ok := coerceValue(FieldNumber, "20")
	require.True(t, ok)
	assert.Equal(t, float64(20), v)

	v, ok = coerceValue(FieldNumber, float64(1.5))
	require.True(t, ok)
	assert.Equal(t, 1.5, v)

	_, ok = coerceValue(FieldNumber, "twenty")
	assert.False(t, ok)
}

func TestCoerceValue_CheckboxField(t *testing.T) {
	v, ok := coerceValue(FieldCheckbox, "true")
	require.True(t, ok)
	assert.Equal(t, true, v)

	_, ok = coerceValue(FieldCheckbox, "yes please")
	assert.False(t, ok)
}

func TestCoerceValue_TextAbsorbsScalars(t *testing.T) {
	v, ok := coerceValue(FieldText, float64(20))
	require.True(t, ok)
	assert.Equal(t, "20", v)

	_, ok = coerceValue(FieldText, map[string]any{"not": "scalar"})
	assert.False(t, ok)
}

func TestCoerceValue_SelectAllowsMulti(t *testing.T) {
	v, ok := coerceValue(FieldSelect, []any{"left", "right"})
	require.True(t, ok)
	assert.Equal(t, []any{"left", "right"}, v)
}

func TestApplyValues_ShapeMismatchKeepsPrior(t *testing.T) {
	out := applyValues(testFields(), FlatValueMap{
		"age": "not a number",
	})
	assert.Equal(t, float64(44), out[1].Value)
}
