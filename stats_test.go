package formfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDryRun_NoGatewayCall(t *testing.T) {
	gw := &stubGateway{response: `{}`}
	x := NewWithLogger(gw, nil, nil)

	stats, err := x.DryRun(visionFields(), "right eye 20/40", "")
	require.NoError(t, err)
	assert.Equal(t, 0, gw.calls)
	assert.Equal(t, 3, stats.FieldCount)
	assert.Greater(t, stats.PromptChars, 0)
	assert.Greater(t, stats.InputTokens, 0)
	assert.Greater(t, stats.OutputTokens, 0)
}

func TestDryRun_EmptyFields(t *testing.T) {
	x := NewForTesting(`{}`)
	_, err := x.DryRun(nil, "words", "")
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestEstimateTokensFromText(t *testing.T) {
	assert.Equal(t, 0, EstimateTokensFromText(""))
	assert.Equal(t, 1, EstimateTokensFromText("abc"))
	assert.Equal(t, 3, EstimateTokensFromText("twelve chars"))
}
