package formfill

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSource(t *testing.T) {
	u, err := TextSource("the right eye is 20/40").Utterance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "the right eye is 20/40", u)
}

func TestFileSource_ReadsTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	require.NoError(t, os.WriteFile(path, []byte("patient's uncorrected vision in the right eye is 20/40\n"), 0o600))

	u, err := (&FileSource{Path: path}).Utterance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "patient's uncorrected vision in the right eye is 20/40", u)
}

func TestFileSource_RejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.wav")
	// RIFF/WAVE header: an audio capture accidentally handed over unconverted
	require.NoError(t, os.WriteFile(path, []byte("RIFF\x24\x00\x00\x00WAVEfmt \x10\x00\x00\x00"), 0o600))

	_, err := (&FileSource{Path: path}).Utterance(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := (&FileSource{Path: filepath.Join(t.TempDir(), "nope.txt")}).Utterance(context.Background())
	assert.Error(t, err)
}

func TestExtractFrom_TranscriptMatchesTypedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	require.NoError(t, os.WriteFile(path, []byte("right eye 20/40"), 0o600))

	x := NewForTesting(`{"vision": {"rightEye": {"uncorrected": "20/40"}}}`)

	fromFile, err := x.ExtractFrom(context.Background(), &FileSource{Path: path}, visionFields(), WithModel("m"))
	require.NoError(t, err)
	typed, err := x.Extract(context.Background(), "right eye 20/40", visionFields(), WithModel("m"))
	require.NoError(t, err)

	assert.Equal(t, typed.Fields, fromFile.Fields)
	assert.Equal(t, typed.Changed, fromFile.Changed)
}
