package formfill

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// UtteranceSource abstracts where the user's words come from. Typed input
// and speech-to-text transcripts are treated identically downstream.
type UtteranceSource interface {
	Utterance(ctx context.Context) (string, error)
}

// TextSource is an utterance typed directly by the user.
type TextSource string

func (t TextSource) Utterance(ctx context.Context) (string, error) {
	return string(t), nil
}

// FileSource reads a transcript written to disk by an external
// speech-to-text stage. The content is sniffed before use so a mis-wired
// audio blob or other binary payload can never reach the prompt.
type FileSource struct {
	Path string
}

func (f *FileSource) Utterance(ctx context.Context) (string, error) {
	mtype, err := mimetype.DetectFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("transcript %s: %w", f.Path, err)
	}
	if !isTextual(mtype) {
		return "", fmt.Errorf("transcript %s: unsupported content type %s", f.Path, mtype.String())
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("transcript %s: %w", f.Path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// isTextual walks the MIME hierarchy looking for a text/plain ancestor.
func isTextual(m *mimetype.MIME) bool {
	for t := m; t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}
	return false
}
