package resume

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProcessUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text resume"), 0o644))

	p := NewProcessor(zap.NewNop())
	_, err := p.Process(context.Background(), path)

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestProcessCorruptPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	p := NewProcessor(zap.NewNop())
	_, err := p.Process(context.Background(), path)

	require.Error(t, err)
	// Corrupt input is an extraction failure, never a partial result and
	// never a generic processing failure.
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestProcessCorruptDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.docx")
	require.NoError(t, os.WriteFile(path, []byte("zip? no."), 0o644))

	p := NewProcessor(zap.NewNop())
	_, err := p.Process(context.Background(), path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractTextDispatch(t *testing.T) {
	_, err := ExtractText("resume.rtf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ExtractText("resume")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
