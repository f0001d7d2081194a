package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>Senior Engineer</w:t><w:tab/><w:t>2019 - Present</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Skills:  Go, </w:t></w:r><w:r><w:t>Kubernetes</w:t></w:r></w:p>
</w:body>
</w:document>`

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractBytes_DOCX(t *testing.T) {
	data := buildZip(t, map[string]string{"word/document.xml": documentXML})

	doc, err := ExtractBytes(context.Background(), data, MimeDOCX, "cv.docx")
	require.NoError(t, err)

	assert.Equal(t, "cv.docx", doc.Filename)
	assert.Equal(t, MimeDOCX, doc.MimeType)
	assert.Equal(t, "Jane Doe\nSenior Engineer 2019 - Present\nSkills: Go, Kubernetes", doc.ExtractedText)
	assert.Equal(t, 9, doc.WordCount)
}

func TestExtractBytes_DOCXDetectedFromZip(t *testing.T) {
	data := buildZip(t, map[string]string{"word/document.xml": documentXML})

	doc, err := ExtractBytes(context.Background(), data, "application/zip", "upload.bin")
	require.NoError(t, err)
	assert.Equal(t, MimeDOCX, doc.MimeType)
}

func TestExtractBytes_ZipWithoutDocumentRejected(t *testing.T) {
	data := buildZip(t, map[string]string{"notes.txt": "hello"})

	_, err := ExtractBytes(context.Background(), data, "application/zip", "notes.zip")

	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	assert.Equal(t, "application/zip", extractErr.MimeType)
	assert.Contains(t, err.Error(), "unsupported mime type")
}

func TestExtractBytes_PlainText(t *testing.T) {
	doc, err := ExtractBytes(context.Background(), []byte("Jane  Doe\r\nGo developer"), "", "cv.txt")
	require.NoError(t, err)

	assert.Equal(t, MimePlain, doc.MimeType)
	assert.Equal(t, "Jane Doe\nGo developer", doc.ExtractedText)
	assert.Equal(t, 4, doc.WordCount)
}

func TestExtractBytes_PlainTextSniffed(t *testing.T) {
	doc, err := ExtractBytes(context.Background(), []byte("Plain words only"), "", "cv")
	require.NoError(t, err)
	assert.Equal(t, MimePlain, doc.MimeType)
}

func TestExtractBytes_InvalidUTF8Text(t *testing.T) {
	_, err := ExtractBytes(context.Background(), []byte{0xff, 0xfe, 'a'}, MimePlain, "bad.txt")

	var extractErr *ExtractError
	assert.True(t, errors.As(err, &extractErr))
}

func TestExtractBytes_CorruptPDF(t *testing.T) {
	_, err := ExtractBytes(context.Background(), []byte("%PDF-1.4 not really a pdf"), "", "cv.pdf")

	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	assert.Equal(t, MimePDF, extractErr.MimeType)
	assert.Equal(t, "failed to extract text", extractErr.Message)
}

func TestExtractBytes_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExtractBytes(ctx, []byte("text"), MimePlain, "cv.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Experienced Go engineer"), 0644))

	doc, err := ExtractFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "cv.txt", doc.Filename)
	assert.Equal(t, 3, doc.WordCount)
}

func TestExtractFile_NotFound(t *testing.T) {
	_, err := ExtractFile(context.Background(), "/nonexistent/cv.pdf")

	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
