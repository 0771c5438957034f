package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finodex/internal/config"
	"finodex/internal/domain"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, s.stderr, s.err
}

func ocrConfig() config.OCRConfig {
	return config.OCRConfig{Tesseract: "tesseract", Languages: "deu+eng"}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	e := NewExtractor(ocrConfig())
	_, err := e.Extract(context.Background(), []byte("x"), domain.FileFormat("gif"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExtractImageRunsTesseract(t *testing.T) {
	runner := &stubRunner{stdout: []byte("  Kreditangebot über 250.000 EUR  \n")}
	e := NewExtractorWithRunner(ocrConfig(), runner)

	out, err := e.Extract(context.Background(), []byte{0x89, 0x50}, domain.FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, "Kreditangebot über 250.000 EUR", out.Text)
	assert.Equal(t, domain.FormatPNG, out.Format)

	assert.Equal(t, "tesseract", runner.gotName)
	require.Len(t, runner.gotArgs, 4)
	assert.Equal(t, "stdout", runner.gotArgs[1])
	assert.Equal(t, "-l", runner.gotArgs[2])
	assert.Equal(t, "deu+eng", runner.gotArgs[3])
}

func TestExtractImageTessdataDir(t *testing.T) {
	cfg := ocrConfig()
	cfg.TessdataDir = "/opt/tessdata"
	runner := &stubRunner{stdout: []byte("text")}
	e := NewExtractorWithRunner(cfg, runner)

	_, err := e.Extract(context.Background(), []byte{1}, domain.FormatJPG)
	require.NoError(t, err)
	require.Len(t, runner.gotArgs, 6)
	assert.Equal(t, "--tessdata-dir", runner.gotArgs[4])
	assert.Equal(t, "/opt/tessdata", runner.gotArgs[5])
}

func TestExtractImageTesseractFailure(t *testing.T) {
	runner := &stubRunner{stderr: []byte("boom"), err: errors.New("exit status 1")}
	e := NewExtractorWithRunner(ocrConfig(), runner)

	_, err := e.Extract(context.Background(), []byte{1}, domain.FormatPNG)
	assert.ErrorIs(t, err, domain.ErrNoReadableText)
}

func TestExtractImageEmptyOutput(t *testing.T) {
	runner := &stubRunner{stdout: []byte("   \n\t ")}
	e := NewExtractorWithRunner(ocrConfig(), runner)

	_, err := e.Extract(context.Background(), []byte{1}, domain.FormatPNG)
	assert.ErrorIs(t, err, domain.ErrNoReadableText)
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestExtractDOCX(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Kreditangebot</w:t></w:r><w:r><w:t> der Musterbank</w:t></w:r></w:p>
    <w:p><w:r><w:t>Kreditbetrag: 250.000 EUR</w:t></w:r></w:p>
  </w:body>
</w:document>`

	e := NewExtractor(ocrConfig())
	out, err := e.Extract(context.Background(), buildDOCX(t, docXML), domain.FormatDOCX)
	require.NoError(t, err)
	assert.Contains(t, out.Text, "Kreditangebot der Musterbank")
	assert.Contains(t, out.Text, "Kreditbetrag: 250.000 EUR")
	assert.Empty(t, out.Warnings)
}

func TestExtractDOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/other.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	e := NewExtractor(ocrConfig())
	_, err = e.Extract(context.Background(), buf.Bytes(), domain.FormatDOCX)
	assert.ErrorIs(t, err, domain.ErrNoReadableText)
}

func TestExtractDOCXNotAZip(t *testing.T) {
	e := NewExtractor(ocrConfig())
	_, err := e.Extract(context.Background(), []byte("plain text, no container"), domain.FormatDOCX)
	assert.ErrorIs(t, err, domain.ErrNoReadableText)
}

func TestExtractPDFGarbage(t *testing.T) {
	e := NewExtractor(ocrConfig())
	_, err := e.Extract(context.Background(), []byte("%PDF-not-really"), domain.FormatPDF)
	assert.Error(t, err)
}
