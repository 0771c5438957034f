package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"finodex/internal/domain"
)

type wordDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    wordBody `xml:"body"`
}

type wordBody struct {
	Paragraphs []wordParagraph `xml:"p"`
}

type wordParagraph struct {
	Runs []wordRun `xml:"r"`
}

type wordRun struct {
	Text string `xml:"t"`
}

// extractDOCX reads word/document.xml out of the DOCX container and joins
// the paragraph runs. Structural oddities are collected as warnings; only
// a missing or unreadable document part fails the call.
func extractDOCX(data []byte) (string, []string, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("%w: reading docx container: %v", domain.ErrNoReadableText, err)
	}

	var documentFile *zip.File
	for _, f := range zipReader.File {
		if f.Name == "word/document.xml" {
			documentFile = f
			break
		}
	}
	if documentFile == nil {
		return "", nil, fmt.Errorf("%w: document.xml not found in docx", domain.ErrNoReadableText)
	}

	xmlFile, err := documentFile.Open()
	if err != nil {
		return "", nil, fmt.Errorf("%w: opening document.xml: %v", domain.ErrNoReadableText, err)
	}
	defer xmlFile.Close()

	xmlData, err := io.ReadAll(xmlFile)
	if err != nil {
		return "", nil, fmt.Errorf("%w: reading document.xml: %v", domain.ErrNoReadableText, err)
	}

	var warnings []string
	var doc wordDocument
	if err := xml.Unmarshal(xmlData, &doc); err != nil {
		return "", nil, fmt.Errorf("%w: parsing document.xml: %v", domain.ErrNoReadableText, err)
	}
	if len(doc.Body.Paragraphs) == 0 {
		warnings = append(warnings, "document body contains no paragraphs")
	}

	var b strings.Builder
	for _, para := range doc.Body.Paragraphs {
		for _, run := range para.Runs {
			b.WriteString(run.Text)
		}
		b.WriteString("\n")
	}
	return b.String(), warnings, nil
}
