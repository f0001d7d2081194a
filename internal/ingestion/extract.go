// Package ingestion turns CV files into plain-text documents ready for analysis.
package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// Supported MIME types
const (
	MimePDF   = "application/pdf"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

// ExtractFile reads the file at path and extracts its text
func ExtractFile(ctx context.Context, path string) (types.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RawDocument{}, &ExtractError{Filename: filepath.Base(path), Message: "failed to read file", Cause: err}
	}
	return ExtractBytes(ctx, data, "", filepath.Base(path))
}

// ExtractBytes extracts text from an in-memory file. An empty mimeType is detected
// from the file name and content.
func ExtractBytes(ctx context.Context, data []byte, mimeType, filename string) (types.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return types.RawDocument{}, err
	}

	mime := normalizeMimeType(mimeType, filename, data)
	var (
		raw string
		err error
	)
	switch mime {
	case MimePDF:
		raw, err = extractPDF(data)
	case MimeDOCX:
		raw, err = extractDOCX(data)
	case MimePlain:
		if !utf8.Valid(data) {
			err = errors.New("text is not valid UTF-8")
		}
		raw = string(data)
	default:
		return types.RawDocument{}, &ExtractError{Filename: filename, MimeType: mime, Message: "unsupported mime type"}
	}
	if err != nil {
		return types.RawDocument{}, &ExtractError{Filename: filename, MimeType: mime, Message: "failed to extract text", Cause: err}
	}

	text := CleanText(raw)
	return types.RawDocument{
		Filename:      filename,
		MimeType:      mime,
		ExtractedText: text,
		WordCount:     CountWords(text),
	}, nil
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("word/document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return docxText(rc)
}

// docxText collects the text runs, starting a new line at every paragraph or break
// and a tab at every tab element.
func docxText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var buf strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				buf.WriteString("\t")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p", "br":
				buf.WriteString("\n")
			}
		}
	}
	return buf.String(), nil
}

func normalizeMimeType(mimeType, filename string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case MimePDF, MimeDOCX, MimePlain:
		return clean
	case "", "application/octet-stream", "application/zip":
	default:
		return clean
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt", ".text", ".md":
		return MimePlain
	}

	if isDOCX(data) {
		return MimeDOCX
	}
	sniffed := strings.Split(http.DetectContentType(data), ";")[0]
	if sniffed == "application/zip" && clean != "" {
		return clean
	}
	return sniffed
}

func isDOCX(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}
