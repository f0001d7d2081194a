package ingestion

import (
	"encoding/json"
	"os"
	"path/filepath"

	internalschemas "github.com/jonathan/cv-analyzer/internal/schemas"
	"github.com/jonathan/cv-analyzer/internal/types"
	"github.com/jonathan/cv-analyzer/schemas"
)

// LoadManifest reads a JSON array of already-extracted documents. The file is
// validated against the raw documents schema; missing word counts are computed.
func LoadManifest(path string) ([]types.RawDocument, error) {
	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExtractError{Filename: name, MimeType: "application/json", Message: "failed to read manifest", Cause: err}
	}
	if err := internalschemas.Validate(schemas.RawDocuments, data); err != nil {
		return nil, &ExtractError{Filename: name, MimeType: "application/json", Message: "manifest does not match schema", Cause: err}
	}

	var docs []types.RawDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, &ExtractError{Filename: name, MimeType: "application/json", Message: "failed to parse manifest", Cause: err}
	}
	for i := range docs {
		if docs[i].MimeType == "" {
			docs[i].MimeType = MimePlain
		}
		if docs[i].WordCount == 0 {
			docs[i].WordCount = CountWords(docs[i].ExtractedText)
		}
	}
	return docs, nil
}
