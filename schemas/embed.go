// Package schemas embeds the JSON Schemas for the files the analyzer reads and writes.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var files embed.FS

// Schema file names
const (
	JobRequirements   = "job_requirements.schema.json"
	RawDocuments      = "raw_documents.schema.json"
	AnalysisResult    = "analysis_result.schema.json"
	ScoreDistribution = "score_distribution.schema.json"
	Institutions      = "institutions.schema.json"
)

// All lists every embedded schema
var All = []string{JobRequirements, RawDocuments, AnalysisResult, ScoreDistribution, Institutions}

// Read returns the content of an embedded schema
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("schema %s is not embedded: %w", name, err)
	}
	return data, nil
}
