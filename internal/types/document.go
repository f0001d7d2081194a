// Package types provides type definitions for structured data used throughout the cv-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RawDocument is the plain-text form of an uploaded CV as produced by the text extractor.
type RawDocument struct {
	Filename      string `json:"filename"`
	MimeType      string `json:"mime_type"`
	ExtractedText string `json:"extracted_text"`
	WordCount     int    `json:"word_count"`
}
