package reference

import (
	"encoding/json"
	"os"

	internalschemas "github.com/jonathan/cv-analyzer/internal/schemas"
	"github.com/jonathan/cv-analyzer/schemas"
)

type distributionFile struct {
	Scores []float64 `json:"scores"`
}

// LoadDistributionFile reads a score distribution JSON file ({"scores": [...]})
func LoadDistributionFile(path string) (*Distribution, error) {
	data, err := readValidated(path, schemas.ScoreDistribution)
	if err != nil {
		return nil, err
	}
	var f distributionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse distribution", Cause: err}
	}
	return NewDistribution(f.Scores), nil
}

// LoadInstitutionsFile reads an institution ranking JSON file ([{"name", "rank"}, ...])
func LoadInstitutionsFile(path string) (*InstitutionRanking, error) {
	data, err := readValidated(path, schemas.Institutions)
	if err != nil {
		return nil, err
	}
	var entries []RankedInstitution
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse institutions", Cause: err}
	}
	return NewInstitutionRanking(entries), nil
}

// LoadSnapshot loads whichever files are configured. An empty path leaves that source
// unavailable.
func LoadSnapshot(distributionPath, institutionsPath string) (Snapshot, error) {
	var snap Snapshot
	if distributionPath != "" {
		d, err := LoadDistributionFile(distributionPath)
		if err != nil {
			return Snapshot{}, err
		}
		snap.Distribution = d
	}
	if institutionsPath != "" {
		r, err := LoadInstitutionsFile(institutionsPath)
		if err != nil {
			return Snapshot{}, err
		}
		snap.Institutions = r
	}
	return snap, nil
}

func readValidated(path, schemaName string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	if err := internalschemas.Validate(schemaName, data); err != nil {
		return nil, &LoadError{Path: path, Message: "file does not match schema", Cause: err}
	}
	return data, nil
}
