package itembank

import (
	"encoding/json"
	"fmt"
	"os"

	"psymetric/internal/domain"
)

type bankFile struct {
	Version string                  `json:"version"`
	Items   []domain.AssessmentItem `json:"items"`
}

// LoadFile reads a bank definition from a JSON file. The file must pass the
// same shape validation as the built-in bank.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item bank %s: %w", path, err)
	}

	var f bankFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse item bank %s: %w", path, err)
	}

	bank, err := New(f.Version, f.Items)
	if err != nil {
		return nil, fmt.Errorf("validate item bank %s: %w", path, err)
	}
	return bank, nil
}
