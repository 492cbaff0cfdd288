package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	apperrors "kdcli/internal/errors"
)

// ReferenceRatesFile is the YAML shape of an external base-rate table:
//
//	reference_year: 2024
//	rates:
//	  CDI: 0.1365
//	  TLP: 0.0650
type ReferenceRatesFile struct {
	ReferenceYear int                `yaml:"reference_year"`
	Rates         map[string]float64 `yaml:"rates"`
}

// LoadReferenceRates reads an external base-rate table. Rates are
// annual decimals keyed by canonical index id; the caller overlays them
// on the built-in table.
func LoadReferenceRates(path string) (*ReferenceRatesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference rates: %w", err)
	}

	var file ReferenceRatesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewConfigError("parse reference rates", err).WithContext("path", path)
	}
	if len(file.Rates) == 0 {
		return nil, apperrors.NewConfigError("no reference rates defined", nil).WithContext("path", path)
	}
	for index, rate := range file.Rates {
		// Rates are decimal fractions; a value above 1 almost always
		// means a percent value slipped in (13.65 instead of 0.1365).
		if rate < 0 || rate > 1 {
			return nil, apperrors.NewConfigError(
				fmt.Sprintf("rate for %s out of range: %v", index, rate), nil).WithContext("path", path)
		}
	}

	return &file, nil
}
