// ABOUTME: Feature reference store loader
// ABOUTME: Derives the immutable feature option set from the training data snapshot

package services

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/pricewise/laptop-price-api/models"
)

// featureSnapshot mirrors the on-disk reference file: the categorical
// columns of the training dataset, values possibly unsorted or duplicated.
type featureSnapshot struct {
	Company  []string `json:"company"`
	TypeName []string `json:"type_name"`
	CPUBrand []string `json:"cpu_brand"`
	GPUBrand []string `json:"gpu_brand"`
	OS       []string `json:"os"`
}

// LoadFeatureOptions reads the feature reference snapshot and normalizes it
// into the sorted, de-duplicated option set published to clients. Load
// failures are fatal to the caller.
func LoadFeatureOptions(path string) (*models.FeatureOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading feature snapshot: %w", err)
	}

	var snap featureSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing feature snapshot %s: %w", path, err)
	}

	opts := &models.FeatureOptions{
		Companies:        normalize(snap.Company),
		TypeNames:        normalize(snap.TypeName),
		CPUBrands:        normalize(snap.CPUBrand),
		GPUBrands:        normalize(snap.GPUBrand),
		OperatingSystems: normalize(snap.OS),
	}

	for _, col := range []struct {
		name   string
		values []string
	}{
		{"company", opts.Companies},
		{"type_name", opts.TypeNames},
		{"cpu_brand", opts.CPUBrands},
		{"gpu_brand", opts.GPUBrands},
		{"os", opts.OperatingSystems},
	} {
		if len(col.values) == 0 {
			return nil, fmt.Errorf("feature snapshot %s: column %q has no values", path, col.name)
		}
	}

	return opts, nil
}

// normalize sorts and de-duplicates a column, dropping empty values.
func normalize(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
