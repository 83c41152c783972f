// ABOUTME: Fitted pipeline artifact for laptop price inference
// ABOUTME: Loads encoding + regression weights from disk and scores feature vectors

package services

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Feature vector field names, fixed by the training process. The pipeline
// artifact must carry a weight for every one of these.
var (
	numericFeatures     = []string{"ram", "weight", "touchscreen", "ips", "ppi", "hdd", "ssd"}
	categoricalFeatures = []string{"company", "type_name", "cpu_brand", "gpu_brand", "os"}
)

// FeatureVector is the fixed-order engineered input the pipeline expects:
// company, type, ram, weight, touchscreen, ips, ppi, cpu, hdd, ssd, gpu, os.
type FeatureVector struct {
	Company     string
	TypeName    string
	RAM         float64
	Weight      float64
	Touchscreen float64 // 1 for Yes, 0 for No
	IPS         float64 // 1 for Yes, 0 for No
	PPI         float64
	CPUBrand    string
	HDD         float64
	SSD         float64
	GPUBrand    string
	OS          string
}

// Pipeline is a pre-fitted transform-and-predict artifact: a one-hot
// categorical encoding and linear regression weights over the engineered
// features, trained externally. It is loaded once at startup and is
// read-only afterwards, so it is safe to share across requests.
type Pipeline struct {
	Version         string                        `json:"version"`
	TargetTransform string                        `json:"target_transform"` // "log" or "none"
	Intercept       float64                       `json:"intercept"`
	Numeric         map[string]float64            `json:"numeric"`
	Categorical     map[string]map[string]float64 `json:"categorical"`
}

// LoadPipeline reads and validates a pipeline artifact file. Any failure
// here is fatal to the caller: a process without a pipeline must not serve.
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline artifact: %w", err)
	}

	var p Pipeline
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing pipeline artifact %s: %w", path, err)
	}

	if p.TargetTransform != "log" && p.TargetTransform != "none" {
		return nil, fmt.Errorf("pipeline artifact %s: unsupported target transform %q", path, p.TargetTransform)
	}
	for _, name := range numericFeatures {
		if _, ok := p.Numeric[name]; !ok {
			return nil, fmt.Errorf("pipeline artifact %s: missing numeric weight %q", path, name)
		}
	}
	for _, name := range categoricalFeatures {
		if len(p.Categorical[name]) == 0 {
			return nil, fmt.Errorf("pipeline artifact %s: missing categorical encoding %q", path, name)
		}
	}

	return &p, nil
}

// Predict runs the feature vector through the regression and applies the
// inverse target transform. A category the encoding has no weight for is a
// feature vector mismatch; the request fails but the process keeps serving.
func (p *Pipeline) Predict(fv FeatureVector) (float64, error) {
	score := p.Intercept

	for name, value := range map[string]float64{
		"ram":         fv.RAM,
		"weight":      fv.Weight,
		"touchscreen": fv.Touchscreen,
		"ips":         fv.IPS,
		"ppi":         fv.PPI,
		"hdd":         fv.HDD,
		"ssd":         fv.SSD,
	} {
		score += p.Numeric[name] * value
	}

	for name, value := range map[string]string{
		"company":   fv.Company,
		"type_name": fv.TypeName,
		"cpu_brand": fv.CPUBrand,
		"gpu_brand": fv.GPUBrand,
		"os":        fv.OS,
	} {
		weight, ok := p.Categorical[name][value]
		if !ok {
			return 0, fmt.Errorf("feature vector mismatch: no encoding for %s=%q", name, value)
		}
		score += weight
	}

	if p.TargetTransform == "log" {
		score = math.Exp(score)
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("pipeline produced a non-finite prediction")
	}
	return score, nil
}
