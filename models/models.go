// ABOUTME: Data models for API responses
// ABOUTME: JSON-serializable structures shared by server and CLI client

package models

// FeatureOptions is the set of valid values per categorical input field,
// derived once from the feature reference snapshot at startup.
type FeatureOptions struct {
	Companies        []string `json:"companies"`
	TypeNames        []string `json:"types"`
	CPUBrands        []string `json:"cpu_brands"`
	GPUBrands        []string `json:"gpu_brands"`
	OperatingSystems []string `json:"operating_systems"`
}

// InputConstraints mirrors the fixed allowed values for the non-categorical
// fields so form clients can constrain their controls.
type InputConstraints struct {
	RAMOptions    []int    `json:"ram_options"`
	HDDOptions    []int    `json:"hdd_options"`
	SSDOptions    []int    `json:"ssd_options"`
	Resolutions   []string `json:"resolutions"`
	ScreenSizeMin float64  `json:"screen_size_min"`
	ScreenSizeMax float64  `json:"screen_size_max"`
	WeightMin     float64  `json:"weight_min"`
	WeightMax     float64  `json:"weight_max"`
}

// FeaturesResponse is the /api/v1/features payload.
type FeaturesResponse struct {
	Options     FeatureOptions   `json:"options"`
	Constraints InputConstraints `json:"constraints"`
}

// PredictionResponse is the /api/v1/predict payload: the predicted price
// plus an echo of the validated input specification.
type PredictionResponse struct {
	PredictedPrice float64    `json:"predicted_price"`
	Currency       string     `json:"currency"`
	Specifications LaptopSpec `json:"specifications"`
}

// HealthResponse is the /api/v1/health payload.
type HealthResponse struct {
	Status          string `json:"status"`
	PipelineLoaded  bool   `json:"pipeline_loaded"`
	PipelineVersion string `json:"pipeline_version,omitempty"`
	Version         string `json:"version"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details string       `json:"details,omitempty"`
	Code    int          `json:"code"`
	Fields  []FieldError `json:"fields,omitempty"`
}
