// ABOUTME: Prediction service mapping a validated laptop spec to a price
// ABOUTME: Derives engineered features, scores the pipeline, rounds to cents

package services

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cockroachdb/apd/v3"

	"github.com/pricewise/laptop-price-api/models"
)

const currency = "USD"

// PredictionService turns validated specification records into prices.
// It holds only a shared reference to the immutable pipeline, so a single
// instance serves all concurrent requests.
type PredictionService struct {
	pipeline *Pipeline
}

func NewPredictionService(pipeline *Pipeline) *PredictionService {
	return &PredictionService{pipeline: pipeline}
}

// CalculatePPI computes pixels per inch from a WIDTHxHEIGHT resolution
// string and the diagonal screen size in inches.
func CalculatePPI(resolution string, screenSize float64) (float64, error) {
	width, height, err := models.ParseResolution(resolution)
	if err != nil {
		return 0, err
	}
	if screenSize <= 0 {
		return 0, fmt.Errorf("screen size must be positive, got %.2f", screenSize)
	}
	diagonal := math.Sqrt(float64(width*width + height*height))
	return diagonal / screenSize, nil
}

// boolFlag encodes the Yes/No form values the way the training data did.
func boolFlag(value string) float64 {
	if value == "Yes" {
		return 1
	}
	return 0
}

// Predict maps a validated spec to a price. The spec must have passed
// models validation first; nil fields here are a programming error and
// surface as an inference failure rather than a panic.
func (s *PredictionService) Predict(spec models.LaptopSpec) (*models.PredictionResponse, error) {
	if spec.RAM == nil || spec.Weight == nil || spec.ScreenSize == nil || spec.HDD == nil || spec.SSD == nil {
		return nil, fmt.Errorf("specification has unset numeric fields")
	}

	ppi, err := CalculatePPI(spec.Resolution, *spec.ScreenSize)
	if err != nil {
		return nil, fmt.Errorf("deriving ppi: %w", err)
	}

	fv := FeatureVector{
		Company:     spec.Company,
		TypeName:    spec.TypeName,
		RAM:         float64(*spec.RAM),
		Weight:      *spec.Weight,
		Touchscreen: boolFlag(spec.Touchscreen),
		IPS:         boolFlag(spec.IPS),
		PPI:         ppi,
		CPUBrand:    spec.CPU,
		HDD:         float64(*spec.HDD),
		SSD:         float64(*spec.SSD),
		GPUBrand:    spec.GPU,
		OS:          spec.OS,
	}

	price, err := s.pipeline.Predict(fv)
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}

	rounded, err := roundToCents(price)
	if err != nil {
		return nil, fmt.Errorf("rounding prediction: %w", err)
	}

	slog.Debug("Prediction computed", "company", spec.Company, "type", spec.TypeName, "price", rounded)

	return &models.PredictionResponse{
		PredictedPrice: rounded,
		Currency:       currency,
		Specifications: spec,
	}, nil
}

// PipelineVersion reports the loaded artifact version for health checks.
func (s *PredictionService) PipelineVersion() string {
	return s.pipeline.Version
}

// roundToCents rounds a price to two decimal places using decimal
// arithmetic so displayed prices do not carry float artifacts.
func roundToCents(price float64) (float64, error) {
	var d apd.Decimal
	if _, err := d.SetFloat64(price); err != nil {
		return 0, err
	}

	ctx := apd.BaseContext.WithPrecision(34)
	var rounded apd.Decimal
	if _, err := ctx.Quantize(&rounded, &d, -2); err != nil {
		return 0, err
	}

	out, err := rounded.Float64()
	if err != nil {
		return 0, err
	}
	return out, nil
}
