// ABOUTME: Specification record submitted for a price prediction
// ABOUTME: Carries field-level validation against feature options and fixed constraints

package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pricewise/laptop-price-api/config"
)

// LaptopSpec is the full set of laptop attributes submitted for a prediction.
// Numeric fields are pointers so a missing field is distinguishable from a
// legitimate zero (hdd and ssd both allow 0).
type LaptopSpec struct {
	Company     string   `json:"company"`
	TypeName    string   `json:"type"`
	RAM         *int     `json:"ram"`
	Weight      *float64 `json:"weight"`
	Touchscreen string   `json:"touchscreen"`
	IPS         string   `json:"ips"`
	ScreenSize  *float64 `json:"screen_size"`
	Resolution  string   `json:"resolution"`
	CPU         string   `json:"cpu"`
	HDD         *int     `json:"hdd"`
	SSD         *int     `json:"ssd"`
	GPU         string   `json:"gpu"`
	OS          string   `json:"os"`
}

// FieldError describes a single invalid or missing field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates all field errors for one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid specification: " + strings.Join(parts, "; ")
}

// ParseResolution splits a WIDTHxHEIGHT string into its two dimensions.
func ParseResolution(res string) (width, height int, err error) {
	parts := strings.Split(res, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("resolution must be in WIDTHxHEIGHT format, got %q", res)
	}
	width, err = strconv.Atoi(parts[0])
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("resolution width must be a positive integer, got %q", parts[0])
	}
	height, err = strconv.Atoi(parts[1])
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("resolution height must be a positive integer, got %q", parts[1])
	}
	return width, height, nil
}

// Validate checks every field against the published feature options and the
// fixed input constraints. All failures are collected so the caller can fix
// the whole request in one pass. Returns nil when the spec is valid.
func (s *LaptopSpec) Validate(opts *FeatureOptions, cons *config.Constraints) *ValidationError {
	var errs []FieldError
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	checkMember := func(field, value string, allowed []string) {
		if value == "" {
			add(field, "is required")
			return
		}
		if !slices.Contains(allowed, value) {
			add(field, fmt.Sprintf("%q is not a known value", value))
		}
	}

	checkMember("company", s.Company, opts.Companies)
	checkMember("type", s.TypeName, opts.TypeNames)
	checkMember("cpu", s.CPU, opts.CPUBrands)
	checkMember("gpu", s.GPU, opts.GPUBrands)
	checkMember("os", s.OS, opts.OperatingSystems)
	checkMember("touchscreen", s.Touchscreen, []string{"No", "Yes"})
	checkMember("ips", s.IPS, []string{"No", "Yes"})

	if s.RAM == nil {
		add("ram", "is required")
	} else if !slices.Contains(cons.RAMOptions, *s.RAM) {
		add("ram", fmt.Sprintf("%d GB is not an allowed RAM size", *s.RAM))
	}

	if s.HDD == nil {
		add("hdd", "is required")
	} else if !slices.Contains(cons.HDDOptions, *s.HDD) {
		add("hdd", fmt.Sprintf("%d GB is not an allowed HDD size", *s.HDD))
	}

	if s.SSD == nil {
		add("ssd", "is required")
	} else if !slices.Contains(cons.SSDOptions, *s.SSD) {
		add("ssd", fmt.Sprintf("%d GB is not an allowed SSD size", *s.SSD))
	}

	if s.Weight == nil {
		add("weight", "is required")
	} else if *s.Weight < cons.WeightMin || *s.Weight > cons.WeightMax {
		add("weight", fmt.Sprintf("must be between %.2f and %.2f kg", cons.WeightMin, cons.WeightMax))
	}

	if s.ScreenSize == nil {
		add("screen_size", "is required")
	} else if *s.ScreenSize < cons.ScreenSizeMin || *s.ScreenSize > cons.ScreenSizeMax {
		add("screen_size", fmt.Sprintf("must be between %.1f and %.1f inches", cons.ScreenSizeMin, cons.ScreenSizeMax))
	}

	if s.Resolution == "" {
		add("resolution", "is required")
	} else if _, _, err := ParseResolution(s.Resolution); err != nil {
		add("resolution", err.Error())
	} else if !slices.Contains(cons.Resolutions, s.Resolution) {
		add("resolution", fmt.Sprintf("%q is not a supported resolution", s.Resolution))
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: errs}
}
