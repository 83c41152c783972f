package models

import (
	"strings"
	"testing"

	"github.com/pricewise/laptop-price-api/config"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func testOptions() *FeatureOptions {
	return &FeatureOptions{
		Companies:        []string{"Acer", "Apple", "Dell", "HP", "Lenovo"},
		TypeNames:        []string{"Gaming", "Notebook", "Ultrabook"},
		CPUBrands:        []string{"AMD Processor", "Intel Core i5", "Intel Core i7"},
		GPUBrands:        []string{"AMD", "Intel", "Nvidia"},
		OperatingSystems: []string{"Mac", "Others/No OS/Linux", "Windows"},
	}
}

func validSpec() LaptopSpec {
	return LaptopSpec{
		Company:     "Dell",
		TypeName:    "Notebook",
		RAM:         intPtr(8),
		Weight:      floatPtr(1.5),
		Touchscreen: "No",
		IPS:         "Yes",
		ScreenSize:  floatPtr(15.6),
		Resolution:  "1920x1080",
		CPU:         "Intel Core i5",
		HDD:         intPtr(0),
		SSD:         intPtr(256),
		GPU:         "Intel",
		OS:          "Windows",
	}
}

func TestValidate_ValidSpec(t *testing.T) {
	cons := config.DefaultConstraints()
	spec := validSpec()

	if err := spec.Validate(testOptions(), &cons); err != nil {
		t.Errorf("Expected valid spec, got %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	cons := config.DefaultConstraints()

	tests := []struct {
		field  string
		mutate func(*LaptopSpec)
	}{
		{"company", func(s *LaptopSpec) { s.Company = "" }},
		{"type", func(s *LaptopSpec) { s.TypeName = "" }},
		{"ram", func(s *LaptopSpec) { s.RAM = nil }},
		{"weight", func(s *LaptopSpec) { s.Weight = nil }},
		{"touchscreen", func(s *LaptopSpec) { s.Touchscreen = "" }},
		{"ips", func(s *LaptopSpec) { s.IPS = "" }},
		{"screen_size", func(s *LaptopSpec) { s.ScreenSize = nil }},
		{"resolution", func(s *LaptopSpec) { s.Resolution = "" }},
		{"cpu", func(s *LaptopSpec) { s.CPU = "" }},
		{"hdd", func(s *LaptopSpec) { s.HDD = nil }},
		{"ssd", func(s *LaptopSpec) { s.SSD = nil }},
		{"gpu", func(s *LaptopSpec) { s.GPU = "" }},
		{"os", func(s *LaptopSpec) { s.OS = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)

			err := spec.Validate(testOptions(), &cons)
			if err == nil {
				t.Fatalf("Expected validation error for missing %s", tt.field)
			}
			if len(err.Fields) != 1 {
				t.Fatalf("Expected exactly 1 field error, got %d: %v", len(err.Fields), err)
			}
			if err.Fields[0].Field != tt.field {
				t.Errorf("Expected error on field %s, got %s", tt.field, err.Fields[0].Field)
			}
			if err.Fields[0].Message != "is required" {
				t.Errorf("Expected required message, got %q", err.Fields[0].Message)
			}
		})
	}
}

func TestValidate_OutOfRangeFields(t *testing.T) {
	cons := config.DefaultConstraints()

	tests := []struct {
		name   string
		field  string
		mutate func(*LaptopSpec)
	}{
		{"unknown company", "company", func(s *LaptopSpec) { s.Company = "Commodore" }},
		{"unknown type", "type", func(s *LaptopSpec) { s.TypeName = "Mainframe" }},
		{"ram not in set", "ram", func(s *LaptopSpec) { s.RAM = intPtr(10) }},
		{"hdd not in set", "hdd", func(s *LaptopSpec) { s.HDD = intPtr(300) }},
		{"ssd not in set", "ssd", func(s *LaptopSpec) { s.SSD = intPtr(1000) }},
		{"weight too heavy", "weight", func(s *LaptopSpec) { s.Weight = floatPtr(12.0) }},
		{"weight zero", "weight", func(s *LaptopSpec) { s.Weight = floatPtr(0) }},
		{"screen too small", "screen_size", func(s *LaptopSpec) { s.ScreenSize = floatPtr(7.0) }},
		{"screen too large", "screen_size", func(s *LaptopSpec) { s.ScreenSize = floatPtr(21.0) }},
		{"touchscreen not yes/no", "touchscreen", func(s *LaptopSpec) { s.Touchscreen = "Maybe" }},
		{"resolution malformed", "resolution", func(s *LaptopSpec) { s.Resolution = "1920by1080" }},
		{"resolution negative", "resolution", func(s *LaptopSpec) { s.Resolution = "-1920x1080" }},
		{"resolution unsupported", "resolution", func(s *LaptopSpec) { s.Resolution = "1111x999" }},
		{"unknown cpu", "cpu", func(s *LaptopSpec) { s.CPU = "Quantum CPU" }},
		{"unknown gpu", "gpu", func(s *LaptopSpec) { s.GPU = "Voodoo" }},
		{"unknown os", "os", func(s *LaptopSpec) { s.OS = "TempleOS" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)

			err := spec.Validate(testOptions(), &cons)
			if err == nil {
				t.Fatalf("Expected validation error")
			}
			if err.Fields[0].Field != tt.field {
				t.Errorf("Expected error on field %s, got %s", tt.field, err.Fields[0].Field)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cons := config.DefaultConstraints()
	spec := validSpec()
	spec.Company = ""
	spec.RAM = intPtr(3)
	spec.GPU = "Voodoo"

	err := spec.Validate(testOptions(), &cons)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if len(err.Fields) != 3 {
		t.Errorf("Expected 3 field errors, got %d: %v", len(err.Fields), err)
	}
	if !strings.Contains(err.Error(), "company") || !strings.Contains(err.Error(), "gpu") {
		t.Errorf("Expected aggregated message naming fields, got %q", err.Error())
	}
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		input   string
		width   int
		height  int
		wantErr bool
	}{
		{"1920x1080", 1920, 1080, false},
		{"3840x2160", 3840, 2160, false},
		{"1366x768", 1366, 768, false},
		{"1920", 0, 0, true},
		{"1920x1080x60", 0, 0, true},
		{"widexhigh", 0, 0, true},
		{"0x1080", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, h, err := ParseResolution(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if w != tt.width || h != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, w, h)
			}
		})
	}
}
