// ABOUTME: Fixed input constraints for laptop specification fields
// ABOUTME: Built-in defaults with optional YAML file override

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Constraints holds the allowed values and ranges for the numeric and
// fixed-list specification fields. The categorical fields (brand, CPU, GPU,
// OS) are constrained by the feature reference snapshot instead.
type Constraints struct {
	RAMOptions    []int    `yaml:"ram_options"`
	HDDOptions    []int    `yaml:"hdd_options"`
	SSDOptions    []int    `yaml:"ssd_options"`
	Resolutions   []string `yaml:"resolutions"`
	ScreenSizeMin float64  `yaml:"screen_size_min"`
	ScreenSizeMax float64  `yaml:"screen_size_max"`
	WeightMin     float64  `yaml:"weight_min"`
	WeightMax     float64  `yaml:"weight_max"`
}

// DefaultConstraints returns the constraint set the pipeline was trained
// against. These values are a contract with the training process; changing
// them without retraining produces garbage predictions.
func DefaultConstraints() Constraints {
	return Constraints{
		RAMOptions: []int{2, 4, 6, 8, 12, 16, 24, 32, 64},
		HDDOptions: []int{0, 128, 256, 512, 1024, 2048},
		SSDOptions: []int{0, 8, 128, 256, 512, 1024},
		Resolutions: []string{
			"1920x1080",
			"1366x768",
			"1600x900",
			"3840x2160",
			"3200x1800",
			"2880x1800",
			"2560x1600",
			"2560x1440",
			"2304x1440",
		},
		ScreenSizeMin: 10.0,
		ScreenSizeMax: 18.0,
		WeightMin:     0.5,
		WeightMax:     5.0,
	}
}

// LoadConstraints reads a YAML constraints file.
func LoadConstraints(path string) (*Constraints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cons Constraints
	if err := yaml.Unmarshal(data, &cons); err != nil {
		return nil, fmt.Errorf("parsing constraints YAML: %w", err)
	}
	return &cons, nil
}

// Validate rejects constraint sets that would make every request fail.
func (c *Constraints) Validate() error {
	if len(c.RAMOptions) == 0 {
		return fmt.Errorf("ram_options must not be empty")
	}
	if len(c.HDDOptions) == 0 {
		return fmt.Errorf("hdd_options must not be empty")
	}
	if len(c.SSDOptions) == 0 {
		return fmt.Errorf("ssd_options must not be empty")
	}
	if len(c.Resolutions) == 0 {
		return fmt.Errorf("resolutions must not be empty")
	}
	if c.ScreenSizeMin <= 0 || c.ScreenSizeMax <= c.ScreenSizeMin {
		return fmt.Errorf("screen size bounds must satisfy 0 < min < max, got [%.1f, %.1f]", c.ScreenSizeMin, c.ScreenSizeMax)
	}
	if c.WeightMin <= 0 || c.WeightMax <= c.WeightMin {
		return fmt.Errorf("weight bounds must satisfy 0 < min < max, got [%.2f, %.2f]", c.WeightMin, c.WeightMax)
	}
	return nil
}
