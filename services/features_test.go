package services

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "features.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write snapshot: %v", err)
	}
	return path
}

func TestLoadFeatureOptions_NormalizesColumns(t *testing.T) {
	snapshot := `{
		"company": ["Dell", "Apple", "Dell", "", "Acer"],
		"type_name": ["Notebook", "Gaming", "Notebook"],
		"cpu_brand": ["Intel Core i5", "AMD Processor"],
		"gpu_brand": ["Nvidia", "Intel", "AMD"],
		"os": ["Windows", "Mac", "Windows"]
	}`

	opts, err := LoadFeatureOptions(writeSnapshot(t, snapshot))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !slices.Equal(opts.Companies, []string{"Acer", "Apple", "Dell"}) {
		t.Errorf("Expected sorted de-duplicated companies, got %v", opts.Companies)
	}
	if !slices.Equal(opts.TypeNames, []string{"Gaming", "Notebook"}) {
		t.Errorf("Expected sorted de-duplicated types, got %v", opts.TypeNames)
	}
	if !slices.Equal(opts.GPUBrands, []string{"AMD", "Intel", "Nvidia"}) {
		t.Errorf("Expected sorted GPU brands, got %v", opts.GPUBrands)
	}
}

func TestLoadFeatureOptions_EmptyColumn(t *testing.T) {
	snapshot := `{
		"company": ["Dell"],
		"type_name": ["Notebook"],
		"cpu_brand": [],
		"gpu_brand": ["Intel"],
		"os": ["Windows"]
	}`

	if _, err := LoadFeatureOptions(writeSnapshot(t, snapshot)); err == nil {
		t.Error("Expected error for empty cpu_brand column, got nil")
	}
}

func TestLoadFeatureOptions_MissingFile(t *testing.T) {
	if _, err := LoadFeatureOptions(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for missing snapshot, got nil")
	}
}

func TestLoadFeatureOptions_Corrupt(t *testing.T) {
	if _, err := LoadFeatureOptions(writeSnapshot(t, "[1,2,3")); err == nil {
		t.Error("Expected error for corrupt snapshot, got nil")
	}
}
