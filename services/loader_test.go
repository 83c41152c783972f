package services

import (
	"path/filepath"
	"testing"
)

const testSnapshot = `{
	"company": ["Dell", "Apple"],
	"type_name": ["Notebook", "Gaming"],
	"cpu_brand": ["Intel Core i5", "Intel Core i7"],
	"gpu_brand": ["Intel", "Nvidia"],
	"os": ["Windows", "Mac"]
}`

func TestLoadArtifacts(t *testing.T) {
	pipeline, options, err := LoadArtifacts(
		writeArtifact(t, logArtifact),
		writeSnapshot(t, testSnapshot),
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if pipeline.Version != "test-log" {
		t.Errorf("Expected pipeline version test-log, got %s", pipeline.Version)
	}
	if len(options.Companies) != 2 {
		t.Errorf("Expected 2 companies, got %d", len(options.Companies))
	}
}

func TestLoadArtifacts_MissingPipeline(t *testing.T) {
	_, _, err := LoadArtifacts(
		filepath.Join(t.TempDir(), "absent.json"),
		writeSnapshot(t, testSnapshot),
	)
	if err == nil {
		t.Error("Expected error for missing pipeline, got nil")
	}
}

func TestLoadArtifacts_MissingSnapshot(t *testing.T) {
	_, _, err := LoadArtifacts(
		writeArtifact(t, logArtifact),
		filepath.Join(t.TempDir(), "absent.json"),
	)
	if err == nil {
		t.Error("Expected error for missing snapshot, got nil")
	}
}
