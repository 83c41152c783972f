// ABOUTME: Tests for the health command
// ABOUTME: Verifies output formatting and exit codes against a stub backend

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pricewise/laptop-price-api/models"
)

func TestRunHealth_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.HealthResponse{
			Status:          "ok",
			PipelineLoaded:  true,
			PipelineVersion: "2024.1",
			Version:         "1.0.0",
		})
	}))
	defer srv.Close()

	apiURL = srv.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	code := runHealth(context.Background(), &buf)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Pipeline Loaded:  true") {
		t.Errorf("expected pipeline status in output, got %q", buf.String())
	}
}

func TestRunHealth_BackendDown(t *testing.T) {
	apiURL = "http://127.0.0.1:1"
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	code := runHealth(context.Background(), &buf)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Error:") {
		t.Errorf("expected error output, got %q", buf.String())
	}
}

func TestFormatHealthJSON(t *testing.T) {
	resp := &models.HealthResponse{Status: "ok", PipelineLoaded: true, Version: "1.0.0"}

	output := formatHealthJSON("http://localhost:8080", resp)

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["status"] != "ok" {
		t.Errorf("expected status ok, got %v", parsed["status"])
	}
	if parsed["pipeline_loaded"] != true {
		t.Errorf("expected pipeline_loaded true, got %v", parsed["pipeline_loaded"])
	}
}
