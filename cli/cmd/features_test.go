// ABOUTME: Tests for the features command
// ABOUTME: Verifies option listing output against a stub backend

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

func testFeaturesResponse() models.FeaturesResponse {
	return models.FeaturesResponse{
		Options: models.FeatureOptions{
			Companies:        []string{"Apple", "Dell"},
			TypeNames:        []string{"Gaming", "Notebook"},
			CPUBrands:        []string{"Intel Core i5", "Intel Core i7"},
			GPUBrands:        []string{"Intel", "Nvidia"},
			OperatingSystems: []string{"Mac", "Windows"},
		},
		Constraints: models.InputConstraints{
			RAMOptions:    []int{4, 8, 16},
			HDDOptions:    []int{0, 512},
			SSDOptions:    []int{0, 256},
			Resolutions:   []string{"1920x1080", "3840x2160"},
			ScreenSizeMin: 10.0,
			ScreenSizeMax: 18.0,
			WeightMin:     0.5,
			WeightMax:     5.0,
		},
	}
}

func TestRunFeatures_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testFeaturesResponse())
	}))
	defer srv.Close()

	apiURL = srv.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	code := runFeatures(context.Background(), &buf)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}

	for _, want := range []string{"Apple", "Notebook", "1920x1080", "4, 8, 16", "0.5 to 5 kg"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in output, got %q", want, buf.String())
		}
	}
}

func TestRunFeatures_JSONOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testFeaturesResponse())
	}))
	defer srv.Close()

	apiURL = srv.URL
	jsonOutput = true
	defer func() {
		apiURL = ""
		jsonOutput = false
	}()

	var buf bytes.Buffer
	code := runFeatures(context.Background(), &buf)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	var parsed models.FeaturesResponse
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed.Options.Companies) != 2 {
		t.Errorf("expected 2 companies, got %d", len(parsed.Options.Companies))
	}
}

func TestRunFeatures_BackendDown(t *testing.T) {
	apiURL = "http://127.0.0.1:1"
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	code := runFeatures(context.Background(), &buf)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}

func TestJoinInts(t *testing.T) {
	got := joinInts([]int{2, 4, 8})
	if got != "2, 4, 8" {
		t.Errorf("expected \"2, 4, 8\", got %q", got)
	}
}
