// ABOUTME: HTTP handlers for the laptop price prediction API
// ABOUTME: Provides health check, feature listing, and predict endpoints

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pricewise/laptop-price-api/cache"
	"github.com/pricewise/laptop-price-api/config"
	"github.com/pricewise/laptop-price-api/models"
	"github.com/pricewise/laptop-price-api/services"
)

// APIVersion is reported by the health endpoint.
const APIVersion = "1.0.0"

type Handler struct {
	cfg        *config.Config
	cache      *cache.Cache
	prediction *services.PredictionService
	options    *models.FeatureOptions
}

// NewHandler wires the immutable startup state into the request handlers.
// Everything the handlers share is read-only after this point.
func NewHandler(cfg *config.Config, c *cache.Cache, prediction *services.PredictionService, options *models.FeatureOptions) *Handler {
	return &Handler{
		cfg:        cfg,
		cache:      c,
		prediction: prediction,
		options:    options,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func (h *Handler) writeValidationError(w http.ResponseWriter, verr *models.ValidationError) {
	h.writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
		Error:   "Invalid specification",
		Details: verr.Error(),
		Code:    http.StatusBadRequest,
		Fields:  verr.Fields,
	})
}
