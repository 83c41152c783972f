// ABOUTME: Prediction endpoint
// ABOUTME: Validates the specification record and delegates to the prediction service

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pricewise/laptop-price-api/models"
)

// Predict accepts a specification record, validates it against the feature
// option set and fixed constraints, and returns the predicted price.
// HTTP method matching is handled by the Go 1.22+ route patterns.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	// Bound the request body; a spec record is well under this limit.
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxRequestBytes)

	var spec models.LaptopSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		if err.Error() == "http: request body too large" {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if verr := spec.Validate(h.options, &h.cfg.Constraints); verr != nil {
		slog.Debug("Rejected specification", "details", verr.Error())
		h.writeValidationError(w, verr)
		return
	}

	resp, err := h.prediction.Predict(spec)
	if err != nil {
		slog.Error("Prediction failed", "error", err)
		h.writeError(w, "Prediction failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("Prediction served", "company", spec.Company, "type", spec.TypeName, "price", resp.PredictedPrice)
	h.writeJSON(w, http.StatusOK, resp)
}
