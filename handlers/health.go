// ABOUTME: Health check endpoint
// ABOUTME: Reports pipeline load state and API version

package handlers

import (
	"net/http"

	"github.com/pricewise/laptop-price-api/models"
)

// Health reports a fixed status payload. The process refuses to start
// without a loaded pipeline, so once this endpoint answers the pipeline is
// loaded by construction.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:          "ok",
		PipelineLoaded:  true,
		PipelineVersion: h.prediction.PipelineVersion(),
		Version:         APIVersion,
	})
}
