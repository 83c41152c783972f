// ABOUTME: Feature options endpoint
// ABOUTME: Publishes valid categorical values and fixed input constraints

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pricewise/laptop-price-api/models"
)

const featuresCacheKey = "features:response"

// Features returns the feature option set plus the fixed input constraints
// form clients need. The underlying data never changes after startup, so
// the cached assembly is always equivalent to a fresh one.
func (h *Handler) Features(w http.ResponseWriter, r *http.Request) {
	if cached, found := h.cache.Get(featuresCacheKey); found {
		slog.Debug("Features cache hit")
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	resp := models.FeaturesResponse{
		Options: *h.options,
		Constraints: models.InputConstraints{
			RAMOptions:    h.cfg.Constraints.RAMOptions,
			HDDOptions:    h.cfg.Constraints.HDDOptions,
			SSDOptions:    h.cfg.Constraints.SSDOptions,
			Resolutions:   h.cfg.Constraints.Resolutions,
			ScreenSizeMin: h.cfg.Constraints.ScreenSizeMin,
			ScreenSizeMax: h.cfg.Constraints.ScreenSizeMax,
			WeightMin:     h.cfg.Constraints.WeightMin,
			WeightMax:     h.cfg.Constraints.WeightMax,
		},
	}

	h.cache.SetWithTTL(featuresCacheKey, resp, time.Duration(h.cfg.FeaturesTTL)*time.Second)
	h.writeJSON(w, http.StatusOK, resp)
}
