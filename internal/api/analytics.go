package mbiri

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	model "github.com/loktioncode/mbiri-api/internal/models"
)

func (h *Handler) VideoAnalyticsHandler(w http.ResponseWriter, req *http.Request) {
	userID, _ := UserIDFromContext(req.Context())
	vars := mux.Vars(req)

	analytics, err := h.analytics.VideoAnalytics(req.Context(), vars["id"], userID)
	if err != nil {
		h.Error(w, "VideoAnalyticsHandler", err)
		return
	}
	h.JSON(w, analytics)
}

func (h *Handler) CreatorAnalyticsHandler(w http.ResponseWriter, req *http.Request) {
	userID, _ := UserIDFromContext(req.Context())

	analytics, err := h.analytics.CreatorAnalytics(req.Context(), userID)
	if err != nil {
		h.Error(w, "CreatorAnalyticsHandler", err)
		return
	}
	h.JSON(w, analytics)
}

func (h *Handler) TrendingHandler(w http.ResponseWriter, req *http.Request) {
	limit := 10
	if v, err := strconv.Atoi(req.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}

	trending, err := h.analytics.Trending(req.Context(), limit)
	if err != nil {
		h.Error(w, "TrendingHandler", err)
		return
	}
	if trending == nil {
		trending = []model.TrendingVideo{}
	}
	h.JSON(w, trending)
}
