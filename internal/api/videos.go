package mbiri

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	model "github.com/loktioncode/mbiri-api/internal/models"
)

type WatchRequest struct {
	WatchDuration int `json:"watch_duration"`
}

func (h *Handler) AddVideoHandler(w http.ResponseWriter, req *http.Request) {
	userID, _ := UserIDFromContext(req.Context())

	var in model.VideoCreate
	err := json.NewDecoder(req.Body).Decode(&in)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	video, err := h.videos.CreateVideo(req.Context(), userID, in)
	if err != nil {
		h.Error(w, "AddVideoHandler", err)
		return
	}
	h.JSON(w, video)
}

func (h *Handler) MyVideosHandler(w http.ResponseWriter, req *http.Request) {
	userID, _ := UserIDFromContext(req.Context())
	skip, limit := pagination(req, 100)

	videos, err := h.videos.MyVideos(req.Context(), userID, skip, limit)
	if err != nil {
		h.Error(w, "MyVideosHandler", err)
		return
	}
	if videos == nil {
		videos = []model.Video{}
	}
	h.JSON(w, videos)
}

func (h *Handler) DiscoverHandler(w http.ResponseWriter, req *http.Request) {
	skip, limit := pagination(req, 20)

	videos, err := h.videos.Discover(req.Context(), skip, limit)
	if err != nil {
		h.Error(w, "DiscoverHandler", err)
		return
	}
	if videos == nil {
		videos = []model.Video{}
	}
	h.JSON(w, videos)
}

func (h *Handler) GetVideoHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	video, err := h.videos.GetVideo(req.Context(), vars["id"])
	if err != nil {
		h.Error(w, "GetVideoHandler", err)
		return
	}
	h.JSON(w, video)
}

func (h *Handler) UpdateVideoHandler(w http.ResponseWriter, req *http.Request) {
	userID, _ := UserIDFromContext(req.Context())
	vars := mux.Vars(req)

	var in model.VideoUpdate
	err := json.NewDecoder(req.Body).Decode(&in)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	video, err := h.videos.UpdateVideo(req.Context(), vars["id"], userID, in)
	if err != nil {
		h.Error(w, "UpdateVideoHandler", err)
		return
	}
	h.JSON(w, video)
}

func (h *Handler) DeleteVideoHandler(w http.ResponseWriter, req *http.Request) {
	userID, _ := UserIDFromContext(req.Context())
	vars := mux.Vars(req)

	err := h.videos.DeleteVideo(req.Context(), vars["id"], userID)
	if err != nil {
		h.Error(w, "DeleteVideoHandler", err)
		return
	}
	h.JSON(w, map[string]any{"success": true})
}

// WatchHandler records one watch-progress report and returns the points
// outcome together with the updated record state.
func (h *Handler) WatchHandler(w http.ResponseWriter, req *http.Request) {
	userID, _ := UserIDFromContext(req.Context())
	vars := mux.Vars(req)

	var in WatchRequest
	err := json.NewDecoder(req.Body).Decode(&in)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	record, points, alreadyEarned, err := h.points.RecordWatchSession(req.Context(), vars["id"], userID, in.WatchDuration)
	if err != nil {
		h.Error(w, "WatchHandler", err)
		return
	}
	h.JSON(w, map[string]any{
		"success":               true,
		"video_id":              vars["id"],
		"points_earned":         points,
		"already_earned_before": alreadyEarned,
		"watch_duration":        record.WatchDuration,
		"fully_watched":         record.FullyWatched,
		"completion":            record.Completion(),
		"total_points_earned":   record.PointsEarned,
	})
}

func pagination(req *http.Request, defaultLimit int) (skip, limit int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(req.URL.Query().Get("skip")); err == nil && v > 0 {
		skip = v
	}
	if v, err := strconv.Atoi(req.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return skip, limit
}
