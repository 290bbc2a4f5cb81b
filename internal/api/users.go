package mbiri

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	model "github.com/loktioncode/mbiri-api/internal/models"
)

type TransferRequest struct {
	RecipientID string `json:"recipient_id"`
	Points      int    `json:"points"`
}

func (h *Handler) MeHandler(w http.ResponseWriter, req *http.Request) {
	userID, _ := UserIDFromContext(req.Context())
	user, err := h.users.GetUser(req.Context(), userID)
	if err != nil {
		h.Error(w, "MeHandler", err)
		return
	}
	h.JSON(w, user)
}

func (h *Handler) UpdateMeHandler(w http.ResponseWriter, req *http.Request) {
	userID, _ := UserIDFromContext(req.Context())

	var in model.UserUpdate
	err := json.NewDecoder(req.Body).Decode(&in)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	user, err := h.users.UpdateMe(req.Context(), userID, in)
	if err != nil {
		h.Error(w, "UpdateMeHandler", err)
		return
	}
	h.JSON(w, user)
}

func (h *Handler) MyPointsHandler(w http.ResponseWriter, req *http.Request) {
	userID, _ := UserIDFromContext(req.Context())
	total, history, err := h.points.GetUserPoints(req.Context(), userID)
	if err != nil {
		h.Error(w, "MyPointsHandler", err)
		return
	}
	if history == nil {
		history = []model.ViewRecord{}
	}
	h.JSON(w, map[string]any{
		"total_points": total,
		"view_history": history,
	})
}

func (h *Handler) TransferPointsHandler(w http.ResponseWriter, req *http.Request) {
	userID, _ := UserIDFromContext(req.Context())

	var in TransferRequest
	err := json.NewDecoder(req.Body).Decode(&in)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	ok, err := h.points.TransferPoints(req.Context(), userID, in.Points, in.RecipientID)
	if err != nil {
		h.Error(w, "TransferPointsHandler", err)
		return
	}
	h.JSON(w, map[string]any{
		"success": ok,
		"message": fmt.Sprintf("Successfully transferred %d points", in.Points),
	})
}

func (h *Handler) GetUserHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	user, err := h.users.GetUser(req.Context(), vars["id"])
	if err != nil {
		h.Error(w, "GetUserHandler", err)
		return
	}
	h.JSON(w, user)
}
