package mbiri

import (
	"encoding/json"
	"net/http"

	model "github.com/loktioncode/mbiri-api/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, req *http.Request) {
	var in model.UserCreate
	err := json.NewDecoder(req.Body).Decode(&in)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	user, err := h.users.Register(req.Context(), in)
	if err != nil {
		h.Error(w, "RegisterHandler", err)
		return
	}
	h.JSON(w, user)
}

func (h *Handler) LoginHandler(w http.ResponseWriter, req *http.Request) {
	var in LoginRequest
	err := json.NewDecoder(req.Body).Decode(&in)
	if err != nil {
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	token, err := h.users.Login(req.Context(), in.Email, in.Password)
	if err != nil {
		h.Error(w, "LoginHandler", err)
		return
	}
	h.JSON(w, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
