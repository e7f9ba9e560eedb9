package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"cineflix/models"
	"cineflix/services/users"
)

type UsersHandler struct {
	Service *users.Service
}

func NewUsersHandler(service *users.Service) *UsersHandler {
	return &UsersHandler{Service: service}
}

// Ensure creates the profile for an authenticated identity on first
// login and returns it on every call.
func (h *UsersHandler) Ensure(w http.ResponseWriter, r *http.Request) {
	var body models.User
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.Service.EnsureProfile(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, profile)
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	profile, ok, err := h.Service.Profile(uid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}
	writeJSON(w, profile)
}
