package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/omara/internal/model"
	"github.com/erazemk/omara/internal/store"
)

// LocationsHandler handles location CRUD endpoints.
type LocationsHandler struct {
	DB *sql.DB
}

const locationConstraintMsg = "location with this name already exists"

// List handles GET /locations.
func (h *LocationsHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := store.ListLocations(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list locations", "")
		return
	}
	if locations == nil {
		locations = []model.Location{}
	}
	jsonResponse(w, http.StatusOK, locations)
}

// Create handles POST /locations.
func (h *LocationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.LocationCreate
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	l, err := store.CreateLocation(r.Context(), h.DB, req)
	if err != nil {
		storeError(w, err, "create location", locationConstraintMsg)
		return
	}

	slog.Info("location created", "id", l.ID, "location", l.Name)
	jsonResponse(w, http.StatusOK, l)
}

// Get handles GET /locations/{id}.
func (h *LocationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid location id")
		return
	}

	l, err := store.GetLocation(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get location", "")
		return
	}
	if l == nil {
		jsonError(w, http.StatusNotFound, "location not found")
		return
	}
	jsonResponse(w, http.StatusOK, l)
}

// Update handles PUT /locations/{id}.
func (h *LocationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid location id")
		return
	}

	var req model.LocationUpdate
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	l, err := store.UpdateLocation(r.Context(), h.DB, id, req)
	if err != nil {
		storeError(w, err, "update location", locationConstraintMsg)
		return
	}
	if l == nil {
		jsonError(w, http.StatusNotFound, "location not found")
		return
	}

	slog.Info("location updated", "id", l.ID, "location", l.Name)
	jsonResponse(w, http.StatusOK, l)
}

// Delete handles DELETE /locations/{id}. Items stored there are kept and
// lose their location.
func (h *LocationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid location id")
		return
	}

	l, err := store.DeleteLocation(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "delete location", "")
		return
	}
	if l == nil {
		jsonError(w, http.StatusNotFound, "location not found")
		return
	}

	slog.Info("location deleted", "id", l.ID, "location", l.Name)
	w.WriteHeader(http.StatusNoContent)
}
