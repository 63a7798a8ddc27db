package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/omara/internal/model"
	"github.com/erazemk/omara/internal/store"
)

// CategoriesHandler handles category CRUD endpoints.
type CategoriesHandler struct {
	DB *sql.DB
}

const categoryConstraintMsg = "category with this name already exists"

// List handles GET /categories.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := store.ListCategories(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list categories", "")
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	jsonResponse(w, http.StatusOK, categories)
}

// Create handles POST /categories.
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryCreate
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	c, err := store.CreateCategory(r.Context(), h.DB, req)
	if err != nil {
		storeError(w, err, "create category", categoryConstraintMsg)
		return
	}

	slog.Info("category created", "id", c.ID, "category", c.Name)
	jsonResponse(w, http.StatusOK, c)
}

// Get handles GET /categories/{id}.
func (h *CategoriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	c, err := store.GetCategory(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get category", "")
		return
	}
	if c == nil {
		jsonError(w, http.StatusNotFound, "category not found")
		return
	}
	jsonResponse(w, http.StatusOK, c)
}

// Update handles PUT /categories/{id}.
func (h *CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req model.CategoryUpdate
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	c, err := store.UpdateCategory(r.Context(), h.DB, id, req)
	if err != nil {
		storeError(w, err, "update category", categoryConstraintMsg)
		return
	}
	if c == nil {
		jsonError(w, http.StatusNotFound, "category not found")
		return
	}

	slog.Info("category updated", "id", c.ID, "category", c.Name)
	jsonResponse(w, http.StatusOK, c)
}

// Delete handles DELETE /categories/{id}. A category that still has items
// is refused.
func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	c, err := store.DeleteCategory(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "delete category", "category is still in use")
		return
	}
	if c == nil {
		jsonError(w, http.StatusNotFound, "category not found")
		return
	}

	slog.Info("category deleted", "id", c.ID, "category", c.Name)
	w.WriteHeader(http.StatusNoContent)
}
