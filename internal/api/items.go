package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/omara/internal/imaging"
	"github.com/erazemk/omara/internal/model"
	"github.com/erazemk/omara/internal/store"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

const itemConstraintMsg = "invalid item data (unknown category or location)"

// List handles GET /items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list items", "")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ItemCreate
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, req)
	if err != nil {
		storeError(w, err, "create item", itemConstraintMsg)
		return
	}

	slog.Info("item created", "id", item.ID, "item", item.Name, "tags", len(item.Tags))
	jsonResponse(w, http.StatusOK, item)
}

// Get handles GET /items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get item", "")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req model.ItemUpdate
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	item, err := store.UpdateItem(r.Context(), h.DB, id, req)
	if err != nil {
		storeError(w, err, "update item", itemConstraintMsg)
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	slog.Info("item updated", "id", item.ID, "item", item.Name)
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.DeleteItem(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "delete item", "")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	slog.Info("item deleted", "id", item.ID, "item", item.Name)
	w.WriteHeader(http.StatusNoContent)
}

// UploadImage handles PUT /items/{id}/image.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get item", "")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	// Leave room for the multipart envelope around the file.
	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadSize+1<<20)
	if err := r.ParseMultipartForm(imaging.MaxUploadSize); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	result, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err = store.SetItemImage(r.Context(), h.DB, id, result.Data, result.MIME)
	if err != nil {
		storeError(w, err, "save image", "")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	slog.Info("item image uploaded", "id", id, "item", item.Name, "width", result.Width, "height", result.Height)
	jsonResponse(w, http.StatusOK, item)
}

// GetImage handles GET /items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get image", "")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}
