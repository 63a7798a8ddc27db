package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/omara/internal/model"
	"github.com/erazemk/omara/internal/store"
)

// TagsHandler lists tags. Tags are created implicitly through items.
type TagsHandler struct {
	DB *sql.DB
}

// List handles GET /tags.
func (h *TagsHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := store.ListTags(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list tags", "")
		return
	}
	if tags == nil {
		tags = []model.Tag{}
	}
	jsonResponse(w, http.StatusOK, tags)
}
