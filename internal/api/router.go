package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
// Every path also answers with a trailing slash.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	healthHandler := &HealthHandler{DB: db}
	itemsHandler := &ItemsHandler{DB: db}
	categoriesHandler := &CategoriesHandler{DB: db}
	locationsHandler := &LocationsHandler{DB: db}
	tagsHandler := &TagsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)

	handle := func(method, path string, h http.HandlerFunc, protected bool) {
		var handler http.Handler = h
		if protected {
			handler = authMW(handler)
		}
		mux.Handle(method+" "+path, handler)
		mux.Handle(method+" "+path+"/{$}", handler)
	}

	// Public.
	handle("GET", "/health", healthHandler.Check, false)
	handle("POST", "/auth/login", authHandler.Login, false)
	handle("POST", "/auth/logout", authHandler.Logout, true)

	// Items.
	handle("GET", "/items", itemsHandler.List, true)
	handle("POST", "/items", itemsHandler.Create, true)
	handle("GET", "/items/{id}", itemsHandler.Get, true)
	handle("PUT", "/items/{id}", itemsHandler.Update, true)
	handle("DELETE", "/items/{id}", itemsHandler.Delete, true)
	handle("PUT", "/items/{id}/image", itemsHandler.UploadImage, true)
	handle("GET", "/items/{id}/image", itemsHandler.GetImage, true)

	// Categories.
	handle("GET", "/categories", categoriesHandler.List, true)
	handle("POST", "/categories", categoriesHandler.Create, true)
	handle("GET", "/categories/{id}", categoriesHandler.Get, true)
	handle("PUT", "/categories/{id}", categoriesHandler.Update, true)
	handle("DELETE", "/categories/{id}", categoriesHandler.Delete, true)

	// Locations.
	handle("GET", "/locations", locationsHandler.List, true)
	handle("POST", "/locations", locationsHandler.Create, true)
	handle("GET", "/locations/{id}", locationsHandler.Get, true)
	handle("PUT", "/locations/{id}", locationsHandler.Update, true)
	handle("DELETE", "/locations/{id}", locationsHandler.Delete, true)

	// Tags.
	handle("GET", "/tags", tagsHandler.List, true)

	return mux
}
