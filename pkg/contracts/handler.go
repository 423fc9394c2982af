package contracts

import "github.com/julienschmidt/httprouter"

// Route describes one registered endpoint for the public route listing.
type Route struct {
	Path    string   `json:"path"`
	Methods []string `json:"methods"`
}

// Handler registers its routes and describes them for GET /routes.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
	Routes() []Route
}
