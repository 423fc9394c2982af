package middleware

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Chain applies middlewares so that the first one listed runs first.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Route lifts a net/http middleware to a single httprouter route, keeping
// the route params.
func Route(mw func(http.Handler) http.Handler) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next(w, r, ps)
			})).ServeHTTP(w, r)
		}
	}
}
