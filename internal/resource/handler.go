package resource

import (
	"fmt"
	"net/http"

	"miranda/pkg/contracts"
	apperrors "miranda/pkg/errors"
	httputil "miranda/pkg/http"
	"miranda/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// Guards wrap routes. Protect applies to every route, Create additionally to
// POST on the collection and runs inside Protect.
type Guards struct {
	Protect func(httprouter.Handle) httprouter.Handle
	Create  func(httprouter.Handle) httprouter.Handle
}

type HandlerConfig[T any, K comparable] struct {
	// BasePath is the collection path, e.g. "/rooms".
	BasePath string
	// ParseKey converts the :id route parameter. Its error becomes a 400.
	ParseKey func(raw string) (K, error)
	// NewPatch returns an empty update payload to decode PUT bodies into.
	NewPatch func() Patch[T]

	Guards Guards
}

type Handler[T any, K comparable] struct {
	service *Service[T, K]
	cfg     HandlerConfig[T, K]
	log     *logger.Logger
}

func NewHandler[T any, K comparable](service *Service[T, K], cfg HandlerConfig[T, K], log *logger.Logger) *Handler[T, K] {
	return &Handler[T, K]{
		service: service,
		cfg:     cfg,
		log:     log,
	}
}

func (h *Handler[T, K]) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	records, total, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WriteList(w, records, total); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "operation", "WriteList", "error", err)
	}
}

func (h *Handler[T, K]) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key, ok := h.key(w, ps, "Get")
	if !ok {
		return
	}

	record, err := h.service.Get(r.Context(), key)
	if err != nil {
		h.writeError(w, "Get", err)
		return
	}

	if err := httputil.WriteSuccess(w, record); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "operation", "WriteSuccess", "error", err)
	}
}

func (h *Handler[T, K]) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var record T
	if err := httputil.DecodeJSON(r, &record); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	created, err := h.service.Create(r.Context(), &record)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, created); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *Handler[T, K]) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key, ok := h.key(w, ps, "Update")
	if !ok {
		return
	}

	patch := h.cfg.NewPatch()
	if err := httputil.DecodeJSON(r, patch); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	updated, err := h.service.Update(r.Context(), key, patch)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, updated); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *Handler[T, K]) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key, ok := h.key(w, ps, "Delete")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), key); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	message := fmt.Sprintf("%s with ID: %v deleted", h.service.Name(), key)
	if err := httputil.WriteMessage(w, http.StatusOK, message); err != nil {
		h.log.Error("failed to write message response", "handler", "Delete", "operation", "WriteMessage", "error", err)
	}
}

func (h *Handler[T, K]) key(w http.ResponseWriter, ps httprouter.Params, handler string) (K, bool) {
	raw := ps.ByName("id")
	key, err := h.cfg.ParseKey(raw)
	if err != nil {
		h.writeError(w, handler, apperrors.InvalidInput(fmt.Sprintf("Invalid %s ID: %s", h.service.Name(), raw)))
		return key, false
	}
	return key, true
}

func (h *Handler[T, K]) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *Handler[T, K]) wrap(handle httprouter.Handle) httprouter.Handle {
	if h.cfg.Guards.Protect != nil {
		return h.cfg.Guards.Protect(handle)
	}
	return handle
}

func (h *Handler[T, K]) RegisterRoutes(router *httprouter.Router) {
	create := httprouter.Handle(h.Create)
	if h.cfg.Guards.Create != nil {
		create = h.cfg.Guards.Create(create)
	}

	item := h.cfg.BasePath + "/:id"
	router.GET(h.cfg.BasePath, h.wrap(h.List))
	router.POST(h.cfg.BasePath, h.wrap(create))
	router.GET(item, h.wrap(h.Get))
	router.PUT(item, h.wrap(h.Update))
	router.DELETE(item, h.wrap(h.Delete))
}

func (h *Handler[T, K]) Routes() []contracts.Route {
	return []contracts.Route{
		{Path: h.cfg.BasePath, Methods: []string{http.MethodGet, http.MethodPost}},
		{Path: h.cfg.BasePath + "/:id", Methods: []string{http.MethodGet, http.MethodPut, http.MethodDelete}},
	}
}
