package app

import (
	"net/http"

	"miranda/pkg/config"
	"miranda/pkg/contracts"
	httputil "miranda/pkg/http"
	"miranda/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const PrivateRoutesNote = "Para acceder a los endpoints privados, es necesario un token JWT válido."

// RouteListing is the public index served at GET /routes. Field names are
// part of the public contract.
type RouteListing struct {
	HotelName   string           `json:"hotelName"`
	Description string           `json:"descripcion"`
	Endpoints   []contracts.Route `json:"endpointsPrivados"`
	Note        string           `json:"nota"`
}

type RoutesHandler struct {
	listing RouteListing
	log     *logger.Logger
}

// NewRoutesHandler lists endpoints in the order given.
func NewRoutesHandler(endpoints []contracts.Route, log *logger.Logger) *RoutesHandler {
	return &RoutesHandler{
		listing: RouteListing{
			HotelName:   config.HotelName,
			Description: config.HotelDescription,
			Endpoints:   endpoints,
			Note:        PrivateRoutesNote,
		},
		log: log,
	}
}

func (h *RoutesHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, h.listing); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Routes", "operation", "WriteJSON", "error", err)
	}
}

func (h *RoutesHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/routes", h.List)
}
