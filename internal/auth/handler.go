package auth

import (
	"net/http"

	"miranda/pkg/contracts"
	apperrors "miranda/pkg/errors"
	httputil "miranda/pkg/http"
	"miranda/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const LoginPath = "/login"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type LoginHandler struct {
	service *LoginService
	log     *logger.Logger
}

func NewLoginHandler(service *LoginService, log *logger.Logger) *LoginHandler {
	return &LoginHandler{
		service: service,
		log:     log,
	}
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, apperrors.InvalidInput(msgCredentialsRequired))
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, LoginResponse{Token: token}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Login", "operation", "WriteJSON", "error", err)
	}
}

func (h *LoginHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", "Login", "operation", "WriteError", "error", writeErr)
	}
}

func (h *LoginHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST(LoginPath, h.Login)
}

func (h *LoginHandler) Routes() []contracts.Route {
	return []contracts.Route{
		{Path: LoginPath, Methods: []string{http.MethodPost}},
	}
}
