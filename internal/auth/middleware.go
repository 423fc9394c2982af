package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apperrors "miranda/pkg/errors"
	httputil "miranda/pkg/http"
	"miranda/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

const bearerPrefix = "Bearer "

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// RequireToken guards a route with a bearer token. A missing or malformed
// Authorization header is a 401; a bad signature or an expired token is a 403.
func RequireToken(issuer *TokenIssuer, log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			token, ok := bearerToken(r)
			if !ok {
				writeAuthError(w, log, apperrors.Unauthorized("authentication token required"))
				return
			}

			claims, err := issuer.Validate(token)
			if err != nil {
				message := "invalid token"
				if errors.Is(err, ErrTokenExpired) {
					message = "token expired"
				}
				log.Warn("Rejected bearer token",
					"method", r.Method,
					"path", r.URL.Path,
					"reason", message,
				)
				writeAuthError(w, log, apperrors.Forbidden(message))
				return
			}

			next(w, r.WithContext(WithClaims(r.Context(), claims)), ps)
		}
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

func writeAuthError(w http.ResponseWriter, log *logger.Logger, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		log.Error("failed to write error response", "handler", "RequireToken", "operation", "WriteError", "error", writeErr)
	}
}
