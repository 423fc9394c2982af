package auth

import (
	"context"
	"errors"
	"strings"

	"miranda/internal/resource"
	apperrors "miranda/pkg/errors"
	"miranda/pkg/logger"
	"miranda/pkg/model"
)

const (
	msgCredentialsRequired = "credentials required"
	msgInvalidCredentials  = "invalid credentials"
)

// CredentialStore looks up staff users by email. A missing user is
// resource.ErrNotFound.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type LoginService struct {
	store  CredentialStore
	issuer *TokenIssuer
	log    *logger.Logger
}

func NewLoginService(store CredentialStore, issuer *TokenIssuer, log *logger.Logger) *LoginService {
	return &LoginService{
		store:  store,
		issuer: issuer,
		log:    log,
	}
}

// Login exchanges an email and password for a signed token. Unknown emails and
// wrong passwords produce the same error.
func (s *LoginService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", apperrors.InvalidInput(msgCredentialsRequired)
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			VerifyPassword(password, string(dummyHash))
			s.log.Info("Login rejected", "reason", "unknown email")
			return "", apperrors.Unauthorized(msgInvalidCredentials)
		}
		s.log.Error("Failed to look up credentials", "error", err)
		return "", apperrors.Internal("Failed to verify credentials", err)
	}

	if !VerifyPassword(password, user.Password) {
		s.log.Info("Login rejected", "reason", "password mismatch", "user_id", user.ID)
		return "", apperrors.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		s.log.Error("Failed to issue token", "user_id", user.ID, "error", err)
		return "", apperrors.Internal("Failed to issue token", err)
	}

	s.log.Info("Login succeeded", "user_id", user.ID)
	return token, nil
}
