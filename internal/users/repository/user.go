package repository

import (
	"context"

	"miranda/internal/resource"
	"miranda/pkg/config"
	"miranda/pkg/model"
)

const (
	KeyField   = "id"
	EmailField = "email"
)

type UserRepository = resource.Repository[model.User, string]

func NewMongoUserRepository(cfg *config.Config) UserRepository {
	return resource.NewMongoRepository[model.User, string](cfg, resource.UsersCollection, KeyField)
}

// CredentialStore looks users up by their login email.
type CredentialStore struct {
	repo UserRepository
}

func NewCredentialStore(repo UserRepository) *CredentialStore {
	return &CredentialStore{repo: repo}
}

func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindOne(ctx, EmailField, email)
}
