package service

import (
	"context"

	"miranda/internal/auth"
	"miranda/internal/resource"
	"miranda/internal/users/repository"
	"miranda/internal/users/validator"
	"miranda/pkg/logger"
	"miranda/pkg/model"
	"miranda/pkg/sanitizer"

	"github.com/google/uuid"
)

type UserService = *resource.Service[model.User, string]

func NewUserService(
	repo repository.UserRepository,
	validator *validator.UserValidator,
	events resource.EventPublisher,
	log *logger.Logger,
) UserService {
	p := &preparer{validator: validator}
	return resource.NewService(repo, resource.Spec[model.User, string]{
		Name:     "User",
		KeyField: repository.KeyField,
		KeyOf:    func(u *model.User) string { return u.ID },
		Prepare:  p.prepare,
		Validate: validator.Validate,
		Unique: []resource.UniqueField[model.User]{
			{Field: repository.EmailField, Value: func(u *model.User) any { return u.Email }},
		},
	}, events, log)
}

type preparer struct {
	validator *validator.UserValidator
}

func (p *preparer) prepare(_ context.Context, user *model.User, current *model.User) error {
	if current == nil && user.ID == "" {
		user.ID = uuid.NewString()
	}

	user.FirstName = sanitizer.NormalizeName(user.FirstName)
	user.LastName = sanitizer.NormalizeName(user.LastName)
	user.Job = sanitizer.TrimAndNormalize(user.Job)
	user.Email = sanitizer.NormalizeEmail(user.Email)
	user.PhoneNumber = sanitizer.NormalizePhone(user.PhoneNumber)
	user.Photo = sanitizer.NormalizeURL(user.Photo)

	// The stored hash is carried over by the merge and must not be hashed again.
	if current != nil && user.Password == current.Password {
		return nil
	}
	if err := p.validator.ValidatePassword(user.Password); err != nil {
		return err
	}
	hash, err := auth.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hash
	return nil
}
