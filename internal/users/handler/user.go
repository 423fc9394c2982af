package handler

import (
	"errors"
	"strings"

	"miranda/internal/resource"
	"miranda/internal/users/service"
	"miranda/pkg/logger"
	"miranda/pkg/model"
)

const BasePath = "/users"

type UserHandler = *resource.Handler[model.User, string]

func NewUserHandler(svc service.UserService, guards resource.Guards, log *logger.Logger) UserHandler {
	return resource.NewHandler(svc, resource.HandlerConfig[model.User, string]{
		BasePath: BasePath,
		ParseKey: parseUserID,
		NewPatch: func() resource.Patch[model.User] { return &model.UserUpdate{} },
		Guards:   guards,
	}, log)
}

func parseUserID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > 64 {
		return "", errors.New("invalid user id")
	}
	return id, nil
}
