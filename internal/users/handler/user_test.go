package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"miranda/internal/resource"
	"miranda/internal/resource/resourcetest"
	"miranda/internal/users/repository"
	"miranda/internal/users/service"
	"miranda/internal/users/validator"
	"miranda/pkg/logger"
	"miranda/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	log := logger.Discard()
	repo := resourcetest.NewMemoryRepository[model.User, string](
		func(u *model.User) string { return u.ID },
		map[string]func(*model.User) any{
			repository.EmailField: func(u *model.User) any { return u.Email },
		},
	)
	svc := service.NewUserService(repo, validator.NewUserValidator(log), nil, log)

	router := httprouter.New()
	NewUserHandler(svc, resource.Guards{}, log).RegisterRoutes(router)
	return router
}

func send(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_NeverReturnsPassword(t *testing.T) {
	router := newTestRouter(t)

	w := send(router, http.MethodPost, "/users", `{
		"id": "emp-1",
		"first_name": "Luis",
		"last_name": "Pérez",
		"email": "luis@hotelmiranda.com",
		"password": "s3cret!"
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")

	for _, path := range []string{"/users", "/users/emp-1"} {
		w = send(router, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "password", path)
	}
}

func TestUserHandler_ValidationDetails(t *testing.T) {
	router := newTestRouter(t)

	w := send(router, http.MethodPost, "/users", `{"first_name":"Luis","email":"luis","password":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"errors"`)
	assert.Contains(t, w.Body.String(), "password")
}

func TestUserHandler_IDCannotChange(t *testing.T) {
	router := newTestRouter(t)

	w := send(router, http.MethodPost, "/users", `{"id":"emp-2","first_name":"Eva","last_name":"Ruiz","email":"eva@hotelmiranda.com","password":"s3cret!"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = send(router, http.MethodPut, "/users/emp-2", `{"id":"emp-3","job":"Chef"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"id":"emp-2"`)
}
