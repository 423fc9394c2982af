package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"miranda/internal/resource"
	"miranda/internal/resource/resourcetest"
	"miranda/internal/rooms/service"
	"miranda/internal/rooms/validator"
	"miranda/pkg/logger"
	"miranda/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, guards resource.Guards) *httprouter.Router {
	t.Helper()
	log := logger.Discard()
	repo := resourcetest.NewMemoryRepository[model.Room, int](
		func(r *model.Room) int { return r.RoomNumber },
		nil,
	)
	svc := service.NewRoomService(repo, validator.NewRoomValidator(log), nil, log)

	router := httprouter.New()
	NewRoomHandler(svc, guards, log).RegisterRoutes(router)
	return router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoomHandler_Lifecycle(t *testing.T) {
	router := newTestRouter(t, resource.Guards{})

	w := do(router, http.MethodPost, "/rooms", `{"roomNumber":101,"roomType":"Single Bed","price":90,"offer":"NO"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(router, http.MethodPost, "/rooms", `{"roomNumber":101,"roomType":"Suite","price":300}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(router, http.MethodGet, "/rooms", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data       []model.Room `json:"data"`
		TotalCount int64        `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)

	w = do(router, http.MethodPut, "/rooms/101", `{"price":95}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"price":95`)

	w = do(router, http.MethodDelete, "/rooms/101", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Room with ID: 101 deleted")

	w = do(router, http.MethodGet, "/rooms/101", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoomHandler_InvalidRoomNumber(t *testing.T) {
	router := newTestRouter(t, resource.Guards{})

	for _, path := range []string{"/rooms/abc", "/rooms/0", "/rooms/-4"} {
		w := do(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestRoomHandler_Guards(t *testing.T) {
	var protected, created int
	guards := resource.Guards{
		Protect: func(next httprouter.Handle) httprouter.Handle {
			return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
				protected++
				next(w, r, ps)
			}
		},
		Create: func(next httprouter.Handle) httprouter.Handle {
			return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
				created++
				next(w, r, ps)
			}
		},
	}
	router := newTestRouter(t, guards)

	do(router, http.MethodGet, "/rooms", "")
	do(router, http.MethodPost, "/rooms", `{"roomNumber":7,"roomType":"Suite"}`)

	assert.Equal(t, 2, protected)
	assert.Equal(t, 1, created)
}
