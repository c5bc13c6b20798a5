package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	apperrors "github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/errors"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/usecase/dto"
)

func TestLineHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		env := newTestEnv()
		env.lines.On("Create", mock.Anything, mock.AnythingOfType("*domain.Line")).Return(nil)

		status, body := env.do(t, http.MethodPost, "/api/v1/lines", map[string]any{
			"name":  "Linie 10",
			"color": "#e2001a",
			"stops": stopsBody(),
		})

		require.Equal(t, http.StatusCreated, status)
		var resp dto.LineResponse
		require.NoError(t, json.Unmarshal(body.Data, &resp))
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, 3, resp.RealStops)
		assert.Len(t, resp.Stops, 4)
		assert.InDelta(t, 9.93, resp.Bounds.MinLng, 1e-9)
		assert.InDelta(t, 9.97, resp.Bounds.MaxLng, 1e-9)
	})

	t.Run("bad color", func(t *testing.T) {
		env := newTestEnv()

		status, body := env.do(t, http.MethodPost, "/api/v1/lines", map[string]any{
			"name":  "Linie 10",
			"color": "red",
			"stops": stopsBody(),
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, apperrors.ErrInvalidRequest.Code, body.Error.Code)
		env.lines.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLineHandler_GetListDelete(t *testing.T) {
	id := uuid.New()

	t.Run("get", func(t *testing.T) {
		env := newTestEnv()
		env.lines.On("GetByID", mock.Anything, id).Return(&domain.Line{ID: id, Name: "Linie 10"}, nil)

		status, body := env.do(t, http.MethodGet, "/api/v1/lines/"+id.String(), nil)

		require.Equal(t, http.StatusOK, status)
		var resp dto.LineResponse
		require.NoError(t, json.Unmarshal(body.Data, &resp))
		assert.Equal(t, "Linie 10", resp.Name)
	})

	t.Run("get unknown", func(t *testing.T) {
		env := newTestEnv()
		env.lines.On("GetByID", mock.Anything, id).Return(nil, apperrors.ErrLineNotFound)

		status, _ := env.do(t, http.MethodGet, "/api/v1/lines/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("list", func(t *testing.T) {
		env := newTestEnv()
		env.lines.On("List", mock.Anything, 5, 10).Return([]*domain.Line{{ID: id}, {ID: uuid.New()}}, nil)

		status, body := env.do(t, http.MethodGet, "/api/v1/lines?limit=5&offset=10", nil)

		require.Equal(t, http.StatusOK, status)
		var resp dto.LineListResponse
		require.NoError(t, json.Unmarshal(body.Data, &resp))
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, id, resp.Lines[0].ID)
	})

	t.Run("batch", func(t *testing.T) {
		env := newTestEnv()
		env.lines.On("ListByIDs", mock.Anything, []uuid.UUID{id}).Return([]*domain.Line{{ID: id}}, nil)

		status, body := env.do(t, http.MethodPost, "/api/v1/lines/batch", map[string]any{
			"ids": []string{id.String()},
		})

		require.Equal(t, http.StatusOK, status)
		var resp dto.LineListResponse
		require.NoError(t, json.Unmarshal(body.Data, &resp))
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("delete", func(t *testing.T) {
		env := newTestEnv()
		env.lines.On("Delete", mock.Anything, id).Return(nil)

		status, _ := env.do(t, http.MethodDelete, "/api/v1/lines/"+id.String(), nil)

		assert.Equal(t, http.StatusNoContent, status)
		env.lines.AssertExpectations(t)
	})
}
