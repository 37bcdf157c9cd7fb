package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localbiz/marketplace-api/internal/middlewares"
	"github.com/localbiz/marketplace-api/internal/models"
)

func TestCognitoMeHandler(t *testing.T) {
	t.Run("verified identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/cognito/me", nil)
		req = req.WithContext(middlewares.SetAuthUserToContext(req.Context(), &models.AuthUser{
			ID:            "abc-123",
			Email:         "owner@example.com",
			Role:          models.RoleBusinessOwner,
			EmailVerified: true,
		}))
		w := httptest.NewRecorder()

		NewCognitoMeHandler()(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Success)

		data, ok := resp.Data.(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, "abc-123", data["id"])
		assert.Equal(t, "owner@example.com", data["email"])
		assert.Equal(t, models.RoleBusinessOwner, data["role"])
		assert.Equal(t, true, data["email_verified"])
	})

	t.Run("no identity in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/cognito/me", nil)
		w := httptest.NewRecorder()

		NewCognitoMeHandler()(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp Response
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "unauthorized", resp.Error)
	})
}
