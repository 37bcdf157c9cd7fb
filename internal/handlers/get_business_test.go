package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/localbiz/marketplace-api/internal/models"
	"github.com/localbiz/marketplace-api/internal/services"
)

// newRouteRequest builds a request with a chi route context so URLParam works.
func newRouteRequest(method, target string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetBusinessHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	businessID := uuid.New()

	tests := []struct {
		name          string
		param         string
		mockSetup     func(m *MockBusinessGetter)
		expectedCode  int
		expectedError string
	}{
		{
			name:  "success",
			param: businessID.String(),
			mockSetup: func(m *MockBusinessGetter) {
				m.EXPECT().
					Get(gomock.Any(), businessID).
					Return(&models.Business{BusinessID: businessID, Name: "Blue Bottle"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "not found",
			param: businessID.String(),
			mockSetup: func(m *MockBusinessGetter) {
				m.EXPECT().
					Get(gomock.Any(), businessID).
					Return(nil, services.ErrBusinessNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: services.ErrBusinessNotFound.Message,
		},
		{
			name:          "malformed id",
			param:         "not-a-uuid",
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid business id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBusinessGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewGetBusinessHandler(mockSvc)

			req := newRouteRequest(http.MethodGet, "/api/businesses/"+tt.param, map[string]string{"businessID": tt.param})
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp Response
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tt.expectedError != "" {
				assert.False(t, resp.Success)
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				assert.True(t, resp.Success)
			}
		})
	}
}
