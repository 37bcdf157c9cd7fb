package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/localbiz/marketplace-api/internal/models"
)

func TestListBusinessesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()

	tests := []struct {
		name          string
		target        string
		mockSetup     func(m *MockBusinessLister)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "defaults applied",
			target: "/api/businesses",
			mockSetup: func(m *MockBusinessLister) {
				m.EXPECT().
					List(gomock.Any(), models.BusinessFilter{}, 1, defaultPageLimit).
					Return([]*models.Business{}, models.NewPagination(1, defaultPageLimit, 0), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "filters and paging forwarded",
			target: "/api/businesses?page=3&limit=5&category=cafe&search=coffee&owner_id=" + ownerID.String(),
			mockSetup: func(m *MockBusinessLister) {
				m.EXPECT().
					List(gomock.Any(), models.BusinessFilter{Category: "cafe", Search: "coffee", OwnerID: &ownerID}, 3, 5).
					Return([]*models.Business{}, models.NewPagination(3, 5, 42), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "limit clamped to maximum",
			target: "/api/businesses?limit=5000",
			mockSetup: func(m *MockBusinessLister) {
				m.EXPECT().
					List(gomock.Any(), models.BusinessFilter{}, 1, maxPageLimit).
					Return([]*models.Business{}, models.NewPagination(1, maxPageLimit, 0), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "garbage paging falls back to defaults",
			target: "/api/businesses?page=zero&limit=-4",
			mockSetup: func(m *MockBusinessLister) {
				m.EXPECT().
					List(gomock.Any(), models.BusinessFilter{}, 1, defaultPageLimit).
					Return([]*models.Business{}, models.NewPagination(1, defaultPageLimit, 0), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "malformed owner id",
			target:        "/api/businesses?owner_id=nope",
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid owner id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBusinessLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewListBusinessesHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
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
