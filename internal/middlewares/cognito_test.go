package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/models"
)

type fakeExtractor struct {
	token string
	err   error
}

func (f *fakeExtractor) GetTokenFromRequest(_ context.Context, _ *http.Request) (string, error) {
	return f.token, f.err
}

type fakeVerifier struct {
	user *models.AuthUser
	err  error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*models.AuthUser, error) {
	return f.user, f.err
}

func TestAuthenticateCognito(t *testing.T) {
	user := &models.AuthUser{ID: "sub-123", Email: "alice@example.com", Role: models.RoleConsumer}

	tests := []struct {
		name         string
		extractor    *fakeExtractor
		verifier     *fakeVerifier
		expectedCode int
		expectNext   bool
	}{
		{
			name:         "verified token attaches identity",
			extractor:    &fakeExtractor{token: "provider-token"},
			verifier:     &fakeVerifier{user: user},
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
		{
			name:         "absent header gets 401",
			extractor:    &fakeExtractor{err: jwt.ErrMissingHeader},
			verifier:     &fakeVerifier{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "malformed header gets 401",
			extractor:    &fakeExtractor{err: jwt.ErrInvalidHeader},
			verifier:     &fakeVerifier{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "rejected token gets 403",
			extractor:    &fakeExtractor{token: "expired"},
			verifier:     &fakeVerifier{err: errors.New("token is expired")},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got := GetAuthUserFromContext(r.Context())
				assert.Equal(t, user, got)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthenticateCognito(tt.extractor, tt.verifier)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
