package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/localbiz/marketplace-api/internal/apperrors"
	"github.com/localbiz/marketplace-api/internal/cognito"
	"github.com/localbiz/marketplace-api/internal/logger"
)

var ErrInvalidAuthCode = apperrors.New("invalid or expired authorization code", http.StatusUnauthorized)

// CodeExchanger swaps hosted-UI authorization codes for token pairs.
type CodeExchanger interface {
	ExchangeCode(ctx context.Context, code string) (*cognito.TokenPair, error)
}

// CognitoService fronts the identity provider's code-exchange flow.
type CognitoService struct {
	exchanger CodeExchanger
}

// NewCognitoService creates a new CognitoService instance.
func NewCognitoService(exchanger CodeExchanger) *CognitoService {
	return &CognitoService{exchanger: exchanger}
}

// Login exchanges an authorization code for the provider's token set.
// Token validity stays delegated to the provider; nothing is persisted.
func (svc *CognitoService) Login(ctx context.Context, code string) (*cognito.TokenPair, error) {
	pair, err := svc.exchanger.ExchangeCode(ctx, code)
	if err != nil {
		if errors.Is(err, cognito.ErrCodeExchangeFailed) {
			return nil, ErrInvalidAuthCode
		}
		logger.Log.Errorw("code exchange failed", "err", err)
		return nil, err
	}
	return pair, nil
}
