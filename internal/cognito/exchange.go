package cognito

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/localbiz/marketplace-api/internal/logger"
)

var ErrCodeExchangeFailed = errors.New("authorization code exchange failed")

// TokenPair is the token set returned by the hosted-UI code exchange.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// Exchanger swaps hosted-UI authorization codes for token pairs via the
// user pool's OAuth2 token endpoint.
type Exchanger struct {
	domain      string // https://<pool-domain>.auth.<region>.amazoncognito.com
	clientID    string
	redirectURI string
	httpc       *http.Client
}

// NewExchanger creates an Exchanger for a user pool hosted-UI domain.
func NewExchanger(domain, clientID, redirectURI string, httpc *http.Client) *Exchanger {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Exchanger{
		domain:      strings.TrimRight(domain, "/"),
		clientID:    clientID,
		redirectURI: redirectURI,
		httpc:       httpc,
	}
}

// ExchangeCode trades an authorization code for access/id/refresh tokens.
func (e *Exchanger) ExchangeCode(ctx context.Context, code string) (*TokenPair, error) {
	form := url.Values{
		"grant_type":   {"authorization_code"},
		"client_id":    {e.clientID},
		"code":         {code},
		"redirect_uri": {e.redirectURI},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		e.domain+"/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.httpc.Do(req)
	if err != nil {
		logger.Log.Errorw("token endpoint unreachable", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("token endpoint rejected code exchange", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrCodeExchangeFailed, resp.StatusCode)
	}

	var pair TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return nil, err
	}

	return &pair, nil
}
