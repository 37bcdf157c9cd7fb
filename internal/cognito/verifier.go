package cognito

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/localbiz/marketplace-api/internal/logger"
	"github.com/localbiz/marketplace-api/internal/models"
)

var (
	ErrTokenInvalid = errors.New("cognito token verification failed")
	ErrUnknownKey   = errors.New("token signed with unknown key")
)

// jwk is a single RSA key from the pool's JWKS document.
type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwks struct {
	Keys []jwk `json:"keys"`
}

// Verifier validates Cognito-issued RS256 tokens against the user pool's
// published JWKS and maps token claims to the request identity.
type Verifier struct {
	issuer   string
	clientID string
	httpc    *http.Client

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

// NewVerifier creates a verifier for a user pool. The issuer is the pool's
// token issuer URL, e.g. https://cognito-idp.us-east-1.amazonaws.com/<poolID>.
func NewVerifier(issuer, clientID string, httpc *http.Client) *Verifier {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Verifier{
		issuer:   issuer,
		clientID: clientID,
		httpc:    httpc,
		keys:     map[string]*rsa.PublicKey{},
	}
}

// Verify validates the token and returns the identity derived from its
// claims: id from "sub", email defaulting to empty string, role from
// "custom:role" defaulting to consumer.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*models.AuthUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		kid, _ := token.Header["kid"].(string)
		return v.keyForKid(ctx, kid)
	},
		jwt.WithIssuer(v.issuer),
	)
	if err != nil {
		logger.Log.Errorw("cognito token rejected", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if v.clientID != "" && !issuedForClient(claims, v.clientID) {
		return nil, fmt.Errorf("%w: token not issued for this client", ErrTokenInvalid)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrTokenInvalid)
	}

	user := &models.AuthUser{
		ID:   sub,
		Role: models.RoleConsumer,
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if role, ok := claims["custom:role"].(string); ok && models.ValidRoles[role] {
		user.Role = role
	}
	if verified, ok := claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}

	return user, nil
}

// issuedForClient reports whether the token belongs to the configured app
// client. ID tokens carry the client ID in aud, access tokens in client_id.
func issuedForClient(claims jwt.MapClaims, clientID string) bool {
	if aud, _ := claims.GetAudience(); len(aud) > 0 {
		for _, a := range aud {
			if a == clientID {
				return true
			}
		}
		return false
	}
	cid, _ := claims["client_id"].(string)
	return cid == clientID
}

// keyForKid returns the cached public key for a key ID, refetching the JWKS
// once when the kid is unknown (pool key rotation).
func (v *Verifier) keyForKid(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	v.mu.RUnlock()
	if ok {
		return key, nil
	}

	if err := v.fetchKeys(ctx); err != nil {
		return nil, err
	}

	v.mu.RLock()
	key, ok = v.keys[kid]
	v.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownKey
	}
	return key, nil
}

func (v *Verifier) fetchKeys(ctx context.Context) error {
	url := v.issuer + "/.well-known/jwks.json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := v.httpc.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch JWKS", "url", url, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks endpoint returned %d", resp.StatusCode)
	}

	var doc jwks
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return err
	}

	fresh := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := k.publicKey()
		if err != nil {
			logger.Log.Errorw("skipping malformed JWK", "kid", k.Kid, "error", err)
			continue
		}
		fresh[k.Kid] = pub
	}

	v.mu.Lock()
	v.keys = fresh
	v.mu.Unlock()

	return nil
}

func (k jwk) publicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
