package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/skillswap-platform/apperrors"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// FirebaseProvider delegates credential checks to the Firebase
// identitytoolkit REST API. It is stateless; every call is bounded by the
// configured timeout and failures past the timeout classify as
// ServiceUnavailable.
type FirebaseProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewFirebaseProvider creates a provider against the public identitytoolkit
// endpoint.
func NewFirebaseProvider(apiKey string, timeout time.Duration) *FirebaseProvider {
	return &FirebaseProvider{
		apiKey:  apiKey,
		baseURL: identityToolkitURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// NewFirebaseProviderWithURL is used by tests to point at a stub server.
func NewFirebaseProviderWithURL(apiKey, baseURL string, timeout time.Duration) *FirebaseProvider {
	p := NewFirebaseProvider(apiKey, timeout)
	p.baseURL = baseURL
	return p
}

type signUpResponse struct {
	LocalID   string `json:"localId"`
	IDToken   string `json:"idToken"`
	ExpiresIn string `json:"expiresIn"`
}

type lookupResponse struct {
	Users []struct {
		LocalID string `json:"localId"`
	} `json:"users"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignUp creates an account with the identity service.
func (p *FirebaseProvider) SignUp(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]any{"email": email, "password": password, "returnSecureToken": true}
	var resp signUpResponse
	if err := p.post(ctx, "accounts:signUp", body, &resp); err != nil {
		return nil, err
	}
	return p.credentials(resp)
}

// SignIn exchanges email/password for a bearer token.
func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]any{"email": email, "password": password, "returnSecureToken": true}
	var resp signUpResponse
	if err := p.post(ctx, "accounts:signInWithPassword", body, &resp); err != nil {
		return nil, err
	}
	return p.credentials(resp)
}

// VerifyToken resolves a bearer token to its subject via accounts:lookup.
func (p *FirebaseProvider) VerifyToken(ctx context.Context, token string) (*VerifiedToken, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errEmptyToken
	}

	var resp lookupResponse
	if err := p.post(ctx, "accounts:lookup", map[string]any{"idToken": token}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Users) == 0 {
		return nil, apperrors.New(apperrors.KindMalformedToken, "token does not resolve to an account")
	}
	return &VerifiedToken{SubjectID: resp.Users[0].LocalID, IssuedAt: time.Now()}, nil
}

func (p *FirebaseProvider) credentials(resp signUpResponse) (*Credentials, error) {
	ttl, err := strconv.Atoi(resp.ExpiresIn)
	if err != nil {
		ttl = 3600
	}
	return &Credentials{
		SubjectID: resp.LocalID,
		Token:     resp.IDToken,
		ExpiresAt: time.Now().Add(time.Duration(ttl) * time.Second),
	}, nil
}

func (p *FirebaseProvider) post(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return apperrors.Internal(err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.baseURL, endpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return apperrors.Internal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		// Timeouts and transport failures are retryable by the caller.
		return apperrors.Wrap(apperrors.KindServiceUnavailable, "identity service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return apperrors.New(apperrors.KindServiceUnavailable, "identity service error")
	}
	if resp.StatusCode >= 400 {
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return classify(errResp.Error.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// classify maps identitytoolkit error codes onto the auth taxonomy.
func classify(code string) error {
	switch {
	case strings.HasPrefix(code, "TOKEN_EXPIRED"):
		return apperrors.New(apperrors.KindExpiredToken, "token expired")
	case strings.HasPrefix(code, "USER_DISABLED"):
		return apperrors.New(apperrors.KindRevokedToken, "account disabled")
	case strings.HasPrefix(code, "USER_NOT_FOUND"):
		return apperrors.New(apperrors.KindRevokedToken, "account no longer exists")
	case strings.HasPrefix(code, "EMAIL_EXISTS"):
		return apperrors.New(apperrors.KindConflict, "email already registered")
	case strings.HasPrefix(code, "EMAIL_NOT_FOUND"), strings.HasPrefix(code, "INVALID_PASSWORD"),
		strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"):
		return apperrors.New(apperrors.KindMalformedToken, "invalid email or password")
	default:
		return apperrors.New(apperrors.KindMalformedToken, "invalid token")
	}
}
