package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skillswap-platform/apperrors"
)

func TestFirebaseVerifyClassifiesErrorCodes(t *testing.T) {
	cases := []struct {
		code string
		kind apperrors.Kind
	}{
		{"TOKEN_EXPIRED", apperrors.KindExpiredToken},
		{"USER_DISABLED", apperrors.KindRevokedToken},
		{"USER_NOT_FOUND", apperrors.KindRevokedToken},
		{"INVALID_ID_TOKEN", apperrors.KindMalformedToken},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":{"message":"` + tc.code + `"}}`))
			}))
			defer server.Close()

			provider := NewFirebaseProviderWithURL("key", server.URL, time.Second)
			_, err := provider.VerifyToken(context.Background(), "some-token")
			if !apperrors.Is(err, tc.kind) {
				t.Fatalf("expected kind %v for %s, got %v", tc.kind, tc.code, err)
			}
		})
	}
}

func TestFirebaseVerifyServerErrorIsServiceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewFirebaseProviderWithURL("key", server.URL, time.Second)
	_, err := provider.VerifyToken(context.Background(), "some-token")
	if !apperrors.Is(err, apperrors.KindServiceUnavailable) {
		t.Fatalf("expected service unavailable, got %v", err)
	}
}

func TestFirebaseVerifyTimeoutIsServiceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	provider := NewFirebaseProviderWithURL("key", server.URL, 20*time.Millisecond)
	_, err := provider.VerifyToken(context.Background(), "some-token")
	if !apperrors.Is(err, apperrors.KindServiceUnavailable) {
		t.Fatalf("expected service unavailable, got %v", err)
	}
}

func TestFirebaseVerifyResolvesSubject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users":[{"localId":"sub-123"}]}`))
	}))
	defer server.Close()

	provider := NewFirebaseProviderWithURL("key", server.URL, time.Second)
	verified, err := provider.VerifyToken(context.Background(), "some-token")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if verified.SubjectID != "sub-123" {
		t.Fatalf("wrong subject: %s", verified.SubjectID)
	}
}

func TestFirebaseSignUpParsesCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"localId":"sub-123","idToken":"tok","expiresIn":"3600"}`))
	}))
	defer server.Close()

	provider := NewFirebaseProviderWithURL("key", server.URL, time.Second)
	creds, err := provider.SignUp(context.Background(), "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("sign up failed: %v", err)
	}
	if creds.SubjectID != "sub-123" || creds.Token != "tok" {
		t.Fatalf("wrong credentials: %+v", creds)
	}
	if !creds.ExpiresAt.After(time.Now().Add(30 * time.Minute)) {
		t.Fatalf("expiry not parsed from expiresIn")
	}
}

func TestFirebaseSignUpEmailExistsIsConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"EMAIL_EXISTS"}}`))
	}))
	defer server.Close()

	provider := NewFirebaseProviderWithURL("key", server.URL, time.Second)
	_, err := provider.SignUp(context.Background(), "alice@example.com", "password123")
	if !apperrors.Is(err, apperrors.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
