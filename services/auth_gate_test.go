package services

import (
	"context"
	"errors"
	"testing"

	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/identity"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/repositories"
)

// stubProvider fails VerifyToken a configured number of times before
// succeeding with the given subject.
type stubProvider struct {
	failures int
	failWith error
	subject  string
	calls    int
}

func (p *stubProvider) SignUp(ctx context.Context, email, password string) (*identity.Credentials, error) {
	return nil, errors.New("not implemented")
}

func (p *stubProvider) SignIn(ctx context.Context, email, password string) (*identity.Credentials, error) {
	return nil, errors.New("not implemented")
}

func (p *stubProvider) VerifyToken(ctx context.Context, token string) (*identity.VerifiedToken, error) {
	p.calls++
	if p.calls <= p.failures {
		return nil, p.failWith
	}
	return &identity.VerifiedToken{SubjectID: p.subject}, nil
}

func newGateFixture(t *testing.T, provider identity.Provider) (*AuthGate, *repositories.Store) {
	t.Helper()
	store, _ := repositories.NewMemoryStore()
	return NewAuthGate(provider, store.Users), store
}

func seedUser(t *testing.T, store *repositories.Store, user *models.User) {
	t.Helper()
	if err := store.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
}

func TestAuthorizeResolvesSubjectToUser(t *testing.T) {
	provider := &stubProvider{subject: "sub-alice"}
	gate, store := newGateFixture(t, provider)
	seedUser(t, store, &models.User{ID: "user-alice", SubjectID: "sub-alice", Email: "alice@example.com", Name: "Alice"})

	user, err := gate.Authorize(context.Background(), "token", "")
	if err != nil {
		t.Fatalf("authorize failed: %v", err)
	}
	if user.ID != "user-alice" {
		t.Fatalf("resolved wrong user: %s", user.ID)
	}
}

func TestAuthorizeEmptyCredential(t *testing.T) {
	gate, _ := newGateFixture(t, &stubProvider{subject: "sub-alice"})

	_, err := gate.Authorize(context.Background(), "", "")
	if !apperrors.Is(err, apperrors.KindMalformedToken) {
		t.Fatalf("expected malformed token, got %v", err)
	}
}

func TestAuthorizeUnregisteredIdentity(t *testing.T) {
	provider := &stubProvider{subject: "sub-ghost"}
	gate, _ := newGateFixture(t, provider)

	_, err := gate.Authorize(context.Background(), "token", "")
	if !apperrors.Is(err, apperrors.KindUnregisteredIdentity) {
		t.Fatalf("expected unregistered identity, got %v", err)
	}
}

func TestAuthorizeRetriesOnceOnServiceUnavailable(t *testing.T) {
	provider := &stubProvider{
		failures: 1,
		failWith: apperrors.New(apperrors.KindServiceUnavailable, "identity service unreachable"),
		subject:  "sub-alice",
	}
	gate, store := newGateFixture(t, provider)
	seedUser(t, store, &models.User{ID: "user-alice", SubjectID: "sub-alice", Email: "alice@example.com", Name: "Alice"})

	user, err := gate.Authorize(context.Background(), "token", "")
	if err != nil {
		t.Fatalf("expected the retry to succeed, got %v", err)
	}
	if user.ID != "user-alice" {
		t.Fatalf("resolved wrong user: %s", user.ID)
	}
	if provider.calls != 2 {
		t.Fatalf("expected exactly 2 verify calls, got %d", provider.calls)
	}
}

func TestAuthorizeGivesUpAfterSecondFailure(t *testing.T) {
	provider := &stubProvider{
		failures: 2,
		failWith: apperrors.New(apperrors.KindServiceUnavailable, "identity service unreachable"),
		subject:  "sub-alice",
	}
	gate, _ := newGateFixture(t, provider)

	_, err := gate.Authorize(context.Background(), "token", "")
	if !apperrors.Is(err, apperrors.KindServiceUnavailable) {
		t.Fatalf("expected service unavailable, got %v", err)
	}
	if provider.calls != 2 {
		t.Fatalf("expected exactly 2 verify calls, got %d", provider.calls)
	}
}

func TestAuthorizeDoesNotRetryTerminalFailures(t *testing.T) {
	provider := &stubProvider{
		failures: 1,
		failWith: apperrors.New(apperrors.KindExpiredToken, "token expired"),
	}
	gate, _ := newGateFixture(t, provider)

	_, err := gate.Authorize(context.Background(), "token", "")
	if !apperrors.Is(err, apperrors.KindExpiredToken) {
		t.Fatalf("expected expired token, got %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("terminal failure must not be retried, got %d calls", provider.calls)
	}
}

func TestAuthorizeBannedUser(t *testing.T) {
	provider := &stubProvider{subject: "sub-alice"}
	gate, store := newGateFixture(t, provider)
	seedUser(t, store, &models.User{ID: "user-alice", SubjectID: "sub-alice", Email: "alice@example.com", Name: "Alice", IsBanned: true})

	_, err := gate.Authorize(context.Background(), "token", "")
	if !apperrors.Is(err, apperrors.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestAuthorizeEnforcesAdminRole(t *testing.T) {
	provider := &stubProvider{subject: "sub-alice"}
	gate, store := newGateFixture(t, provider)
	seedUser(t, store, &models.User{ID: "user-alice", SubjectID: "sub-alice", Email: "alice@example.com", Name: "Alice", Role: models.RoleUser})

	_, err := gate.Authorize(context.Background(), "token", models.RoleAdmin)
	if !apperrors.Is(err, apperrors.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
