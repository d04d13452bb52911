package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-platform/dto"
	"github.com/skillswap-platform/identity"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/repositories"
	"github.com/skillswap-platform/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repositories.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()

	store, _ := repositories.NewMemoryStore()
	provider := identity.NewLocalProvider("test-secret", time.Hour, store.Users)

	svc := Services{
		Gate:         services.NewAuthGate(provider, store.Users),
		Auth:         services.NewAuthService(provider, store.Users),
		Users:        services.NewUserService(store.Users, store.Skills, store.UserSkills),
		Skills:       services.NewSkillService(store.Skills),
		Swaps:        services.NewSwapService(store),
		Reviews:      services.NewReviewService(store.Reviews, store.Swaps, store.Users),
		Transactions: services.NewTransactionService(store.Transactions),
		Messages:     services.NewMessageService(store.Messages),
		Admin:        services.NewAdminService(store.Users),
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), svc)
	return router, store
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var env envelope
	if len(recorder.Body.Bytes()) > 0 {
		if err := json.Unmarshal(recorder.Body.Bytes(), &env); err != nil {
			t.Fatalf("response is not an envelope: %v (%s)", err, recorder.Body.String())
		}
	}
	return recorder, env
}

func registerUser(t *testing.T, router *gin.Engine, email, name string) (token, userID string) {
	t.Helper()
	recorder, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email:    email,
		Password: "password123",
		Name:     name,
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("registration failed with %d: %s", recorder.Code, recorder.Body.String())
	}

	var resp dto.AuthResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("unexpected auth payload: %v", err)
	}
	if resp.Token == "" || resp.User.ID == "" {
		t.Fatalf("incomplete auth response: %+v", resp)
	}
	return resp.Token, resp.User.ID
}

func seedSkill(t *testing.T, store *repositories.Store, name string) string {
	t.Helper()
	skill := models.Skill{ID: models.SkillID(name), Name: name}
	if err := store.Skills.Create(context.Background(), &skill); err != nil {
		t.Fatalf("failed to seed skill: %v", err)
	}
	return skill.ID
}

func TestSwapLifecycleOverHTTP(t *testing.T) {
	router, store := newTestRouter(t)

	aliceToken, _ := registerUser(t, router, "alice@example.com", "Alice")
	bobToken, bobID := registerUser(t, router, "bob@example.com", "Bob")

	guitar := seedSkill(t, store, "Guitar Playing")
	spanish := seedSkill(t, store, "Spanish Language")

	// Alice proposes the swap.
	recorder, env := doJSON(t, router, http.MethodPost, "/api/v1/swap-requests", aliceToken, dto.CreateSwapRequest{
		RecipientID:      bobID,
		OfferedSkillID:   guitar,
		RequestedSkillID: spanish,
		Message:          "want to trade?",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create failed with %d: %s", recorder.Code, recorder.Body.String())
	}
	if !env.Success {
		t.Fatalf("expected success envelope, got %s", recorder.Body.String())
	}

	var created models.SwapRequest
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("unexpected swap payload: %v", err)
	}
	if created.Status != models.SwapPending {
		t.Fatalf("new swap should be pending, got %s", created.Status)
	}

	// Alice cannot accept her own request.
	recorder, _ = doJSON(t, router, http.MethodPut, "/api/v1/swap-requests/"+created.ID+"/update", aliceToken, dto.UpdateSwapRequest{
		Action: dto.SwapActionAccept,
	})
	if recorder.Code != http.StatusConflict {
		t.Fatalf("requester accept should be 409, got %d: %s", recorder.Code, recorder.Body.String())
	}

	// Bob accepts, then completes.
	recorder, env = doJSON(t, router, http.MethodPut, "/api/v1/swap-requests/"+created.ID+"/update", bobToken, dto.UpdateSwapRequest{
		Action:          dto.SwapActionAccept,
		ResponseMessage: "sounds good",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("accept failed with %d: %s", recorder.Code, recorder.Body.String())
	}
	var accepted models.SwapRequest
	if err := json.Unmarshal(env.Data, &accepted); err != nil {
		t.Fatalf("unexpected swap payload: %v", err)
	}
	if accepted.Status != models.SwapAccepted {
		t.Fatalf("expected accepted, got %s", accepted.Status)
	}

	recorder, _ = doJSON(t, router, http.MethodPut, "/api/v1/swap-requests/"+created.ID+"/update", bobToken, dto.UpdateSwapRequest{
		Action: dto.SwapActionComplete,
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("complete failed with %d: %s", recorder.Code, recorder.Body.String())
	}

	// Completion recorded exactly one transaction, visible to both sides.
	recorder, env = doJSON(t, router, http.MethodGet, "/api/v1/me/transactions", aliceToken, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("transaction list failed with %d", recorder.Code)
	}
	var txns []models.Transaction
	if err := json.Unmarshal(env.Data, &txns); err != nil {
		t.Fatalf("unexpected transaction payload: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("expected one transaction, got %d", len(txns))
	}
	if txns[0].SwapRequestID != created.ID {
		t.Fatalf("transaction points at wrong swap: %s", txns[0].SwapRequestID)
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder, env := doJSON(t, router, http.MethodGet, "/api/v1/me/swap-requests", "", nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}
	if env.Success {
		t.Fatalf("error envelope should not claim success")
	}
	if env.Error == "" {
		t.Fatalf("error envelope should carry a message")
	}
}

func TestProtectedRoutesRejectGarbageToken(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder, _ := doJSON(t, router, http.MethodGet, "/api/v1/me/swap-requests", "not-a-real-token", nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	router, _ := newTestRouter(t)

	token, _ := registerUser(t, router, "carol@example.com", "Carol")
	recorder, _ := doJSON(t, router, http.MethodGet, "/api/v1/admin/users", token, nil)
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", recorder.Code)
	}
}

func TestBannedUserIsLockedOut(t *testing.T) {
	router, store := newTestRouter(t)

	token, userID := registerUser(t, router, "dave@example.com", "Dave")

	ctx := context.Background()
	user, err := store.Users.FindByID(ctx, userID)
	if err != nil {
		t.Fatalf("failed to load user: %v", err)
	}
	user.IsBanned = true
	if err := store.Users.Update(ctx, user); err != nil {
		t.Fatalf("failed to ban user: %v", err)
	}

	recorder, _ := doJSON(t, router, http.MethodGet, "/api/v1/me/swap-requests", token, nil)
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("banned user should get 403, got %d", recorder.Code)
	}
}
