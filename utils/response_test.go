package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-platform/apperrors"
)

func TestStatusMappingIsTotal(t *testing.T) {
	cases := map[apperrors.Kind]int{
		apperrors.KindMalformedToken:       http.StatusUnauthorized,
		apperrors.KindExpiredToken:         http.StatusUnauthorized,
		apperrors.KindRevokedToken:         http.StatusUnauthorized,
		apperrors.KindServiceUnavailable:   http.StatusUnauthorized,
		apperrors.KindForbidden:            http.StatusForbidden,
		apperrors.KindUnregisteredIdentity: http.StatusNotFound,
		apperrors.KindNotFound:             http.StatusNotFound,
		apperrors.KindMissingField:         http.StatusBadRequest,
		apperrors.KindInvalidReference:     http.StatusBadRequest,
		apperrors.KindSelfReference:        http.StatusBadRequest,
		apperrors.KindInvalidTransition:    http.StatusConflict,
		apperrors.KindConflict:             http.StatusConflict,
		apperrors.KindInternalFault:        http.StatusInternalServerError,
	}

	for kind, want := range cases {
		if got := StatusFor(kind); got != want {
			t.Errorf("kind %v: expected %d, got %d", kind, want, got)
		}
	}
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return ctx, recorder
}

func TestSuccessEnvelopeOmitsError(t *testing.T) {
	ctx, recorder := newTestContext(t)
	Success(ctx, http.StatusOK, gin.H{"key": "value"}, "done")

	var envelope map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid envelope JSON: %v", err)
	}
	if envelope["success"] != true {
		t.Fatalf("expected success=true, got %v", envelope["success"])
	}
	if _, present := envelope["error"]; present {
		t.Fatalf("success envelope must omit error")
	}
	if envelope["message"] != "done" {
		t.Fatalf("expected message to round-trip, got %v", envelope["message"])
	}
}

func TestErrorEnvelopeOmitsData(t *testing.T) {
	ctx, recorder := newTestContext(t)
	Error(ctx, apperrors.New(apperrors.KindInvalidTransition, "cannot accept twice"))

	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", recorder.Code)
	}

	var envelope map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid envelope JSON: %v", err)
	}
	if envelope["success"] != false {
		t.Fatalf("expected success=false, got %v", envelope["success"])
	}
	if _, present := envelope["data"]; present {
		t.Fatalf("error envelope must omit data")
	}
	if envelope["error"] != "cannot accept twice" {
		t.Fatalf("expected error message, got %v", envelope["error"])
	}
}

func TestUnclassifiedErrorBecomesInternalFault(t *testing.T) {
	ctx, recorder := newTestContext(t)
	Error(ctx, errors.New("pq: connection refused"))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}

	var envelope map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid envelope JSON: %v", err)
	}
	// Storage detail must not leak to the caller.
	if envelope["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %v", envelope["error"])
	}
}
