package repositories

import (
	"context"
	"testing"

	"github.com/skillswap-platform/models"
)

func TestMemoryUpdateStatusIsConditional(t *testing.T) {
	store, _ := NewMemoryStore()
	ctx := context.Background()

	request := models.SwapRequest{
		RequesterID:      "user-a",
		RecipientID:      "user-b",
		OfferedSkillID:   "skill-1",
		RequestedSkillID: "skill-2",
		Status:           models.SwapPending,
	}
	if err := store.Swaps.Create(ctx, &request); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	applied, err := store.Swaps.UpdateStatus(ctx, request.ID, models.SwapPending, models.SwapAccepted, "")
	if err != nil || !applied {
		t.Fatalf("expected first write to apply, applied=%v err=%v", applied, err)
	}

	// Same precondition again: the stored status moved on, so nothing applies.
	applied, err = store.Swaps.UpdateStatus(ctx, request.ID, models.SwapPending, models.SwapRejected, "")
	if err != nil {
		t.Fatalf("conditional write errored: %v", err)
	}
	if applied {
		t.Fatalf("stale precondition must not apply")
	}

	current, err := store.Swaps.FindByID(ctx, request.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if current.Status != models.SwapAccepted {
		t.Fatalf("status overwritten to %s", current.Status)
	}
}

func TestMemoryCompleteWritesTransactionOnce(t *testing.T) {
	store, _ := NewMemoryStore()
	ctx := context.Background()

	request := models.SwapRequest{
		RequesterID:      "user-a",
		RecipientID:      "user-b",
		OfferedSkillID:   "skill-1",
		RequestedSkillID: "skill-2",
		Status:           models.SwapAccepted,
	}
	if err := store.Swaps.Create(ctx, &request); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	txn := models.Transaction{SwapRequestID: request.ID, RequesterID: "user-a", RecipientID: "user-b"}
	applied, err := store.Swaps.Complete(ctx, request.ID, &txn)
	if err != nil || !applied {
		t.Fatalf("expected completion to apply, applied=%v err=%v", applied, err)
	}

	second := models.Transaction{SwapRequestID: request.ID, RequesterID: "user-a", RecipientID: "user-b"}
	applied, err = store.Swaps.Complete(ctx, request.ID, &second)
	if err != nil {
		t.Fatalf("second completion errored: %v", err)
	}
	if applied {
		t.Fatalf("second completion must not apply")
	}

	txns, err := store.Transactions.ListByUser(ctx, "user-a")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("expected one transaction, got %d", len(txns))
	}
}

func TestMemoryFindBySubjectID(t *testing.T) {
	store, _ := NewMemoryStore()
	ctx := context.Background()

	user := models.User{SubjectID: "sub-a", Email: "a@example.com", Name: "A"}
	if err := store.Users.Create(ctx, &user); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("create should assign an id")
	}

	found, err := store.Users.FindBySubjectID(ctx, "sub-a")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("wrong user resolved")
	}

	if _, err := store.Users.FindBySubjectID(ctx, "sub-missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
