package repositories

import (
	"context"
	"errors"

	"github.com/skillswap-platform/models"
)

// ErrNotFound is returned by every repository when a record does not exist,
// regardless of backend.
var ErrNotFound = errors.New("record not found")

// SwapListFilter selects which side of a user's swap requests to return.
type SwapListFilter string

const (
	SwapsSent     SwapListFilter = "sent"
	SwapsReceived SwapListFilter = "received"
	SwapsAll      SwapListFilter = "all"
)

// UserRepository handles storage operations for user profiles.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindBySubjectID(ctx context.Context, subjectID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ListPublic(ctx context.Context, limit int) ([]models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
}

// SkillRepository handles the immutable skill catalog.
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	FindByID(ctx context.Context, id string) (*models.Skill, error)
	ListAll(ctx context.Context) ([]models.Skill, error)
	Search(ctx context.Context, query, category string) ([]models.Skill, error)
}

// UserSkillRepository handles the user-to-skill links.
type UserSkillRepository interface {
	Upsert(ctx context.Context, link *models.UserSkill) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string, skillType models.SkillType) ([]models.UserSkill, error)
}

// SwapRequestRepository handles swap request storage. UpdateStatus and
// Complete are conditional writes keyed on the expected prior status: they
// report applied=false, without modifying anything, when the stored status
// does not match.
type SwapRequestRepository interface {
	Create(ctx context.Context, request *models.SwapRequest) error
	FindByID(ctx context.Context, id string) (*models.SwapRequest, error)
	ListByUser(ctx context.Context, userID string, filter SwapListFilter) ([]models.SwapRequest, error)
	ListAll(ctx context.Context) ([]models.SwapRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to models.SwapStatus, responseMessage string) (applied bool, err error)
	// Complete flips accepted -> completed and records the transaction in
	// one atomic write.
	Complete(ctx context.Context, id string, txn *models.Transaction) (applied bool, err error)
}

// TransactionRepository reads the append-only transaction log.
type TransactionRepository interface {
	FindByID(ctx context.Context, id string) (*models.Transaction, error)
	FindBySwapRequestID(ctx context.Context, swapRequestID string) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]models.Transaction, error)
}

// ReviewRepository handles review storage.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ExistsForAuthor(ctx context.Context, authorID, swapRequestID string) (bool, error)
	ListBySubject(ctx context.Context, subjectID string) ([]models.Review, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Review, error)
}

// SystemMessageRepository handles admin broadcasts.
type SystemMessageRepository interface {
	Create(ctx context.Context, message *models.SystemMessage) error
	FindByID(ctx context.Context, id string) (*models.SystemMessage, error)
	Update(ctx context.Context, message *models.SystemMessage) error
	ListActive(ctx context.Context) ([]models.SystemMessage, error)
}

// Store bundles every repository behind one injection point.
type Store struct {
	Users        UserRepository
	Skills       SkillRepository
	UserSkills   UserSkillRepository
	Swaps        SwapRequestRepository
	Transactions TransactionRepository
	Reviews      ReviewRepository
	Messages     SystemMessageRepository
}
