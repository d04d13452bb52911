package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skillswap-platform/models"
)

// MemoryStore is an in-memory implementation of every repository interface.
// It backs tests and local development without a postgres instance; the
// mutex gives it the same conditional-write semantics as the GORM store.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]*models.User
	skills       map[string]*models.Skill
	userSkills   map[string]*models.UserSkill
	swaps        map[string]*models.SwapRequest
	transactions map[string]*models.Transaction
	reviews      map[string]*models.Review
	messages     map[string]*models.SystemMessage
}

// NewMemoryStore creates an empty in-memory store wired into a Store bundle.
func NewMemoryStore() (*Store, *MemoryStore) {
	m := &MemoryStore{
		users:        make(map[string]*models.User),
		skills:       make(map[string]*models.Skill),
		userSkills:   make(map[string]*models.UserSkill),
		swaps:        make(map[string]*models.SwapRequest),
		transactions: make(map[string]*models.Transaction),
		reviews:      make(map[string]*models.Review),
		messages:     make(map[string]*models.SystemMessage),
	}
	return &Store{
		Users:        m,
		Skills:       memorySkills{m},
		UserSkills:   m,
		Swaps:        memorySwaps{m},
		Transactions: memoryTransactions{m},
		Reviews:      memoryReviews{m},
		Messages:     memoryMessages{m},
	}, m
}

// The per-entity method names on MemoryStore differ where the repository
// interfaces overlap (Create, FindByID, ...); these adapters bind the store
// to each interface.

type memorySkills struct{ m *MemoryStore }

func (r memorySkills) Create(ctx context.Context, skill *models.Skill) error {
	return r.m.CreateSkill(ctx, skill)
}
func (r memorySkills) FindByID(ctx context.Context, id string) (*models.Skill, error) {
	return r.m.FindSkillByID(ctx, id)
}
func (r memorySkills) ListAll(ctx context.Context) ([]models.Skill, error) {
	return r.m.ListAllSkills(ctx)
}
func (r memorySkills) Search(ctx context.Context, query, category string) ([]models.Skill, error) {
	return r.m.SearchSkills(ctx, query, category)
}

type memorySwaps struct{ m *MemoryStore }

func (r memorySwaps) Create(ctx context.Context, request *models.SwapRequest) error {
	return r.m.CreateSwap(ctx, request)
}
func (r memorySwaps) FindByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	return r.m.FindSwapByID(ctx, id)
}
func (r memorySwaps) ListByUser(ctx context.Context, userID string, filter SwapListFilter) ([]models.SwapRequest, error) {
	return r.m.ListSwapsByUser(ctx, userID, filter)
}
func (r memorySwaps) ListAll(ctx context.Context) ([]models.SwapRequest, error) {
	return r.m.ListAllSwaps(ctx)
}
func (r memorySwaps) UpdateStatus(ctx context.Context, id string, from, to models.SwapStatus, responseMessage string) (bool, error) {
	return r.m.UpdateStatus(ctx, id, from, to, responseMessage)
}
func (r memorySwaps) Complete(ctx context.Context, id string, txn *models.Transaction) (bool, error) {
	return r.m.Complete(ctx, id, txn)
}

type memoryTransactions struct{ m *MemoryStore }

func (r memoryTransactions) FindByID(ctx context.Context, id string) (*models.Transaction, error) {
	return r.m.FindTransactionByID(ctx, id)
}
func (r memoryTransactions) FindBySwapRequestID(ctx context.Context, swapRequestID string) (*models.Transaction, error) {
	return r.m.FindBySwapRequestID(ctx, swapRequestID)
}
func (r memoryTransactions) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	return r.m.ListTransactionsByUser(ctx, userID)
}

type memoryReviews struct{ m *MemoryStore }

func (r memoryReviews) Create(ctx context.Context, review *models.Review) error {
	return r.m.CreateReview(ctx, review)
}
func (r memoryReviews) ExistsForAuthor(ctx context.Context, authorID, swapRequestID string) (bool, error) {
	return r.m.ExistsForAuthor(ctx, authorID, swapRequestID)
}
func (r memoryReviews) ListBySubject(ctx context.Context, subjectID string) ([]models.Review, error) {
	return r.m.ListBySubject(ctx, subjectID)
}
func (r memoryReviews) ListByAuthor(ctx context.Context, authorID string) ([]models.Review, error) {
	return r.m.ListByAuthor(ctx, authorID)
}

type memoryMessages struct{ m *MemoryStore }

func (r memoryMessages) Create(ctx context.Context, message *models.SystemMessage) error {
	return r.m.CreateMessage(ctx, message)
}
func (r memoryMessages) FindByID(ctx context.Context, id string) (*models.SystemMessage, error) {
	return r.m.FindMessageByID(ctx, id)
}
func (r memoryMessages) Update(ctx context.Context, message *models.SystemMessage) error {
	return r.m.UpdateMessage(ctx, message)
}
func (r memoryMessages) ListActive(ctx context.Context) ([]models.SystemMessage, error) {
	return r.m.ListActive(ctx)
}

// --- UserRepository ---

func (m *MemoryStore) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *MemoryStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *MemoryStore) FindBySubjectID(ctx context.Context, subjectID string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.SubjectID == subjectID {
			cp := *user
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Update(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return ErrNotFound
	}
	user.UpdatedAt = time.Now()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *MemoryStore) ListPublic(ctx context.Context, limit int) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var users []models.User
	for _, user := range m.users {
		if user.Visibility == models.VisibilityPublic && !user.IsBanned {
			users = append(users, *user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (m *MemoryStore) ListAll(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var users []models.User
	for _, user := range m.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

// --- SkillRepository ---

func (m *MemoryStore) CreateSkill(ctx context.Context, skill *models.Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.skills[skill.ID]; ok {
		return nil
	}
	skill.CreatedAt = time.Now()
	skill.UpdatedAt = skill.CreatedAt
	cp := *skill
	m.skills[skill.ID] = &cp
	return nil
}

func (m *MemoryStore) FindSkillByID(ctx context.Context, id string) (*models.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	skill, ok := m.skills[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *skill
	return &cp, nil
}

func (m *MemoryStore) ListAllSkills(ctx context.Context) ([]models.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var skills []models.Skill
	for _, skill := range m.skills {
		skills = append(skills, *skill)
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

func (m *MemoryStore) SearchSkills(ctx context.Context, query, category string) ([]models.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var skills []models.Skill
	for _, skill := range m.skills {
		if !strings.Contains(strings.ToLower(skill.Name), strings.ToLower(query)) {
			continue
		}
		if category != "" && skill.Category != category {
			continue
		}
		skills = append(skills, *skill)
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// --- UserSkillRepository ---

func (m *MemoryStore) Upsert(ctx context.Context, link *models.UserSkill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.userSkills[link.ID]; ok {
		link.CreatedAt = existing.CreatedAt
	} else {
		link.CreatedAt = time.Now()
	}
	link.UpdatedAt = time.Now()
	cp := *link
	m.userSkills[link.ID] = &cp
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.userSkills, id)
	return nil
}

func (m *MemoryStore) ListByUser(ctx context.Context, userID string, skillType models.SkillType) ([]models.UserSkill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var links []models.UserSkill
	for _, link := range m.userSkills {
		if link.UserID != userID || !link.IsActive {
			continue
		}
		if skillType != "" && link.Type != skillType {
			continue
		}
		links = append(links, *link)
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	return links, nil
}

// --- SwapRequestRepository ---

func (m *MemoryStore) CreateSwap(ctx context.Context, request *models.SwapRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	cp := *request
	m.swaps[request.ID] = &cp
	return nil
}

func (m *MemoryStore) FindSwapByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	request, ok := m.swaps[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *request
	return &cp, nil
}

func (m *MemoryStore) ListSwapsByUser(ctx context.Context, userID string, filter SwapListFilter) ([]models.SwapRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var requests []models.SwapRequest
	for _, request := range m.swaps {
		switch filter {
		case SwapsSent:
			if request.RequesterID != userID {
				continue
			}
		case SwapsReceived:
			if request.RecipientID != userID {
				continue
			}
		default:
			if !request.Participant(userID) {
				continue
			}
		}
		requests = append(requests, *request)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].CreatedAt.After(requests[j].CreatedAt) })
	return requests, nil
}

func (m *MemoryStore) ListAllSwaps(ctx context.Context) ([]models.SwapRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var requests []models.SwapRequest
	for _, request := range m.swaps {
		requests = append(requests, *request)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].CreatedAt.After(requests[j].CreatedAt) })
	return requests, nil
}

func (m *MemoryStore) UpdateStatus(ctx context.Context, id string, from, to models.SwapStatus, responseMessage string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.swaps[id]
	if !ok || request.Status != from {
		return false, nil
	}
	request.Status = to
	request.UpdatedAt = time.Now()
	if responseMessage != "" {
		request.ResponseMessage = responseMessage
	}
	return true, nil
}

func (m *MemoryStore) Complete(ctx context.Context, id string, txn *models.Transaction) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.swaps[id]
	if !ok || request.Status != models.SwapAccepted {
		return false, nil
	}
	request.Status = models.SwapCompleted
	request.UpdatedAt = time.Now()

	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	txn.CreatedAt = time.Now()
	cp := *txn
	m.transactions[txn.ID] = &cp
	return true, nil
}

// --- TransactionRepository ---

func (m *MemoryStore) FindTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	txn, ok := m.transactions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *txn
	return &cp, nil
}

func (m *MemoryStore) FindBySwapRequestID(ctx context.Context, swapRequestID string) (*models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, txn := range m.transactions {
		if txn.SwapRequestID == swapRequestID {
			cp := *txn
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) ListTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var txns []models.Transaction
	for _, txn := range m.transactions {
		if txn.RequesterID == userID || txn.RecipientID == userID {
			txns = append(txns, *txn)
		}
	}
	sort.Slice(txns, func(i, j int) bool { return txns[i].CompletedAt.After(txns[j].CompletedAt) })
	return txns, nil
}

// --- ReviewRepository ---

func (m *MemoryStore) CreateReview(ctx context.Context, review *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	review.CreatedAt = time.Now()
	cp := *review
	m.reviews[review.ID] = &cp
	return nil
}

func (m *MemoryStore) ExistsForAuthor(ctx context.Context, authorID, swapRequestID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, review := range m.reviews {
		if review.AuthorID == authorID && review.SwapRequestID == swapRequestID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) ListBySubject(ctx context.Context, subjectID string) ([]models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var reviews []models.Review
	for _, review := range m.reviews {
		if review.SubjectID == subjectID {
			reviews = append(reviews, *review)
		}
	}
	return reviews, nil
}

func (m *MemoryStore) ListByAuthor(ctx context.Context, authorID string) ([]models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var reviews []models.Review
	for _, review := range m.reviews {
		if review.AuthorID == authorID {
			reviews = append(reviews, *review)
		}
	}
	return reviews, nil
}

// --- SystemMessageRepository ---

func (m *MemoryStore) CreateMessage(ctx context.Context, message *models.SystemMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	message.CreatedAt = time.Now()
	message.UpdatedAt = message.CreatedAt
	cp := *message
	m.messages[message.ID] = &cp
	return nil
}

func (m *MemoryStore) FindMessageByID(ctx context.Context, id string) (*models.SystemMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	message, ok := m.messages[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *message
	return &cp, nil
}

func (m *MemoryStore) UpdateMessage(ctx context.Context, message *models.SystemMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.messages[message.ID]; !ok {
		return ErrNotFound
	}
	message.UpdatedAt = time.Now()
	cp := *message
	m.messages[message.ID] = &cp
	return nil
}

func (m *MemoryStore) ListActive(ctx context.Context) ([]models.SystemMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var messages []models.SystemMessage
	for _, message := range m.messages {
		if message.IsActive {
			messages = append(messages, *message)
		}
	}
	return messages, nil
}
