package repositories

import "gorm.io/gorm"

// NewGormStore bundles the GORM-backed repositories over one injected
// database handle.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:        NewGormUserRepository(db),
		Skills:       NewGormSkillRepository(db),
		UserSkills:   NewGormUserSkillRepository(db),
		Swaps:        NewGormSwapRequestRepository(db),
		Transactions: NewGormTransactionRepository(db),
		Reviews:      NewGormReviewRepository(db),
		Messages:     NewGormSystemMessageRepository(db),
	}
}
