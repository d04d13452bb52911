package models

import "time"

// Transaction records a completed swap. Created exactly once when a swap
// request transitions into completed; append-only.
type Transaction struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SwapRequestID    string    `json:"swapRequestId" gorm:"uniqueIndex;not null"`
	RequesterID      string    `json:"requesterId" gorm:"index;not null"`
	RecipientID      string    `json:"recipientId" gorm:"index;not null"`
	OfferedSkillID   string    `json:"offeredSkillId" gorm:"not null"`
	RequestedSkillID string    `json:"requestedSkillId" gorm:"not null"`
	CompletedAt      time.Time `json:"completedAt"`
	CreatedAt        time.Time `json:"createdAt"`
}
