package models

import "time"

// SwapStatus is the lifecycle state of a swap request.
type SwapStatus string

const (
	SwapPending   SwapStatus = "pending"
	SwapAccepted  SwapStatus = "accepted"
	SwapRejected  SwapStatus = "rejected"
	SwapCancelled SwapStatus = "cancelled"
	SwapCompleted SwapStatus = "completed"
)

// Terminal reports whether the status has no outgoing transitions.
func (s SwapStatus) Terminal() bool {
	return s == SwapRejected || s == SwapCancelled || s == SwapCompleted
}

// SwapRequest is a proposed skill exchange between two users. Status only
// moves along pending -> {accepted, rejected, cancelled} and
// accepted -> {completed, cancelled}; rows are never physically deleted.
type SwapRequest struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RequesterID      string     `json:"requesterId" gorm:"index;not null"`
	RecipientID      string     `json:"recipientId" gorm:"index;not null"`
	OfferedSkillID   string     `json:"offeredSkillId" gorm:"not null"`
	RequestedSkillID string     `json:"requestedSkillId" gorm:"not null"`
	Message          string     `json:"message"`
	Status           SwapStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	ResponseMessage  string     `json:"responseMessage"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Participant reports whether userID is the requester or the recipient.
func (r *SwapRequest) Participant(userID string) bool {
	return r.RequesterID == userID || r.RecipientID == userID
}
