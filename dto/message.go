package dto

// CreateMessageRequest creates an admin broadcast
type CreateMessageRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=announcement maintenance feature_update warning"`
}

// ToggleMessageRequest flips a broadcast's active flag
type ToggleMessageRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// BanRequest bans or unbans a user (admin only)
type BanRequest struct {
	Banned *bool  `json:"banned" binding:"required"`
	Reason string `json:"reason"`
}
