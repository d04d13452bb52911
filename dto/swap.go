package dto

// Swap lifecycle actions accepted by the update endpoint.
const (
	SwapActionAccept   = "accept"
	SwapActionReject   = "reject"
	SwapActionCancel   = "cancel"
	SwapActionComplete = "complete"
)

// CreateSwapRequest proposes a skill exchange to another user
type CreateSwapRequest struct {
	RecipientID      string `json:"recipientId" binding:"required"`
	OfferedSkillID   string `json:"offeredSkillId" binding:"required"`
	RequestedSkillID string `json:"requestedSkillId" binding:"required"`
	Message          string `json:"message"`
}

// UpdateSwapRequest triggers a lifecycle transition on a swap request
type UpdateSwapRequest struct {
	Action          string `json:"action" binding:"required,swapaction"`
	ResponseMessage string `json:"responseMessage"`
}
