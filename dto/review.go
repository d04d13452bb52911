package dto

// CreateReviewRequest reviews the other participant of a completed swap
type CreateReviewRequest struct {
	SwapRequestID string `json:"swapRequestId" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Title         string `json:"title"`
	Comment       string `json:"comment" binding:"required"`
}
