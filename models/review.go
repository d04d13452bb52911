package models

import "time"

// Review is feedback from one participant of a completed swap about the
// other. Immutable after creation; one review per author per swap request.
type Review struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AuthorID      string    `json:"authorId" gorm:"index;not null"`
	SubjectID     string    `json:"subjectId" gorm:"index;not null"`
	SwapRequestID string    `json:"swapRequestId" gorm:"index;not null"`
	Rating        int       `json:"rating" gorm:"not null"`
	Title         string    `json:"title"`
	Comment       string    `json:"comment" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
}
