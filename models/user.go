package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Visibility controls whether a profile shows up in public listings
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// User represents a member of the skill swap platform. SubjectID is the
// identifier assigned by the identity provider; it is the join key between
// a verified token and the application profile.
type User struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SubjectID    string         `json:"-" gorm:"uniqueIndex;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"default:null"` // only set when the local identity provider is active
	Name         string         `json:"name" gorm:"not null"`
	Location     string         `json:"location"`
	Bio          string         `json:"bio"`
	Availability string         `json:"availability" gorm:"default:'weekends'"`
	Visibility   Visibility     `json:"profileVisibility" gorm:"type:varchar(10);default:'public'"`
	Role         Role           `json:"role" gorm:"type:varchar(10);default:'user'"`
	IsBanned     bool           `json:"isBanned" gorm:"default:false"`
	BanReason    string         `json:"-"`
	RatingAvg    float64        `json:"ratingAvg" gorm:"default:0"`
	RatingCount  int            `json:"ratingCount" gorm:"default:0"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
