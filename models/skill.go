package models

import (
	"strings"
	"time"
)

// Skill is an immutable catalog entry. Users and swap requests reference
// skills by ID and never duplicate them.
type Skill struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Category    string    `json:"category" gorm:"default:'General'"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"createdBy" gorm:"default:'system'"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SkillID derives the catalog identifier from a skill name.
func SkillID(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	id = strings.ReplaceAll(id, " ", "_")
	id = strings.ReplaceAll(id, "-", "_")
	return id
}
