package models

import "time"

// SkillType distinguishes skills a user teaches from skills they want to learn
type SkillType string

const (
	SkillOffered SkillType = "offered"
	SkillWanted  SkillType = "wanted"
)

// UserSkill links a user to a catalog skill, either offered or wanted.
type UserSkill struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"userId" gorm:"index;not null"`
	SkillID     string    `json:"skillId" gorm:"not null"`
	SkillName   string    `json:"skillName" gorm:"not null"`
	Type        SkillType `json:"type" gorm:"type:varchar(10);not null"`
	Proficiency string    `json:"proficiency" gorm:"default:'intermediate'"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserSkillID builds the composite key used for the user-skill link.
func UserSkillID(userID, skillID string, skillType SkillType) string {
	return userID + "_" + skillID + "_" + string(skillType)
}
