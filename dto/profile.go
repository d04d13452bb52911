package dto

// UpdateProfileRequest carries the mutable profile fields. Nil pointers
// leave the stored value untouched.
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	Bio          *string `json:"bio"`
	Availability *string `json:"availability"`
	Visibility   *string `json:"profileVisibility" binding:"omitempty,oneof=public private"`
}

// AddSkillRequest adds a skill to the current user's profile
type AddSkillRequest struct {
	SkillName   string `json:"skillName" binding:"required"`
	SkillType   string `json:"skillType" binding:"required,skilltype"`
	Proficiency string `json:"proficiency" binding:"omitempty,oneof=beginner intermediate advanced expert"`
	Description string `json:"description"`
}

// RemoveSkillRequest removes a skill from the current user's profile
type RemoveSkillRequest struct {
	SkillName string `json:"skillName" binding:"required"`
	SkillType string `json:"skillType" binding:"required,skilltype"`
}
