package dtos

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// ProfileUpdateRequest is the allow-listed field set for POST
// /api/user/profile. Pointers distinguish "absent" from "set to empty".
type ProfileUpdateRequest struct {
	EducationLevel  *string  `json:"educationLevel"`
	FieldOfStudy    *string  `json:"fieldOfStudy"`
	Institution     *string  `json:"institution"`
	CompletionYear  *string  `json:"completionYear"`
	CurrentStatus   *string  `json:"currentStatus"`
	WorkExperience  *string  `json:"workExperience"`
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	CareerGoals     *string  `json:"careerGoals"`
	WorkEnvironment *string  `json:"preferredWorkEnvironment"`
	Location        *string  `json:"preferredLocation"`
	SalaryRange     *string  `json:"salaryExpectation"`
	WillingRelocate *bool    `json:"willingToRelocate"`
}
